// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package header

import (
	"bytes"
	"io"

	"github.com/kaspanet/bestchain/util/binaryserializer"
	"github.com/kaspanet/bestchain/util/chainhash"
	"github.com/pkg/errors"
)

// HeaderSize is the number of bytes in a serialized block header.
// Version 4 bytes + PrevHash 32 bytes + MerkleRoot 32 bytes + Timestamp 4 bytes +
// Bits 4 bytes + Nonce 4 bytes.
const HeaderSize = 16 + 2*chainhash.HashSize

// Offsets of the fields a Block is built from.
const (
	prevHashOffset = 4
	bitsOffset     = 72
)

// Header defines the fixed size block header records the pipeline consumes.
type Header struct {
	// Version of the block. This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the chain.
	PrevHash chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created, in seconds since the unix epoch.
	Timestamp uint32

	// Difficulty target for the block, in compact form.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *Header) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 it. Ignore the error since
	// writing to a DoubleHashWriter can't fail.
	writer := chainhash.NewDoubleHashWriter()
	_ = h.Serialize(writer)

	return writer.Finalize()
}

// Bytes returns the serialized form of the header.
func (h *Header) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))
	_ = h.Serialize(buf)
	return buf.Bytes()
}

// Serialize encodes the header to w using the 80 byte record layout.
func (h *Header) Serialize(w io.Writer) error {
	err := binaryserializer.PutInt32(w, h.Version)
	if err != nil {
		return err
	}
	for _, hash := range []*chainhash.Hash{&h.PrevHash, &h.MerkleRoot} {
		_, err = w.Write(hash[:])
		if err != nil {
			return errors.WithStack(err)
		}
	}
	for _, value := range []uint32{h.Timestamp, h.Bits, h.Nonce} {
		err = binaryserializer.PutUint32(w, value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Deserialize decodes a header from r into the receiver.
func (h *Header) Deserialize(r io.Reader) error {
	var err error
	h.Version, err = binaryserializer.Int32(r)
	if err != nil {
		return err
	}
	for _, hash := range []*chainhash.Hash{&h.PrevHash, &h.MerkleRoot} {
		_, err = io.ReadFull(r, hash[:])
		if err != nil {
			return errors.WithStack(err)
		}
	}
	for _, value := range []*uint32{&h.Timestamp, &h.Bits, &h.Nonce} {
		*value, err = binaryserializer.Uint32(r)
		if err != nil {
			return err
		}
	}
	return nil
}

// ToBlock returns the Block the pipeline tracks for this header.
func (h *Header) ToBlock() *Block {
	return &Block{
		Hash:     h.BlockHash(),
		PrevHash: h.PrevHash,
		Bits:     h.Bits,
	}
}
