package header

import (
	"encoding/binary"
	"fmt"

	"github.com/kaspanet/bestchain/util/chainhash"
	"github.com/pkg/errors"
)

// Block is the immutable part of a header the chain selection needs.
type Block struct {
	// Hash is the double sha256 of the full 80 byte header.
	Hash chainhash.Hash

	// PrevHash identifies the block this one extends. A PrevHash that
	// matches no known block makes this block a genesis.
	PrevHash chainhash.Hash

	// Bits is the header's difficulty field.
	Bits uint32
}

// DecodeBlock builds a Block out of a single serialized header. buf must be
// exactly HeaderSize bytes long.
func DecodeBlock(buf []byte) (*Block, error) {
	if len(buf) != HeaderSize {
		return nil, errors.Wrapf(ErrShortHeader, "got %d bytes, want %d", len(buf), HeaderSize)
	}

	block := &Block{
		Hash: chainhash.DoubleHashH(buf),
		Bits: binary.LittleEndian.Uint32(buf[bitsOffset : bitsOffset+4]),
	}
	copy(block.PrevHash[:], buf[prevHashOffset:prevHashOffset+chainhash.HashSize])

	return block, nil
}

func (b *Block) String() string {
	return fmt.Sprintf("%s (prev %s, bits %08x)", b.Hash, b.PrevHash, b.Bits)
}
