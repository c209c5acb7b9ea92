package app

import (
	"bytes"
	"testing"

	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/util/chainhash"
	"github.com/pkg/errors"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteChain(t *testing.T) {
	blocks := []*header.Block{
		{Hash: chainhash.Hash{1}},
		{Hash: chainhash.Hash{2}, PrevHash: chainhash.Hash{1}},
		{Hash: chainhash.Hash{3}, PrevHash: chainhash.Hash{2}},
	}

	var buf bytes.Buffer
	err := WriteChain(&buf, blocks)
	if err != nil {
		t.Fatalf("WriteChain: %s", err)
	}
	if buf.Len() != len(blocks)*chainhash.HashSize {
		t.Fatalf("WriteChain wrote %d bytes, want %d", buf.Len(), len(blocks)*chainhash.HashSize)
	}
	for i, block := range blocks {
		got := buf.Bytes()[i*chainhash.HashSize : (i+1)*chainhash.HashSize]
		if !bytes.Equal(got, block.Hash[:]) {
			t.Errorf("hash #%d: got %x, want %x", i, got, block.Hash[:])
		}
	}
}

func TestWriteChainEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteChain(&buf, nil)
	if err != nil {
		t.Fatalf("WriteChain: %s", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteChain wrote %d bytes for an empty chain", buf.Len())
	}
}

func TestWriteChainError(t *testing.T) {
	err := WriteChain(failingWriter{}, []*header.Block{{Hash: chainhash.Hash{1}}})
	if err == nil {
		t.Errorf("WriteChain: expected an error from a failing writer")
	}
}
