package app

import (
	"bufio"
	"io"

	"github.com/kaspanet/bestchain/domain/header"
	"github.com/pkg/errors"
)

// WriteChain writes the hash of every block in blocks to w, in order, as raw
// 32 byte values without any framing.
func WriteChain(w io.Writer, blocks []*header.Block) error {
	bw := bufio.NewWriter(w)
	for _, block := range blocks {
		_, err := bw.Write(block.Hash[:])
		if err != nil {
			return errors.Wrapf(err, "error writing hash of block %s", block.Hash)
		}
	}
	err := bw.Flush()
	if err != nil {
		return errors.Wrap(err, "error flushing chain output")
	}
	return nil
}
