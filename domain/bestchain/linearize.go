package bestchain

import (
	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/util/chainhash"
)

// Linearize returns the blocks of the chain ending at tip, genesis first.
// The result has tip.Height()+1 blocks.
func Linearize(tip *ChainNode) []*header.Block {
	chain := make([]*header.Block, tip.height+1)
	i := len(chain) - 1
	for current := tip; current != nil; current = current.predecessor {
		chain[i] = current.block
		i--
	}
	return chain
}

// Hashes returns the hashes of blocks, in the same order.
func Hashes(blocks []*header.Block) []chainhash.Hash {
	hashes := make([]chainhash.Hash, len(blocks))
	for i, block := range blocks {
		hashes[i] = block.Hash
	}
	return hashes
}
