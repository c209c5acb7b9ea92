package bestchain

import (
	"testing"

	"github.com/kaspanet/bestchain/domain/blockindex"
	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/util/chainhash"
)

// testNonce makes every header built by the helpers below unique, so that
// forks with identical bits still get distinct hashes.
var testNonce uint32

// newTestBlock builds a real header extending prevHash and returns its Block.
func newTestBlock(prevHash chainhash.Hash, bits uint32) *header.Block {
	testNonce++
	h := header.Header{
		Version:   1,
		PrevHash:  prevHash,
		Timestamp: 1231006505 + testNonce,
		Bits:      bits,
		Nonce:     testNonce,
	}
	return h.ToBlock()
}

// buildChain returns blocks extending prevHash, one per entry in bits.
func buildChain(prevHash chainhash.Hash, bits ...uint32) []*header.Block {
	blocks := make([]*header.Block, len(bits))
	for i, b := range bits {
		blocks[i] = newTestBlock(prevHash, b)
		prevHash = blocks[i].Hash
	}
	return blocks
}

// unknownPrevHash is a predecessor hash no test index ever contains.
var unknownPrevHash = chainhash.Hash{0xff, 0xee, 0xdd}

func concatBlocks(chains ...[]*header.Block) []*header.Block {
	var all []*header.Block
	for _, chain := range chains {
		all = append(all, chain...)
	}
	return all
}

func reverseBlocks(blocks []*header.Block) []*header.Block {
	reversed := make([]*header.Block, len(blocks))
	for i, block := range blocks {
		reversed[len(blocks)-1-i] = block
	}
	return reversed
}

func mustFind(t *testing.T, blocks []*header.Block, workFunc WorkFunc) *Result {
	result, err := Find(blockindex.FromBlocks(blocks), workFunc)
	if err != nil {
		t.Fatalf("Find: unexpected error: %+v", err)
	}
	return result
}

func mustResolveAll(t *testing.T, blocks []*header.Block) *Resolver {
	resolver := NewResolver(blockindex.FromBlocks(blocks))
	err := resolver.ResolveAll()
	if err != nil {
		t.Fatalf("ResolveAll: unexpected error: %+v", err)
	}
	return resolver
}
