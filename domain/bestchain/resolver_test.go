package bestchain

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/bestchain/domain/blockindex"
	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/util/chainhash"
	"github.com/pkg/errors"
)

func TestResolveLinearChain(t *testing.T) {
	chain := buildChain(unknownPrevHash, 1, 2, 3, 4)

	// Feed the blocks tip first so that every block is reached as a
	// predecessor before it is resolved directly.
	resolver := mustResolveAll(t, reverseBlocks(chain))
	if resolver.Len() != len(chain) {
		t.Fatalf("Len: got %d, want %d", resolver.Len(), len(chain))
	}

	for i, block := range chain {
		node, ok := resolver.Lookup(&block.Hash)
		if !ok {
			t.Fatalf("block #%d was not resolved", i)
		}
		if node.Height() != uint64(i) {
			t.Errorf("block #%d has height %d", i, node.Height())
		}
		if i == 0 {
			if !node.IsGenesis() {
				t.Errorf("block #0 should be a genesis, predecessor is %s", node.Predecessor())
			}
			continue
		}
		if node.Predecessor() == nil || *node.Predecessor().Hash() != chain[i-1].Hash {
			t.Errorf("block #%d has the wrong predecessor: %s", i, spew.Sdump(node.Predecessor()))
		}
	}

	// Every node must come after its predecessor.
	seen := make(map[chainhash.Hash]bool)
	for _, node := range resolver.Nodes() {
		if node.Predecessor() != nil && !seen[*node.Predecessor().Hash()] {
			t.Errorf("node %s was created before its predecessor", node)
		}
		seen[*node.Hash()] = true
	}
}

// TestResolveMemoization makes sure a shared ancestor gets a single node no
// matter how many times it is reached.
func TestResolveMemoization(t *testing.T) {
	shared := buildChain(unknownPrevHash, 1, 1)
	forkA := buildChain(shared[1].Hash, 1, 1)
	forkB := buildChain(shared[1].Hash, 5)
	index := blockindex.FromBlocks(concatBlocks(forkA, forkB, shared))

	resolver := NewResolver(index)
	first, err := resolver.Resolve(&shared[1].Hash)
	if err != nil {
		t.Fatalf("Resolve: %+v", err)
	}
	tipA, err := resolver.Resolve(&forkA[1].Hash)
	if err != nil {
		t.Fatalf("Resolve: %+v", err)
	}
	tipB, err := resolver.Resolve(&forkB[0].Hash)
	if err != nil {
		t.Fatalf("Resolve: %+v", err)
	}
	again, err := resolver.Resolve(&shared[1].Hash)
	if err != nil {
		t.Fatalf("Resolve: %+v", err)
	}

	if first != again {
		t.Errorf("Resolve returned two different nodes for %s", shared[1].Hash)
	}
	if tipA.Predecessor().Predecessor() != first || tipB.Predecessor() != first {
		t.Errorf("forks do not share the ancestor node")
	}

	countBefore := resolver.Len()
	err = resolver.ResolveAll()
	if err != nil {
		t.Fatalf("ResolveAll: %+v", err)
	}
	if resolver.Len() != countBefore || resolver.Len() != index.Len() {
		t.Errorf("ResolveAll created new nodes: %d before, %d after, %d blocks",
			countBefore, resolver.Len(), index.Len())
	}
}

func TestResolveDisjointGenesis(t *testing.T) {
	first := newTestBlock(chainhash.Hash{0x01}, 1)
	second := newTestBlock(chainhash.Hash{0x02}, 1)

	resolver := mustResolveAll(t, []*header.Block{first, second})
	if resolver.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", resolver.Len())
	}
	for _, node := range resolver.Nodes() {
		if !node.IsGenesis() || node.Height() != 0 {
			t.Errorf("node %s should be a genesis at height 0", node)
		}
	}
	if tips := FindTips(resolver.Nodes()); len(tips) != 2 {
		t.Errorf("FindTips: got %d tips, want 2", len(tips))
	}
}

func TestResolveCycle(t *testing.T) {
	a := chainhash.Hash{0x0a}
	b := chainhash.Hash{0x0b}
	c := chainhash.Hash{0x0c}
	self := chainhash.Hash{0x05}

	tests := []struct {
		name   string
		blocks []*header.Block
		start  chainhash.Hash
	}{
		{
			name:   "self reference",
			blocks: []*header.Block{{Hash: self, PrevHash: self}},
			start:  self,
		},
		{
			name: "two block loop",
			blocks: []*header.Block{
				{Hash: a, PrevHash: b},
				{Hash: b, PrevHash: a},
			},
			start: a,
		},
		{
			name: "tail leading into a loop",
			blocks: []*header.Block{
				{Hash: c, PrevHash: a},
				{Hash: a, PrevHash: b},
				{Hash: b, PrevHash: a},
			},
			start: c,
		},
	}

	for _, test := range tests {
		resolver := NewResolver(blockindex.FromBlocks(test.blocks))
		_, err := resolver.Resolve(&test.start)
		if !errors.Is(err, ErrAncestryCycle) {
			t.Errorf("%s: got error %v, want %v", test.name, err, ErrAncestryCycle)
		}
		if resolver.Len() != 0 {
			t.Errorf("%s: a failed resolution left %d nodes behind", test.name, resolver.Len())
		}

		_, err = Find(blockindex.FromBlocks(test.blocks), BitsWork)
		if !errors.Is(err, ErrAncestryCycle) {
			t.Errorf("%s: Find returned %v, want %v", test.name, err, ErrAncestryCycle)
		}
	}
}

func TestResolveUnknownBlock(t *testing.T) {
	resolver := NewResolver(blockindex.New())
	_, err := resolver.Resolve(&chainhash.Hash{0x01})
	if !errors.Is(err, ErrUnknownBlock) {
		t.Errorf("Resolve: got error %v, want %v", err, ErrUnknownBlock)
	}
}

// TestResolveDeepChain resolves a chain far longer than a recursive walk
// would comfortably handle.
func TestResolveDeepChain(t *testing.T) {
	const depth = 200000
	blocks := make([]*header.Block, depth)
	prevHash := unknownPrevHash
	for i := range blocks {
		var hash chainhash.Hash
		hash[0], hash[1], hash[2], hash[3] = byte(i), byte(i>>8), byte(i>>16), 0x01
		blocks[i] = &header.Block{Hash: hash, PrevHash: prevHash, Bits: 1}
		prevHash = hash
	}

	resolver := NewResolver(blockindex.FromBlocks(blocks))
	tip, err := resolver.Resolve(&blocks[depth-1].Hash)
	if err != nil {
		t.Fatalf("Resolve: %+v", err)
	}
	if tip.Height() != depth-1 {
		t.Errorf("tip height is %d, want %d", tip.Height(), depth-1)
	}
	if tip.Genesis().Block() != blocks[0] {
		t.Errorf("Genesis: got %s, want %s", tip.Genesis(), blocks[0])
	}
}
