package bestchain

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/util/chainhash"
)

// ChainNode is a block's position in the resolved block tree. Nodes at fork
// points are shared by every descendant that extends them.
type ChainNode struct {
	block *header.Block

	// predecessor is nil when the block's PrevHash is not in the index,
	// which makes the node a genesis.
	predecessor *ChainNode

	// height is the number of predecessor hops down to the genesis.
	height uint64

	// work is the accumulated work of this node and all of its
	// predecessors. It stays nil until a WorkEvaluator computes it.
	work *uint256.Int
}

func newChainNode(block *header.Block, predecessor *ChainNode) *ChainNode {
	node := &ChainNode{
		block:       block,
		predecessor: predecessor,
	}
	if predecessor != nil {
		node.height = predecessor.height + 1
	}
	return node
}

// Block returns the block this node wraps.
func (node *ChainNode) Block() *header.Block {
	return node.block
}

// Hash returns the hash of the block this node wraps.
func (node *ChainNode) Hash() *chainhash.Hash {
	return &node.block.Hash
}

// Predecessor returns the node of the block this node extends, or nil for a
// genesis.
func (node *ChainNode) Predecessor() *ChainNode {
	return node.predecessor
}

// IsGenesis returns true iff the node has no known predecessor.
func (node *ChainNode) IsGenesis() bool {
	return node.predecessor == nil
}

// Height returns the number of blocks between this node and its genesis.
func (node *ChainNode) Height() uint64 {
	return node.height
}

// Work returns the accumulated work cached on the node, or nil if it was not
// evaluated yet. Use WorkEvaluator.AccumulatedWork to compute it.
func (node *ChainNode) Work() *uint256.Int {
	return node.work
}

// Genesis walks down the predecessors and returns the first node of the chain.
func (node *ChainNode) Genesis() *ChainNode {
	current := node
	for current.predecessor != nil {
		current = current.predecessor
	}
	return current
}

func (node *ChainNode) String() string {
	return fmt.Sprintf("%s (height %d)", node.block.Hash, node.height)
}
