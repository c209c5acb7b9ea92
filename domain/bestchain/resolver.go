package bestchain

import (
	"github.com/kaspanet/bestchain/domain/blockindex"
	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/util/chainhash"
	"github.com/pkg/errors"
)

// Resolver turns the blocks of an index into ChainNodes, building exactly one
// node per distinct hash.
type Resolver struct {
	index *blockindex.Index
	nodes map[chainhash.Hash]*ChainNode

	// order holds the nodes in the order they were created. Every node
	// comes after its predecessor.
	order []*ChainNode
}

// NewResolver returns a Resolver over index.
func NewResolver(index *blockindex.Index) *Resolver {
	return &Resolver{
		index: index,
		nodes: make(map[chainhash.Hash]*ChainNode, index.Len()),
		order: make([]*ChainNode, 0, index.Len()),
	}
}

// Resolve returns the ChainNode of the block stored under hash, creating it
// and any of its unresolved ancestors. Calling it again for the same hash
// returns the same node.
//
// The ancestry is walked iteratively, so long chains don't grow the stack.
// A block that turns out to be its own ancestor fails with ErrAncestryCycle.
func (r *Resolver) Resolve(hash *chainhash.Hash) (*ChainNode, error) {
	if node, ok := r.nodes[*hash]; ok {
		return node, nil
	}
	block, ok := r.index.Lookup(hash)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBlock, "block %s is not in the index", hash)
	}

	// Collect the unresolved blocks from hash down to either a genesis or
	// the first ancestor that already has a node.
	path := []*header.Block{block}
	onPath := map[chainhash.Hash]struct{}{block.Hash: {}}
	var predecessor *ChainNode
	for current := block; ; {
		prevBlock, ok := r.index.Lookup(&current.PrevHash)
		if !ok {
			break
		}
		if node, ok := r.nodes[prevBlock.Hash]; ok {
			predecessor = node
			break
		}
		if _, ok := onPath[prevBlock.Hash]; ok {
			return nil, errors.Wrapf(ErrAncestryCycle, "block %s is an ancestor of itself "+
				"(reached from %s after %d blocks)", prevBlock.Hash, hash, len(path))
		}
		onPath[prevBlock.Hash] = struct{}{}
		path = append(path, prevBlock)
		current = prevBlock
	}

	// Create the nodes oldest first so each one can point at its
	// predecessor.
	for i := len(path) - 1; i >= 0; i-- {
		node := newChainNode(path[i], predecessor)
		if node.IsGenesis() {
			log.Debugf("Found genesis %s", node.block.Hash)
		}
		r.nodes[node.block.Hash] = node
		r.order = append(r.order, node)
		predecessor = node
	}

	return predecessor, nil
}

// ResolveAll resolves every block in the index.
func (r *Resolver) ResolveAll() error {
	for _, block := range r.index.Blocks() {
		_, err := r.Resolve(&block.Hash)
		if err != nil {
			return err
		}
	}
	log.Debugf("Resolved %d chain nodes", len(r.order))
	return nil
}

// Lookup returns the node already resolved for hash, if any.
func (r *Resolver) Lookup(hash *chainhash.Hash) (*ChainNode, bool) {
	node, ok := r.nodes[*hash]
	return node, ok
}

// Nodes returns all resolved nodes in the order they were created.
func (r *Resolver) Nodes() []*ChainNode {
	return r.order
}

// Len returns the number of resolved nodes.
func (r *Resolver) Len() int {
	return len(r.order)
}
