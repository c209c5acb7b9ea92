package blockindex

import (
	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/util/chainhash"
)

// Index maps block hashes to the blocks read from the input. It is built once
// and then only read, so it is not safe for concurrent writes.
type Index struct {
	blocks map[chainhash.Hash]*header.Block

	// order holds every distinct hash in the order it was first inserted,
	// so that walks over the index do not depend on map iteration.
	order      []chainhash.Hash
	duplicates uint64
}

// New returns an empty Index.
func New() *Index {
	return &Index{blocks: make(map[chainhash.Hash]*header.Block)}
}

// FromBlocks returns an Index holding all the given blocks.
func FromBlocks(blocks []*header.Block) *Index {
	index := &Index{blocks: make(map[chainhash.Hash]*header.Block, len(blocks))}
	for _, block := range blocks {
		index.Insert(block)
	}
	return index
}

// Insert records block under its hash. A block already stored under the same
// hash is replaced.
func (index *Index) Insert(block *header.Block) {
	if _, exists := index.blocks[block.Hash]; exists {
		index.duplicates++
		log.Tracef("Replacing duplicate block %s", block.Hash)
	} else {
		index.order = append(index.order, block.Hash)
	}
	index.blocks[block.Hash] = block
}

// Lookup returns the block stored under hash, if any.
func (index *Index) Lookup(hash *chainhash.Hash) (*header.Block, bool) {
	block, ok := index.blocks[*hash]
	return block, ok
}

// Contains returns true iff a block is stored under hash.
func (index *Index) Contains(hash *chainhash.Hash) bool {
	_, ok := index.blocks[*hash]
	return ok
}

// Len returns the number of distinct blocks in the index.
func (index *Index) Len() int {
	return len(index.blocks)
}

// Duplicates returns how many inserts replaced an existing block.
func (index *Index) Duplicates() uint64 {
	return index.duplicates
}

// Blocks returns the stored blocks, ordered by the first time their hash
// was inserted.
func (index *Index) Blocks() []*header.Block {
	blocks := make([]*header.Block, len(index.order))
	for i, hash := range index.order {
		blocks[i] = index.blocks[hash]
	}
	return blocks
}
