package bestchain

import (
	"github.com/holiman/uint256"
	"github.com/kaspanet/bestchain/domain/blockindex"
	"github.com/kaspanet/bestchain/domain/header"
)

// Result is the outcome of a best chain search.
type Result struct {
	// Tips are all the chain tips found, sorted by hash.
	Tips []*ChainNode

	// Best is the selected tip and BestWork its accumulated work.
	Best     *ChainNode
	BestWork *uint256.Int

	// Chain holds the blocks of the best chain, genesis first.
	Chain []*header.Block

	// NodeCount is the number of resolved chain nodes.
	NodeCount int
}

// Genesis returns the first block of the best chain.
func (r *Result) Genesis() *header.Block {
	return r.Chain[0]
}

// Tip returns the last block of the best chain.
func (r *Result) Tip() *header.Block {
	return r.Chain[len(r.Chain)-1]
}

// Height returns the height of the best chain's tip.
func (r *Result) Height() uint64 {
	return r.Best.Height()
}

// Find resolves every block in index and returns the chain with the most
// accumulated work according to workFunc.
func Find(index *blockindex.Index, workFunc WorkFunc) (*Result, error) {
	resolver := NewResolver(index)
	err := resolver.ResolveAll()
	if err != nil {
		return nil, err
	}

	tips := FindTips(resolver.Nodes())
	log.Debugf("Found %d tips out of %d nodes", len(tips), resolver.Len())

	evaluator := NewWorkEvaluator(workFunc)
	best, bestWork, err := SelectBest(tips, evaluator)
	if err != nil {
		return nil, err
	}
	log.Debugf("Selected %s with work %s after %d work evaluations",
		best, bestWork.Dec(), evaluator.Evaluations())

	return &Result{
		Tips:      tips,
		Best:      best,
		BestWork:  bestWork,
		Chain:     Linearize(best),
		NodeCount: resolver.Len(),
	}, nil
}
