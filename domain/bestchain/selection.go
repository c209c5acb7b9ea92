package bestchain

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// SelectBest returns the tip with the greatest accumulated work, along with
// that work. When several tips share the greatest work the first of them in
// tips wins, so callers that need a stable choice must pass the tips in a
// stable order, as FindTips does.
func SelectBest(tips []*ChainNode, evaluator *WorkEvaluator) (*ChainNode, *uint256.Int, error) {
	if len(tips) == 0 {
		return nil, nil, errors.WithStack(ErrNoTips)
	}

	best := tips[0]
	bestWork, err := evaluator.AccumulatedWork(best)
	if err != nil {
		return nil, nil, err
	}
	for _, tip := range tips[1:] {
		work, err := evaluator.AccumulatedWork(tip)
		if err != nil {
			return nil, nil, err
		}
		log.Tracef("Tip %s has work %s", tip, work.Dec())
		if work.Gt(bestWork) {
			best, bestWork = tip, work
		}
	}

	return best, bestWork, nil
}
