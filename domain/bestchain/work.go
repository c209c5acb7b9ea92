package bestchain

import (
	"github.com/holiman/uint256"
	"github.com/kaspanet/bestchain/util/difficulty"
	"github.com/pkg/errors"
)

// WorkFunc returns the work a single block contributes given its difficulty
// bits.
type WorkFunc func(bits uint32) *uint256.Int

// BitsWork uses the raw difficulty field as the block's work. This is the
// default metric; it sums the compact field as a plain integer and does not
// reflect the real proof of work behind a header.
func BitsWork(bits uint32) *uint256.Int {
	return uint256.NewInt(uint64(bits))
}

// TargetWork returns the expected number of hashes needed to produce a header
// with the given bits, that is 2^256 / (target+1).
func TargetWork(bits uint32) *uint256.Int {
	work, overflow := uint256.FromBig(difficulty.CalcWork(bits))
	if overflow {
		// CalcWork never exceeds 2^255 for a positive target.
		return new(uint256.Int)
	}
	return work
}

// Names accepted by WorkFuncByName.
const (
	WorkMetricBits   = "bits"
	WorkMetricTarget = "target"
)

// WorkFuncByName returns the WorkFunc registered under name.
func WorkFuncByName(name string) (WorkFunc, error) {
	switch name {
	case WorkMetricBits:
		return BitsWork, nil
	case WorkMetricTarget:
		return TargetWork, nil
	default:
		return nil, errors.Errorf("unknown work metric %q, expected %q or %q",
			name, WorkMetricBits, WorkMetricTarget)
	}
}

// WorkEvaluator computes and caches the accumulated work of chain nodes.
type WorkEvaluator struct {
	workFunc    WorkFunc
	evaluations uint64
}

// NewWorkEvaluator returns a WorkEvaluator using workFunc for the per-block
// work.
func NewWorkEvaluator(workFunc WorkFunc) *WorkEvaluator {
	return &WorkEvaluator{workFunc: workFunc}
}

// AccumulatedWork returns the sum of the work of node and all of its
// predecessors. The result is cached on every node along the way, so each
// node is evaluated once no matter how many chains share it.
//
// The returned value is owned by the node and must not be modified.
func (e *WorkEvaluator) AccumulatedWork(node *ChainNode) (*uint256.Int, error) {
	if node.work != nil {
		return node.work, nil
	}

	var pending []*ChainNode
	current := node
	for current != nil && current.work == nil {
		pending = append(pending, current)
		current = current.predecessor
	}

	base := new(uint256.Int)
	if current != nil {
		base = current.work
	}
	for i := len(pending) - 1; i >= 0; i-- {
		pendingNode := pending[i]
		work, overflow := new(uint256.Int).AddOverflow(base, e.workFunc(pendingNode.block.Bits))
		if overflow {
			return nil, errors.Wrapf(ErrWorkOverflow, "accumulated work of %s", pendingNode)
		}
		pendingNode.work = work
		e.evaluations++
		base = work
	}

	return node.work, nil
}

// Evaluations returns how many nodes had their work computed by e.
func (e *WorkEvaluator) Evaluations() uint64 {
	return e.evaluations
}
