package bestchain

import (
	"sort"

	"github.com/kaspanet/bestchain/util/chainhash"
)

// FindTips returns the nodes that are no other node's predecessor, sorted by
// hash in stored byte order so that callers walking them see the same order
// on every run.
func FindTips(nodes []*ChainNode) []*ChainNode {
	predecessors := make(map[chainhash.Hash]struct{}, len(nodes))
	for _, node := range nodes {
		if node.predecessor == nil {
			continue
		}
		predecessors[node.predecessor.block.Hash] = struct{}{}
	}

	var tips []*ChainNode
	for _, node := range nodes {
		if _, ok := predecessors[node.block.Hash]; ok {
			continue
		}
		tips = append(tips, node)
	}

	sort.Slice(tips, func(i, j int) bool {
		return chainhash.Less(tips[i].Hash(), tips[j].Hash())
	})
	return tips
}
