package huffman

import "sort"

// Node is a code tree node. Leaves carry a symbol in Data; internal nodes
// always have both children and a Weight equal to the sum of theirs.
type Node struct {
	Weight uint64
	Data   byte
	Left   *Node
	Right  *Node
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build runs Huffman's algorithm over the table and returns the root, or nil
// for an empty table.
//
// Leaves enter the pool in Symbols order and are stable-sorted by
// weight. Each round takes the two front nodes as left and right child and
// puts the parent behind every pool node of equal or smaller weight. Encoder
// and decoder both depend on this order to grow the same tree.
func Build(t *FrequencyTable) *Node {
	symbols := t.Symbols()
	if len(symbols) == 0 {
		return nil
	}

	nodePool := make([]*Node, 0, len(symbols))
	for _, s := range symbols {
		nodePool = append(nodePool, &Node{
			Weight: uint64(t.Frequency(s)),
			Data:   s,
		})
	}
	sort.SliceStable(nodePool, func(i, j int) bool {
		return nodePool[i].Weight < nodePool[j].Weight
	})

	for len(nodePool) > 1 {
		left, right := nodePool[0], nodePool[1]
		parent := &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
		}

		rest := nodePool[2:]
		idx := sort.Search(len(rest), func(i int) bool {
			return rest[i].Weight > parent.Weight
		})
		copy(nodePool[1:], rest[:idx])
		nodePool[idx+1] = parent
		nodePool = nodePool[1:]
	}
	return nodePool[0]
}
