package huffman

import "strings"

// Code is a symbol's path from the root, held in the low Len bits of Bits
// with the first edge in the most significant position. A tree built from
// 4-byte counts is far shallower than 64 levels.
type Code struct {
	Bits uint64
	Len  uint8
}

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// CodeTable maps each symbol of a tree to its code.
type CodeTable struct {
	codes [256]Code
}

// Generate walks the tree from root, appending 0 for a left edge and 1 for a
// right edge. A root that is itself a leaf gets the code "1".
func Generate(root *Node) *CodeTable {
	table := &CodeTable{}
	if root == nil {
		return table
	}
	if root.IsLeaf() {
		table.codes[root.Data] = Code{Bits: 1, Len: 1}
		return table
	}

	type frame struct {
		node *Node
		code Code
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsLeaf() {
			table.codes[f.node.Data] = f.code
			continue
		}
		stack = append(stack,
			frame{f.node.Right, Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}},
			frame{f.node.Left, Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}},
		)
	}
	return table
}

// Lookup reports the code of symbol and whether the symbol has one.
func (ct *CodeTable) Lookup(symbol byte) (Code, bool) {
	c := ct.codes[symbol]
	return c, c.Len != 0
}

func (ct *CodeTable) Len() int {
	n := 0
	for _, c := range ct.codes {
		if c.Len != 0 {
			n++
		}
	}
	return n
}

// BitLen is the size in bits of the packed stream for content with the
// frequencies of t.
func (ct *CodeTable) BitLen(t *FrequencyTable) uint64 {
	var bits uint64
	for i, c := range ct.codes {
		bits += uint64(c.Len) * uint64(t.Frequency(byte(i)))
	}
	return bits
}
