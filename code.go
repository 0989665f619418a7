package hufftree

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits: the root-to-leaf path of a symbol in a
// Huffman tree.  The first bit is the choice made at the root.  A lone-leaf
// tree assigns its symbol the empty Code.
type Code []Bit

// String returns the string representation of this Code.
func (c Code) String() string {
	if len(c) == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(len(c))
	for _, bit := range c {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code(nil)

// prepend returns a new Code consisting of bit followed by c.  The receiver
// is not modified.
func (c Code) prepend(bit Bit) Code {
	out := make(Code, 0, len(c)+1)
	out = append(out, bit)
	out = append(out, c...)
	return out
}
