package hufftree

import (
	"math"
)

// satAdd32 adds two weights with saturation, so that pathological inputs
// cannot overflow a fork's weight.
func satAdd32(a uint32, b uint32) uint32 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint32
	}
	return sum
}
