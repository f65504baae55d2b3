package inputspace

import (
	"slices"
	"strings"
)

// Combination is one row of a truth table: position i holds the value given to the i-th parameter
type Combination []bool

func (combination Combination) Clone() Combination {
	return slices.Clone(combination)
}

// Returns the index this combination occupies in the input space (bit i of the index is position i)
func (combination Combination) Index() uint64 {
	return newIndexer(uint64(len(combination))).Index(combination)
}

// Renders the combination as a row of 0s and 1s, first parameter first
func (combination Combination) String() string {
	var builder strings.Builder
	for _, value := range combination {
		if value {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}
