package inputspace

import (
	"errors"
	"iter"
)

// Combinations are indexed with an uint64, so the input space of 64 or more parameters cannot be enumerated
const MaxArity uint64 = 64

var ErrArityLimit = errors.New("arity must be smaller than 64")

// Generator enumerates the whole input space of a given arity.
// Combinations are produced in index order, where the index k is read as an n-bit number and
// bit i of k is assigned to the i-th parameter.
//
// Example:
//
//	generator, _ := inputspace.NewGenerator(2)
//	for index, combination := range generator.All() {
//		fmt.Println(index, combination) // 0 00, 1 10, 2 01, 3 11
//	}
type Generator interface {
	Arity() uint64

	// Number of combinations (2^arity)
	Size() uint64

	// Materializes every combination. Memory grows with arity*2^arity, prefer All for anything but small arities
	Combinations() []Combination

	// Lazy and restartable sequence of (index, combination) pairs.
	// The yielded combination is a buffer reused between iterations: Clone it to keep it
	All() iter.Seq2[uint64, Combination]
}

func NewGenerator(arity uint64) (Generator, error) {
	if arity >= MaxArity {
		return nil, ErrArityLimit
	}
	return &generatorImplementation{indexer: newIndexer(arity)}, nil
}

// Returns the number of combinations for the given arity (2^arity). Arity must be smaller than MaxArity
func Size(arity uint64) uint64 {
	return 1 << arity
}
