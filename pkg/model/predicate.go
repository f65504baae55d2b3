package model

import "github.com/limaJavier/equivalence/pkg/inputspace"

// Predicate is a boolean function with a fixed number of boolean parameters.
// Implementations are expected to be pure, deterministic and terminating: the checker
// invokes them once per combination and provides no enforcement of any of these properties
type Predicate interface {
	// Number of boolean parameters
	Arity() uint64

	// Evaluates the predicate with the combination's values as its positional arguments.
	// The combination must not be retained nor modified
	Evaluate(combination inputspace.Combination) bool
}

type combinationPredicate struct {
	arity uint64
	fn    func(combination inputspace.Combination) bool
}

// Returns a Predicate that receives the whole combination at once, handy for predicates over a
// variable number of inputs (e.g. parity or majority functions)
func FromCombinationFunc(arity uint64, fn func(combination inputspace.Combination) bool) Predicate {
	return &combinationPredicate{arity: arity, fn: fn}
}

func (predicate *combinationPredicate) Arity() uint64 {
	return predicate.arity
}

func (predicate *combinationPredicate) Evaluate(combination inputspace.Combination) bool {
	return predicate.fn(combination.Clone()) // fn is user code and may keep or modify its argument
}
