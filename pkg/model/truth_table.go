package model

import (
	"github.com/limaJavier/equivalence/pkg/inputspace"
	"github.com/samber/lo"
)

// Returns the outputs of the predicate for every combination, in enumeration order (position k
// holds the output for the combination with index k)
func TruthTable(predicate Predicate) ([]bool, error) {
	generator, err := inputspace.NewGenerator(predicate.Arity())
	if err != nil {
		return nil, ArityLimitExceededError{Arity: predicate.Arity()}
	}

	return lo.Map(generator.Combinations(), func(combination inputspace.Combination, _ int) bool {
		return predicate.Evaluate(combination)
	}), nil
}
