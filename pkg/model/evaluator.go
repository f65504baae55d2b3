package model

import (
	"github.com/limaJavier/equivalence/pkg/inputspace"
	"github.com/samber/lo"
)

type evaluator interface {
	// Invokes every predicate with the combination and reports whether the row is accepted, that is
	// whether the outputs are either all true or all false
	Evaluate(combination inputspace.Combination) (outputs []bool, accepted bool)
}

func newEvaluator(predicates []Predicate) evaluator {
	return &unanimityEvaluator{predicates: predicates}
}

type unanimityEvaluator struct {
	predicates []Predicate
}

func (evaluator *unanimityEvaluator) Evaluate(combination inputspace.Combination) ([]bool, bool) {
	outputs := lo.Map(evaluator.predicates, func(predicate Predicate, _ int) bool {
		return predicate.Evaluate(combination)
	})
	counted := lo.Count(outputs, true)
	return outputs, counted == 0 || counted == len(outputs)
}
