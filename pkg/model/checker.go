package model

import (
	"github.com/limaJavier/equivalence/pkg/inputspace"
)

// Checker decides whether boolean predicates compute the same truth table by evaluating them on
// every combination of their inputs. Predicates can be Predicate implementations or funcs such as
// func(a, b bool) bool.
//
// Every method validates its input before any predicate is invoked and returns one of
// ErrNoPredicates, NotPredicateError, InvalidParameterTypeError, ArityMismatchError or
// ArityLimitExceededError on failure. Panics raised by the predicates are not recovered.
type Checker interface {
	// Returns true if and only if all predicates agree on every combination. Stops at the first
	// combination where the outputs are not unanimous
	CheckEquivalence(predicates ...any) (bool, error)

	// Same as CheckEquivalence for exactly two predicates, comparing their outputs directly
	CheckPairwiseEquivalence(f, g any) (bool, error)

	// Same as CheckEquivalence but also reports the combination that falsified the equivalence
	Compare(predicates ...any) (Result, error)
}

// Result is the detailed verdict of a comparison
type Result struct {
	Equivalent bool

	// First combination, in enumeration order, where the predicates disagree. Nil when Equivalent
	Counterexample inputspace.Combination

	// Outputs of each predicate on Counterexample. Nil when Equivalent
	Outputs []bool

	// Number of combinations that were evaluated
	Rows uint64
}

func NewChecker(options Options) Checker {
	return &checker{options: options}
}

// Checks the predicates with DefaultOptions
func CheckEquivalence(predicates ...any) (bool, error) {
	return NewChecker(DefaultOptions()).CheckEquivalence(predicates...)
}

// Checks two predicates with DefaultOptions
func CheckPairwiseEquivalence(f, g any) (bool, error) {
	return NewChecker(DefaultOptions()).CheckPairwiseEquivalence(f, g)
}

type checker struct {
	options Options
}

func (checker *checker) CheckEquivalence(predicates ...any) (bool, error) {
	result, err := checker.Compare(predicates...)
	if err != nil {
		return false, err
	}
	return result.Equivalent, nil
}

func (checker *checker) Compare(predicates ...any) (Result, error) {
	//** Validate predicates
	set, generator, err := checker.prepare(predicates)
	if err != nil {
		return Result{}, err
	}

	//** Evaluate every combination
	evaluator := newEvaluator(set)
	rows := uint64(0)
	for index, combination := range generator.All() {
		rows++
		outputs, accepted := evaluator.Evaluate(combination)
		if !accepted {
			checker.options.Logger.V(2).Info("predicates disagree", "index", index, "combination", combination.String(), "outputs", outputs)
			return Result{
				Equivalent:     false,
				Counterexample: combination.Clone(),
				Outputs:        outputs,
				Rows:           rows,
			}, nil
		}
	}

	return Result{Equivalent: true, Rows: rows}, nil
}

func (checker *checker) prepare(values []any) ([]Predicate, inputspace.Generator, error) {
	predicates, arity, err := extractPredicates(values, checker.options)
	if err != nil {
		checker.options.Logger.V(1).Info("predicates rejected", "error", err.Error())
		return nil, nil, err
	}

	generator, err := inputspace.NewGenerator(arity)
	if err != nil {
		return nil, nil, ArityLimitExceededError{Arity: arity}
	}

	checker.options.Logger.V(1).Info("predicates validated", "predicates", len(predicates), "arity", arity, "combinations", generator.Size())
	return predicates, generator, nil
}
