package model

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/limaJavier/equivalence/pkg/inputspace"
)

var (
	ErrNoPredicates         = errors.New("at least one predicate must be provided")
	ErrNotPredicate         = errors.New("value is not a boolean predicate")
	ErrArityMismatch        = errors.New("predicates do not declare the same number of boolean parameters")
	ErrInvalidParameterType = errors.New("predicate parameter is not a bool")
	ErrArityLimitExceeded   = errors.New("predicate arity exceeds the enumeration limit")
)

// Returned when a value handed to the checker is neither a Predicate nor a func with a fixed
// number of parameters and a single boolean result
type NotPredicateError struct {
	Index  int
	Type   reflect.Type
	Reason string
}

func (err NotPredicateError) Error() string {
	return fmt.Sprintf("predicate %d of type %v is not a boolean predicate: %s", err.Index, err.Type, err.Reason)
}

func (err NotPredicateError) Is(target error) bool {
	return target == ErrNotPredicate
}

type ArityMismatchError struct {
	Index    int    // Position of the first predicate whose arity differs from the first one
	Expected uint64 // Arity of the first predicate
	Actual   uint64
}

func (err ArityMismatchError) Error() string {
	return fmt.Sprintf("predicate %d declares %d boolean parameters, but predicate 0 declares %d", err.Index, err.Actual, err.Expected)
}

func (err ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}

// Only returned when StrictArgumentTypes is enabled
type InvalidParameterTypeError struct {
	Index     int // Position of the predicate
	Parameter int
	Type      reflect.Type
}

func (err InvalidParameterTypeError) Error() string {
	return fmt.Sprintf("parameter %d of predicate %d is of type %v, but bool is required", err.Parameter, err.Index, err.Type)
}

func (err InvalidParameterTypeError) Is(target error) bool {
	return target == ErrInvalidParameterType
}

type ArityLimitExceededError struct {
	Arity uint64
}

func (err ArityLimitExceededError) Error() string {
	return fmt.Sprintf("predicates declare %d boolean parameters, but at most %d are supported", err.Arity, inputspace.MaxArity-1)
}

func (err ArityLimitExceededError) Is(target error) bool {
	return target == ErrArityLimitExceeded || target == inputspace.ErrArityLimit
}
