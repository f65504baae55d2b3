package model

import (
	"reflect"

	"github.com/limaJavier/equivalence/pkg/inputspace"
	"github.com/samber/lo"
)

var boolType = reflect.TypeOf(false)

// Adapts a Go value into a Predicate. Values already implementing Predicate are returned as they
// are; funcs must declare a fixed number of parameters and return a single value of a bool kind.
// Parameter types are checked according to options.StrictArgumentTypes
//
// Example:
//
//	predicate, err := model.FromFunc(func(a, b bool) bool { return a && b }, model.DefaultOptions())
//	predicate.Arity() // 2
func FromFunc(fn any, options Options) (Predicate, error) {
	return adaptPredicate(0, fn, options)
}

func adaptPredicate(index int, value any, options Options) (Predicate, error) {
	if predicate, ok := value.(Predicate); ok {
		return predicate, nil
	}

	fn := reflect.ValueOf(value)
	if !fn.IsValid() {
		return nil, NotPredicateError{Index: index, Reason: "value is nil"}
	}

	fnType := fn.Type()
	if fnType.Kind() != reflect.Func {
		return nil, NotPredicateError{Index: index, Type: fnType, Reason: "value is not a func"}
	} else if fn.IsNil() {
		return nil, NotPredicateError{Index: index, Type: fnType, Reason: "func is nil"}
	} else if fnType.IsVariadic() {
		return nil, NotPredicateError{Index: index, Type: fnType, Reason: "variadic funcs do not declare a fixed arity"}
	} else if fnType.NumOut() != 1 || fnType.Out(0).Kind() != reflect.Bool {
		return nil, NotPredicateError{Index: index, Type: fnType, Reason: "func must return a single bool"}
	}

	arguments := make([]func(value bool) reflect.Value, fnType.NumIn())
	for parameter := range fnType.NumIn() {
		parameterType := fnType.In(parameter)
		if options.StrictArgumentTypes && parameterType != boolType {
			return nil, InvalidParameterTypeError{Index: index, Parameter: parameter, Type: parameterType}
		}
		arguments[parameter] = argumentBuilder(parameterType)
	}

	return &funcPredicate{fn: fn, arguments: arguments}, nil
}

// Returns how a truth value is turned into an argument of the given type
func argumentBuilder(parameterType reflect.Type) func(value bool) reflect.Value {
	switch parameterType.Kind() {
	case reflect.Bool:
		if parameterType == boolType {
			return func(value bool) reflect.Value {
				return reflect.ValueOf(value)
			}
		}
		return func(value bool) reflect.Value {
			return reflect.ValueOf(value).Convert(parameterType)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return func(value bool) reflect.Value {
			return reflect.ValueOf(lo.Ternary(value, 1, 0)).Convert(parameterType)
		}
	default:
		zero := reflect.Zero(parameterType)
		return func(bool) reflect.Value {
			return zero
		}
	}
}

type funcPredicate struct {
	fn        reflect.Value
	arguments []func(value bool) reflect.Value
}

func (predicate *funcPredicate) Arity() uint64 {
	return uint64(len(predicate.arguments))
}

func (predicate *funcPredicate) Evaluate(combination inputspace.Combination) bool {
	arguments := make([]reflect.Value, len(predicate.arguments))
	for i, build := range predicate.arguments {
		arguments[i] = build(combination[i])
	}
	return predicate.fn.Call(arguments)[0].Bool()
}

// Adapts every value into a Predicate and returns the arity they all share. Fails before any
// predicate is invoked if a value is not a predicate, a parameter is not a bool (strict mode),
// arities differ or the common arity cannot be enumerated
func extractPredicates(values []any, options Options) ([]Predicate, uint64, error) {
	if len(values) == 0 {
		return nil, 0, ErrNoPredicates
	}

	predicates := make([]Predicate, len(values))
	for index, value := range values {
		predicate, err := adaptPredicate(index, value, options)
		if err != nil {
			return nil, 0, err
		}
		predicates[index] = predicate
	}

	arities := lo.Map(predicates, func(predicate Predicate, _ int) uint64 {
		return predicate.Arity()
	})
	arity := arities[0]
	if len(lo.Uniq(arities)) > 1 {
		actual, index, _ := lo.FindIndexOf(arities, func(other uint64) bool {
			return other != arity
		})
		return nil, 0, ArityMismatchError{Index: index, Expected: arity, Actual: actual}
	}

	if arity >= inputspace.MaxArity {
		return nil, 0, ArityLimitExceededError{Arity: arity}
	}

	return predicates, arity, nil
}
