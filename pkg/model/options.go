package model

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/mitchellh/mapstructure"
)

type Options struct {
	// Whether every parameter of a func predicate must be exactly of type bool. When disabled the
	// type check is skipped: parameters of a bool kind receive the truth value, numeric parameters
	// receive 0 or 1 and any other parameter receives its zero value. Equivalence is undefined
	// for funcs that do not behave as boolean predicates in that mode
	StrictArgumentTypes bool `mapstructure:"strictArgumentTypes"`

	// Receives validation details (V(1)) and the first disagreeing combination (V(2))
	Logger logr.Logger `mapstructure:"-"`
}

func DefaultOptions() Options {
	return Options{
		StrictArgumentTypes: DefaultStrictArgumentTypes,
		Logger:              logr.Discard(),
	}
}

// Builds options from a decoded configuration map (e.g. the result of unmarshalling a JSON
// object). Missing keys keep their default value and unknown keys are rejected
func OptionsFromMap(raw map[string]any) (Options, error) {
	options := DefaultOptions()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &options,
	})
	if err != nil {
		return Options{}, fmt.Errorf("cannot build options decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("cannot decode options: %w", err)
	}
	return options, nil
}
