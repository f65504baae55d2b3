package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairwiseAgreesWithUnanimity(t *testing.T) {
	checker := newTestChecker(t)

	for arity := range uint64(3) {
		functions := uint64(1) << (uint64(1) << arity) // 2^(2^arity) distinct predicates
		for table := range functions {
			for other := range functions {
				//** Arrange
				f, g := tablePredicate(arity, table), tablePredicate(arity, other)

				//** Act
				pairwise, err := checker.CheckPairwiseEquivalence(f, g)
				require.NoError(t, err)
				unanimity, err := checker.CheckEquivalence(f, g)
				require.NoError(t, err)

				//** Assert
				assert.Equal(t, unanimity, pairwise)
				assert.Equal(t, table == other, pairwise)
			}
		}
	}
}

func TestPairwiseShortCircuits(t *testing.T) {
	//** Arrange
	invocations := 0
	counted := func(a, b, c bool) bool {
		invocations++
		return b
	}
	constant := func(a, b, c bool) bool { return false }

	//** Act
	equivalent, err := CheckPairwiseEquivalence(counted, constant)

	//** Assert
	require.NoError(t, err)
	assert.False(t, equivalent)
	assert.Equal(t, 3, invocations) // b is first true at index 2
}

func TestPairwiseValidation(t *testing.T) {
	_, err := CheckPairwiseEquivalence(func(a bool) bool { return a }, nil)
	assert.ErrorIs(t, err, ErrNotPredicate)

	_, err = CheckPairwiseEquivalence(widePredicate{}, widePredicate{})
	assert.ErrorIs(t, err, ErrArityLimitExceeded)

	_, err = CheckPairwiseEquivalence(func(a string) bool { return a == "" }, func(a bool) bool { return a })
	if DefaultStrictArgumentTypes {
		assert.ErrorIs(t, err, ErrInvalidParameterType)
	}
}
