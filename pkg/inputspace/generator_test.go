package inputspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorOrdering(t *testing.T) {
	//** Arrange
	generator, err := NewGenerator(2)
	require.NoError(t, err)

	//** Act
	combinations := generator.Combinations()

	//** Assert
	assert.Equal(t, []Combination{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	}, combinations)
}

func TestGeneratorLazyMatchesEager(t *testing.T) {
	for arity := range uint64(10) {
		//** Arrange
		generator, err := NewGenerator(arity)
		require.NoError(t, err)
		eager := generator.Combinations()

		//** Act
		lazy := make([]Combination, 0, generator.Size())
		expectedIndex := uint64(0)
		for index, combination := range generator.All() {
			assert.Equal(t, expectedIndex, index)
			lazy = append(lazy, combination.Clone())
			expectedIndex++
		}

		//** Assert
		assert.Equal(t, Size(arity), uint64(len(eager)))
		assert.Equal(t, eager, lazy)
	}
}

func TestGeneratorIsRestartable(t *testing.T) {
	//** Arrange
	generator, err := NewGenerator(3)
	require.NoError(t, err)
	sequence := generator.All()

	//** Act
	first, second := 0, 0
	for range sequence {
		first++
	}
	for range sequence {
		second++
	}

	//** Assert
	assert.Equal(t, 8, first)
	assert.Equal(t, first, second)
}

func TestGeneratorEarlyExit(t *testing.T) {
	//** Arrange
	generator, err := NewGenerator(5)
	require.NoError(t, err)

	//** Act
	visited := 0
	for index := range generator.All() {
		visited++
		if index == 3 {
			break
		}
	}

	//** Assert
	assert.Equal(t, 4, visited)
}

func TestGeneratorZeroArity(t *testing.T) {
	//** Arrange
	generator, err := NewGenerator(0)
	require.NoError(t, err)

	//** Act
	combinations := generator.Combinations()
	visited := 0
	for _, combination := range generator.All() {
		assert.Empty(t, combination)
		visited++
	}

	//** Assert
	assert.Equal(t, uint64(1), generator.Size())
	assert.Equal(t, []Combination{{}}, combinations)
	assert.Equal(t, 1, visited)
}

func TestGeneratorArityLimit(t *testing.T) {
	_, err := NewGenerator(MaxArity)
	assert.ErrorIs(t, err, ErrArityLimit)

	_, err = NewGenerator(MaxArity + 10)
	assert.ErrorIs(t, err, ErrArityLimit)

	generator, err := NewGenerator(MaxArity - 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, generator.Size())
}
