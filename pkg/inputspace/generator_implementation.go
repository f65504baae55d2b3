package inputspace

import (
	"iter"

	"github.com/samber/lo"
)

type generatorImplementation struct {
	indexer *indexerImplementation
}

func (generator *generatorImplementation) Arity() uint64 {
	return generator.indexer.Arity()
}

func (generator *generatorImplementation) Size() uint64 {
	return Size(generator.indexer.Arity())
}

func (generator *generatorImplementation) Combinations() []Combination {
	return lo.Times(int(generator.Size()), func(index int) Combination {
		return generator.indexer.Combination(uint64(index))
	})
}

func (generator *generatorImplementation) All() iter.Seq2[uint64, Combination] {
	return func(yield func(uint64, Combination) bool) {
		combination := make(Combination, generator.indexer.Arity())
		size := generator.Size()
		for index := uint64(0); index < size; index++ {
			generator.indexer.Fill(index, combination)
			if !yield(index, combination) {
				return
			}
		}
	}
}
