package inputspace

type indexerImplementation struct {
	arity uint64
}

func (indexer *indexerImplementation) Arity() uint64 {
	return indexer.arity
}

func (indexer *indexerImplementation) Index(combination Combination) uint64 {
	var index uint64
	for position := range indexer.arity {
		if combination[position] {
			index |= 1 << position
		}
	}
	return index
}

func (indexer *indexerImplementation) Combination(index uint64) Combination {
	combination := make(Combination, indexer.arity)
	indexer.Fill(index, combination)
	return combination
}

func (indexer *indexerImplementation) Fill(index uint64, combination Combination) {
	for position := range indexer.arity {
		combination[position] = index&(1<<position) != 0 // Little-endian: bit 0 is the first parameter
	}
}
