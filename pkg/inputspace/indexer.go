package inputspace

// Indexer gives a unique index to every combination of an input space and vice versa
type Indexer interface {
	// Returns the unique index of a combination
	Index(combination Combination) uint64
	// Returns the combination stored at the given index
	Combination(index uint64) Combination
	// Writes the combination stored at the given index into an existing buffer of length Arity
	Fill(index uint64, combination Combination)
	Arity() uint64
}

func NewIndexer(arity uint64) Indexer {
	return newIndexer(arity)
}

func newIndexer(arity uint64) *indexerImplementation {
	return &indexerImplementation{arity: arity}
}
