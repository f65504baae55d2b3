package model

func (checker *checker) CheckPairwiseEquivalence(f, g any) (bool, error) {
	predicates, generator, err := checker.prepare([]any{f, g})
	if err != nil {
		return false, err
	}

	first, second := predicates[0], predicates[1]
	for index, combination := range generator.All() {
		if first.Evaluate(combination) != second.Evaluate(combination) {
			checker.options.Logger.V(2).Info("predicates disagree", "index", index, "combination", combination.String())
			return false, nil
		}
	}
	return true, nil
}
