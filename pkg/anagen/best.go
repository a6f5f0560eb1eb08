package anagen

import "errors"

// ErrEmptyPopulation is returned when a best-agent query is made
// against a zero-length population.
var ErrEmptyPopulation = errors.New("population is empty")

// BestIndex evaluates fitness for every agent and returns the index of
// the maximum. Ties resolve to the lowest index, so the result is
// deterministic even when floating-point fitness values collide.
func BestIndex[T any](population []T, fitness func(T) float64) (int, error) {
	if fitness == nil {
		return 0, errors.New("fitness operator is required")
	}
	if len(population) == 0 {
		return 0, ErrEmptyPopulation
	}

	bestIdx := 0
	bestFitness := fitness(population[0])
	for i := 1; i < len(population); i++ {
		f := fitness(population[i])
		if f > bestFitness {
			bestIdx = i
			bestFitness = f
		}
	}
	return bestIdx, nil
}
