package anagen

import (
	"fmt"
	"math"
	"math/rand"
)

// Scored pairs an agent with the fitness computed for it during one
// generation pass. Fitness is not stored on the agent; it is recomputed
// once per generation and memoized here for the duration of the pass.
type Scored[T any] struct {
	Agent   T
	Fitness float64
}

// Selector chooses a parent index from a scored generation, biased
// toward higher fitness.
type Selector[T any] interface {
	Name() string
	Pick(rng *rand.Rand, scored []Scored[T]) (int, error)
}

// RouletteSelector draws parents with probability proportional to
// fitness. Agents with non-positive fitness carry no selection mass;
// when the total mass is not positive (all fitness values non-positive,
// or not finite) the draw degrades to a uniform choice over the
// population.
type RouletteSelector[T any] struct{}

func (RouletteSelector[T]) Name() string {
	return "roulette"
}

func (RouletteSelector[T]) Pick(rng *rand.Rand, scored []Scored[T]) (int, error) {
	if rng == nil {
		return 0, fmt.Errorf("random source is required")
	}
	if len(scored) == 0 {
		return 0, fmt.Errorf("cannot select from an empty population")
	}

	total := 0.0
	for _, item := range scored {
		if item.Fitness > 0 && !math.IsInf(item.Fitness, 1) {
			total += item.Fitness
		}
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return rng.Intn(len(scored)), nil
	}

	pick := rng.Float64() * total
	acc := 0.0
	for i, item := range scored {
		if item.Fitness <= 0 || math.IsInf(item.Fitness, 1) {
			continue
		}
		acc += item.Fitness
		if pick <= acc {
			return i, nil
		}
	}
	// Floating-point accumulation can land a hair past the final slice;
	// settle on the last agent with positive mass.
	for i := len(scored) - 1; i >= 0; i-- {
		if scored[i].Fitness > 0 {
			return i, nil
		}
	}
	return rng.Intn(len(scored)), nil
}

// TournamentSelector samples Size agents uniformly and picks the best
// fitness among them. Higher sizes raise selection pressure.
type TournamentSelector[T any] struct {
	Size int
}

func (TournamentSelector[T]) Name() string {
	return "tournament"
}

func (s TournamentSelector[T]) Pick(rng *rand.Rand, scored []Scored[T]) (int, error) {
	if rng == nil {
		return 0, fmt.Errorf("random source is required")
	}
	if len(scored) == 0 {
		return 0, fmt.Errorf("cannot select from an empty population")
	}

	size := s.Size
	if size <= 0 {
		size = 3
	}
	if size > len(scored) {
		size = len(scored)
	}

	best := rng.Intn(len(scored))
	for i := 1; i < size; i++ {
		candidate := rng.Intn(len(scored))
		if scored[candidate].Fitness > scored[best].Fitness {
			best = candidate
		}
	}
	return best, nil
}

func scorePopulation[T any](population []T, fitness func(T) float64) []Scored[T] {
	scored := make([]Scored[T], len(population))
	for i, agent := range population {
		scored[i] = Scored[T]{Agent: agent, Fitness: fitness(agent)}
	}
	return scored
}
