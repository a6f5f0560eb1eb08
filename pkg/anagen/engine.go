package anagen

import (
	"context"
	"math/rand"
	"sort"
)

// GenerationDiagnostics summarizes the fitness pass of one generation.
type GenerationDiagnostics struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
	MeanFitness float64 `json:"mean_fitness"`
	MinFitness  float64 `json:"min_fitness"`
}

// RunResult carries the final population of a run together with the
// per-generation fitness summaries gathered along the way.
type RunResult[T any] struct {
	FinalPopulation       []T
	BestByGeneration      []float64
	GenerationDiagnostics []GenerationDiagnostics
}

// Engine evolves a population of opaque agents across a fixed number of
// generations, maximizing the configured fitness function. It is not
// safe for concurrent use; one Engine drives one run at a time.
type Engine[T any] struct {
	cfg Config[T]
	rng *rand.Rand
}

// New validates the configuration and builds an engine. Invalid scalar
// fields or missing operators fail here, never silently clamped.
func New[T any](cfg Config[T]) (*Engine[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Selector == nil {
		cfg.Selector = RouletteSelector[T]{}
	}
	return &Engine[T]{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run builds generation 0 and applies exactly Generations transitions,
// returning the final population. The context is checked once per
// generation boundary; between checks a transition always runs to
// completion.
func (e *Engine[T]) Run(ctx context.Context) (RunResult[T], error) {
	population := e.seedPopulation()

	bestHistory := make([]float64, 0, e.cfg.Generations)
	diagnostics := make([]GenerationDiagnostics, 0, e.cfg.Generations)

	for gen := 0; gen < e.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return RunResult[T]{}, err
		}

		scored := scorePopulation(population, e.cfg.Fitness)
		diag := summarizeGeneration(scored, gen)
		bestHistory = append(bestHistory, diag.BestFitness)
		diagnostics = append(diagnostics, diag)

		next, err := e.nextGeneration(scored)
		if err != nil {
			return RunResult[T]{}, err
		}
		population = next
	}

	return RunResult[T]{
		FinalPopulation:       population,
		BestByGeneration:      bestHistory,
		GenerationDiagnostics: diagnostics,
	}, nil
}

// Best returns the index of the fittest agent in a population using the
// configured fitness operator. Works on any snapshot, not only the
// final one.
func (e *Engine[T]) Best(population []T) (int, error) {
	return BestIndex(population, e.cfg.Fitness)
}

// seedPopulation builds generation 0 by invoking Generate once per
// slot, sequentially, so stateful generators see a predictable call
// order.
func (e *Engine[T]) seedPopulation() []T {
	population := make([]T, e.cfg.Population)
	for i := range population {
		population[i] = e.cfg.Generate()
	}
	return population
}

// nextGeneration produces generation g+1 from the scored generation g:
// optional elite carry-over, then per slot one roulette-selected parent,
// a Bernoulli(Pc) crossover draw and an independent Bernoulli(Pm)
// mutation draw. Replacement is generational; the scored input is left
// untouched.
func (e *Engine[T]) nextGeneration(scored []Scored[T]) ([]T, error) {
	next := make([]T, 0, e.cfg.Population)

	if e.cfg.Elites > 0 {
		for _, idx := range rankIndices(scored)[:e.cfg.Elites] {
			next = append(next, scored[idx].Agent)
		}
	}

	for len(next) < e.cfg.Population {
		parent, err := e.cfg.Selector.Pick(e.rng, scored)
		if err != nil {
			return nil, err
		}

		candidate := scored[parent].Agent
		if e.rng.Float64() < e.cfg.Pc {
			mate, err := e.cfg.Selector.Pick(e.rng, scored)
			if err != nil {
				return nil, err
			}
			candidate = e.cfg.Crossover(scored[parent].Agent, scored[mate].Agent)
		}
		if e.rng.Float64() < e.cfg.Pm {
			candidate = e.cfg.Mutate(candidate)
		}
		next = append(next, candidate)
	}

	return next, nil
}

// rankIndices orders population indices by descending fitness, ties by
// ascending index so elite carry-over is deterministic.
func rankIndices[T any](scored []Scored[T]) []int {
	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scored[order[i]].Fitness > scored[order[j]].Fitness
	})
	return order
}

func summarizeGeneration[T any](scored []Scored[T], generation int) GenerationDiagnostics {
	if len(scored) == 0 {
		return GenerationDiagnostics{Generation: generation}
	}

	total := 0.0
	best := scored[0].Fitness
	min := scored[0].Fitness
	for _, item := range scored {
		total += item.Fitness
		if item.Fitness > best {
			best = item.Fitness
		}
		if item.Fitness < min {
			min = item.Fitness
		}
	}

	return GenerationDiagnostics{
		Generation:  generation,
		BestFitness: best,
		MeanFitness: total / float64(len(scored)),
		MinFitness:  min,
	}
}
