package problem

import (
	"context"
	"fmt"
	"sort"

	"anagen/internal/model"
	"anagen/pkg/anagen"
)

// Spec carries the engine parameters shared by every benchmark problem.
type Spec struct {
	Population  int
	Generations int
	Pc          float64
	Pm          float64
	Elites      int
	Seed        int64
	Selection   string
}

// Result is the problem-agnostic outcome of one run: the rendered best
// agent plus the fitness trajectory the engine recorded.
type Result struct {
	BestFitness      float64
	BestAgent        string
	BestByGeneration []float64
	Diagnostics      []model.GenerationStats
}

// Problem binds a candidate representation and its four operators and
// runs the engine over it. The engine stays generic; every
// representation choice lives on this side.
type Problem interface {
	Name() string
	Description() string
	Run(ctx context.Context, spec Spec) (Result, error)
}

// All returns the built-in benchmark problems with their default shapes.
func All() []Problem {
	return []Problem{
		Parabola{},
		Sphere{Dimensions: 8},
		OneMax{Bits: 64},
		DeceptiveTrap{Blocks: 8, BlockSize: 4},
	}
}

func ByName(name string) (Problem, error) {
	for _, p := range All() {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown problem: %s", name)
}

func Names() []string {
	problems := All()
	names := make([]string, 0, len(problems))
	for _, p := range problems {
		names = append(names, p.Name())
	}
	sort.Strings(names)
	return names
}

type operators[T any] struct {
	generate  func() T
	fitness   func(T) float64
	mutate    func(T) T
	crossover func(T, T) T
	render    func(T) string
}

func runProblem[T any](ctx context.Context, spec Spec, ops operators[T]) (Result, error) {
	selector, err := selectorFor[T](spec.Selection)
	if err != nil {
		return Result{}, err
	}

	engine, err := anagen.New(anagen.Config[T]{
		Population:  spec.Population,
		Generations: spec.Generations,
		Pc:          spec.Pc,
		Pm:          spec.Pm,
		Elites:      spec.Elites,
		Seed:        spec.Seed,
		Generate:    ops.generate,
		Fitness:     ops.fitness,
		Mutate:      ops.mutate,
		Crossover:   ops.crossover,
		Selector:    selector,
	})
	if err != nil {
		return Result{}, err
	}

	run, err := engine.Run(ctx)
	if err != nil {
		return Result{}, err
	}
	best, err := engine.Best(run.FinalPopulation)
	if err != nil {
		return Result{}, err
	}
	bestAgent := run.FinalPopulation[best]

	diagnostics := make([]model.GenerationStats, 0, len(run.GenerationDiagnostics))
	for _, diag := range run.GenerationDiagnostics {
		diagnostics = append(diagnostics, model.GenerationStats{
			Generation:  diag.Generation,
			BestFitness: diag.BestFitness,
			MeanFitness: diag.MeanFitness,
			MinFitness:  diag.MinFitness,
		})
	}

	return Result{
		BestFitness:      ops.fitness(bestAgent),
		BestAgent:        ops.render(bestAgent),
		BestByGeneration: run.BestByGeneration,
		Diagnostics:      diagnostics,
	}, nil
}

func selectorFor[T any](name string) (anagen.Selector[T], error) {
	switch name {
	case "", "roulette":
		return anagen.RouletteSelector[T]{}, nil
	case "tournament":
		return anagen.TournamentSelector[T]{Size: 3}, nil
	default:
		return nil, fmt.Errorf("unsupported selection strategy: %s", name)
	}
}
