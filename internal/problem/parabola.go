package problem

import (
	"context"
	"math/rand"
	"strconv"
)

// Parabola maximizes 5 - x^2 over a single real value. The global
// maximum of 5 sits at x = 0, so the rendered best agent should
// converge toward zero.
type Parabola struct{}

func (Parabola) Name() string {
	return "parabola"
}

func (Parabola) Description() string {
	return "maximize 5 - x^2 over one real value; optimum at x = 0"
}

func (p Parabola) Run(ctx context.Context, spec Spec) (Result, error) {
	rng := rand.New(rand.NewSource(spec.Seed))

	return runProblem(ctx, spec, operators[float64]{
		generate: func() float64 {
			return rng.Float64()*10 - 5
		},
		fitness: func(a float64) float64 {
			return 5.0 - a*a
		},
		mutate: func(a float64) float64 {
			return a + rng.Float64()*0.02 - 0.01
		},
		crossover: func(a, b float64) float64 {
			return (a + b) / 2
		},
		render: func(a float64) string {
			return strconv.FormatFloat(a, 'f', 6, 64)
		},
	})
}
