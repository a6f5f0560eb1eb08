package problem

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
)

// Sphere maximizes the negated sphere function -sum(x_i^2) over an
// n-dimensional real vector. The optimum of 0 sits at the origin.
type Sphere struct {
	Dimensions int
}

func (Sphere) Name() string {
	return "sphere"
}

func (Sphere) Description() string {
	return "maximize -sum(x_i^2) over an n-dimensional vector; optimum at the origin"
}

func (s Sphere) Run(ctx context.Context, spec Spec) (Result, error) {
	dims := s.Dimensions
	if dims <= 0 {
		dims = 8
	}
	rng := rand.New(rand.NewSource(spec.Seed))

	return runProblem(ctx, spec, operators[[]float64]{
		generate: func() []float64 {
			vec := make([]float64, dims)
			for i := range vec {
				vec[i] = rng.Float64()*10 - 5
			}
			return vec
		},
		fitness: func(a []float64) float64 {
			total := 0.0
			for _, x := range a {
				total += x * x
			}
			return -total
		},
		mutate: func(a []float64) []float64 {
			// Perturb a single coordinate of a fresh copy; the input
			// slice must stay untouched.
			out := append([]float64(nil), a...)
			idx := rng.Intn(len(out))
			out[idx] += rng.Float64()*0.2 - 0.1
			return out
		},
		crossover: func(a, b []float64) []float64 {
			out := make([]float64, len(a))
			for i := range out {
				if rng.Intn(2) == 0 {
					out[i] = a[i]
				} else {
					out[i] = b[i]
				}
			}
			return out
		},
		render: func(a []float64) string {
			parts := make([]string, len(a))
			for i, x := range a {
				parts[i] = strconv.FormatFloat(x, 'f', 4, 64)
			}
			return "[" + strings.Join(parts, ", ") + "]"
		},
	})
}
