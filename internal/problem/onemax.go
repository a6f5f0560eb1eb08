package problem

import (
	"context"
	"math/rand"
	"strings"
)

// OneMax maximizes the number of set bits in a fixed-length bitstring.
// Agents are '0'/'1' strings, so operators never alias each other's
// storage.
type OneMax struct {
	Bits int
}

func (OneMax) Name() string {
	return "onemax"
}

func (OneMax) Description() string {
	return "maximize the count of 1-bits in a fixed-length bitstring"
}

func (o OneMax) Run(ctx context.Context, spec Spec) (Result, error) {
	bits := o.Bits
	if bits <= 0 {
		bits = 64
	}
	rng := rand.New(rand.NewSource(spec.Seed))

	return runProblem(ctx, spec, operators[string]{
		generate:  func() string { return randomBits(rng, bits) },
		fitness:   countOnes,
		mutate:    func(a string) string { return flipRandomBit(rng, a) },
		crossover: func(a, b string) string { return singlePointCross(rng, a, b) },
		render:    func(a string) string { return a },
	})
}

func randomBits(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

func countOnes(a string) float64 {
	return float64(strings.Count(a, "1"))
}

func flipRandomBit(rng *rand.Rand, a string) string {
	if a == "" {
		return a
	}
	out := []byte(a)
	idx := rng.Intn(len(out))
	if out[idx] == '1' {
		out[idx] = '0'
	} else {
		out[idx] = '1'
	}
	return string(out)
}

func singlePointCross(rng *rand.Rand, a, b string) string {
	if len(a) != len(b) || len(a) < 2 {
		return a
	}
	point := 1 + rng.Intn(len(a)-1)
	return a[:point] + b[point:]
}
