package problem

import (
	"context"
	"math/rand"
)

// DeceptiveTrap maximizes a concatenation of k-bit trap blocks: a block
// of all ones scores k, any other block scores k minus one minus its
// number of set bits. The gradient points away from the optimum inside
// every block, which makes the landscape deliberately hostile to
// hill-climbing and a useful stress test for selection pressure.
type DeceptiveTrap struct {
	Blocks    int
	BlockSize int
}

func (DeceptiveTrap) Name() string {
	return "trap"
}

func (DeceptiveTrap) Description() string {
	return "maximize concatenated deceptive trap blocks over a bitstring"
}

func (d DeceptiveTrap) Run(ctx context.Context, spec Spec) (Result, error) {
	blocks := d.Blocks
	if blocks <= 0 {
		blocks = 8
	}
	blockSize := d.BlockSize
	if blockSize <= 0 {
		blockSize = 4
	}
	bits := blocks * blockSize
	rng := rand.New(rand.NewSource(spec.Seed))

	return runProblem(ctx, spec, operators[string]{
		generate:  func() string { return randomBits(rng, bits) },
		fitness:   func(a string) float64 { return trapFitness(a, blockSize) },
		mutate:    func(a string) string { return flipRandomBit(rng, a) },
		crossover: func(a, b string) string { return singlePointCross(rng, a, b) },
		render:    func(a string) string { return a },
	})
}

func trapFitness(a string, blockSize int) float64 {
	total := 0.0
	for i := 0; i+blockSize <= len(a); i += blockSize {
		ones := 0
		for j := 0; j < blockSize; j++ {
			if a[i+j] == '1' {
				ones++
			}
		}
		if ones == blockSize {
			total += float64(blockSize)
		} else {
			total += float64(blockSize - ones - 1)
		}
	}
	return total
}
