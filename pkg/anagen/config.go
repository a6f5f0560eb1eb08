package anagen

import (
	"fmt"
	"math"
)

// Config describes one evolutionary run over an opaque agent type T.
// The engine never inspects T; every manipulation goes through the four
// operator functions, which are treated as black boxes. A Config is
// immutable for the duration of a run.
type Config[T any] struct {
	// Population is the number of agents per generation. The length of
	// every generation, including generation 0, equals this value.
	Population int
	// Generations is the number of generation transitions executed.
	// Generation 0 is the initial population; a value of 0 returns it
	// unchanged.
	Generations int
	// Pc is the probability in [0, 1] that a slot of the next
	// generation is produced by crossover of two independently selected
	// parents rather than a single-parent copy.
	Pc float64
	// Pm is the probability in [0, 1] that a candidate is passed
	// through Mutate before entering the next generation, decided
	// independently of the crossover draw.
	Pm float64
	// Elites carries the top agents unchanged into the next generation.
	// Zero disables elitism, which is the default contract.
	Elites int
	// Seed seeds the engine's random source used for selection and the
	// Pc/Pm trials. Randomness inside the operators stays caller-owned.
	Seed int64

	// Generate produces one agent. It is invoked Population times,
	// sequentially, to build generation 0.
	Generate func() T
	// Fitness evaluates an agent; higher is better. It must be
	// deterministic for a given agent so selection and BestIndex are
	// meaningful.
	Fitness func(T) float64
	// Mutate returns a perturbed agent derived from its input without
	// modifying the input.
	Mutate func(T) T
	// Crossover returns an offspring derived from two parents without
	// modifying either input.
	Crossover func(T, T) T

	// Selector picks parents from a scored generation. Defaults to
	// RouletteSelector.
	Selector Selector[T]
}

func (c Config[T]) validate() error {
	if c.Population < 1 {
		return fmt.Errorf("population must be >= 1, got %d", c.Population)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must be >= 0, got %d", c.Generations)
	}
	if math.IsNaN(c.Pc) || c.Pc < 0 || c.Pc > 1 {
		return fmt.Errorf("crossover probability must be in [0, 1], got %v", c.Pc)
	}
	if math.IsNaN(c.Pm) || c.Pm < 0 || c.Pm > 1 {
		return fmt.Errorf("mutation probability must be in [0, 1], got %v", c.Pm)
	}
	if c.Elites < 0 || c.Elites > c.Population {
		return fmt.Errorf("elites must be in [0, population], got %d", c.Elites)
	}
	if c.Generate == nil {
		return fmt.Errorf("generate operator is required")
	}
	if c.Fitness == nil {
		return fmt.Errorf("fitness operator is required")
	}
	if c.Mutate == nil {
		return fmt.Errorf("mutate operator is required")
	}
	if c.Crossover == nil {
		return fmt.Errorf("crossover operator is required")
	}
	return nil
}
