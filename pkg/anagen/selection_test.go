package anagen

import (
	"math/rand"
	"testing"
)

func TestRouletteSelectorBiasesTowardHigherFitness(t *testing.T) {
	scored := []Scored[string]{
		{Agent: "weak", Fitness: 1.0},
		{Agent: "strong", Fitness: 9.0},
	}
	selector := RouletteSelector[string]{}
	rng := rand.New(rand.NewSource(42))

	counts := make([]int, len(scored))
	for i := 0; i < 1000; i++ {
		idx, err := selector.Pick(rng, scored)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		counts[idx]++
	}
	if counts[1] <= counts[0] {
		t.Fatalf("expected fitness-proportional bias: weak=%d strong=%d", counts[0], counts[1])
	}
	if counts[0] == 0 {
		t.Fatal("expected weak agent to retain some selection mass")
	}
}

func TestRouletteSelectorUniformOnEqualFitness(t *testing.T) {
	scored := make([]Scored[int], 4)
	for i := range scored {
		scored[i] = Scored[int]{Agent: i, Fitness: 1.0}
	}
	selector := RouletteSelector[int]{}
	rng := rand.New(rand.NewSource(11))

	counts := make([]int, len(scored))
	for i := 0; i < 4000; i++ {
		idx, err := selector.Pick(rng, scored)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		counts[idx]++
	}
	for i, count := range counts {
		if count < 800 || count > 1200 {
			t.Fatalf("index %d picked %d times, expected roughly 1000 of 4000", i, count)
		}
	}
}

func TestRouletteSelectorDegradesToUniformOnNonPositiveFitness(t *testing.T) {
	scored := []Scored[int]{
		{Agent: 0, Fitness: -3.0},
		{Agent: 1, Fitness: 0.0},
		{Agent: 2, Fitness: -1.5},
	}
	selector := RouletteSelector[int]{}
	rng := rand.New(rand.NewSource(19))

	seen := make(map[int]int, len(scored))
	for i := 0; i < 3000; i++ {
		idx, err := selector.Pick(rng, scored)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		seen[idx]++
	}
	if len(seen) != len(scored) {
		t.Fatalf("expected uniform fallback across all %d agents, saw %d", len(scored), len(seen))
	}
}

func TestRouletteSelectorSkipsNonPositiveMass(t *testing.T) {
	scored := []Scored[int]{
		{Agent: 0, Fitness: -5.0},
		{Agent: 1, Fitness: 2.0},
	}
	selector := RouletteSelector[int]{}
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {
		idx, err := selector.Pick(rng, scored)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if idx != 1 {
			t.Fatalf("expected only the positive-fitness agent to be selected, got index %d", idx)
		}
	}
}

func TestRouletteSelectorRejectsEmptyPopulation(t *testing.T) {
	selector := RouletteSelector[int]{}
	rng := rand.New(rand.NewSource(1))
	if _, err := selector.Pick(rng, nil); err == nil {
		t.Fatal("expected error for empty population")
	}
}

func TestRouletteSelectorRequiresRandomSource(t *testing.T) {
	selector := RouletteSelector[int]{}
	if _, err := selector.Pick(nil, []Scored[int]{{Agent: 0, Fitness: 1}}); err == nil {
		t.Fatal("expected error for nil random source")
	}
}

func TestTournamentSelectorPrefersStrongerAgents(t *testing.T) {
	scored := []Scored[int]{
		{Agent: 0, Fitness: 0.1},
		{Agent: 1, Fitness: 0.2},
		{Agent: 2, Fitness: 0.9},
		{Agent: 3, Fitness: 0.3},
	}
	selector := TournamentSelector[int]{Size: 3}
	rng := rand.New(rand.NewSource(27))

	counts := make([]int, len(scored))
	for i := 0; i < 1000; i++ {
		idx, err := selector.Pick(rng, scored)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		counts[idx]++
	}
	for i, count := range counts {
		if i == 2 {
			continue
		}
		if counts[2] <= count {
			t.Fatalf("expected index 2 to dominate picks: counts=%v", counts)
		}
	}
}

func TestTournamentSelectorDefaultsSize(t *testing.T) {
	scored := []Scored[int]{{Agent: 0, Fitness: 1.0}}
	selector := TournamentSelector[int]{}
	rng := rand.New(rand.NewSource(2))

	idx, err := selector.Pick(rng, scored)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected sole agent at index 0, got %d", idx)
	}
}
