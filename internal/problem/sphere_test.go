package problem

import (
	"context"
	"testing"
)

func TestSphereRunProducesVectorAgent(t *testing.T) {
	spec := Spec{
		Population:  60,
		Generations: 30,
		Pc:          0.6,
		Pm:          0.5,
		Elites:      1,
		Seed:        3,
	}
	result, err := (Sphere{Dimensions: 4}).Run(context.Background(), spec)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.BestFitness > 0 {
		t.Fatalf("sphere fitness is bounded above by 0, got %v", result.BestFitness)
	}
	if result.BestFitness < -25 {
		t.Fatalf("expected meaningful progress toward the origin, got %v", result.BestFitness)
	}
	if result.BestAgent == "" || result.BestAgent[0] != '[' {
		t.Fatalf("expected rendered vector, got %q", result.BestAgent)
	}
}

func TestSphereDefaultsDimensions(t *testing.T) {
	spec := Spec{
		Population:  20,
		Generations: 1,
		Pc:          0.5,
		Pm:          0.5,
		Seed:        1,
	}
	if _, err := (Sphere{}).Run(context.Background(), spec); err != nil {
		t.Fatalf("run with default dimensions: %v", err)
	}
}
