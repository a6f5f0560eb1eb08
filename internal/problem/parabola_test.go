package problem

import (
	"context"
	"math"
	"strconv"
	"testing"
)

func TestParabolaConvergesTowardPeak(t *testing.T) {
	spec := Spec{
		Population:  100,
		Generations: 20,
		Pc:          0.5,
		Pm:          0.4,
		Seed:        99,
	}
	result, err := (Parabola{}).Run(context.Background(), spec)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	best, err := strconv.ParseFloat(result.BestAgent, 64)
	if err != nil {
		t.Fatalf("parse rendered agent: %v", err)
	}
	if math.Abs(best) >= 1.0 {
		t.Fatalf("expected best agent near 0, got %v", best)
	}
	if result.BestFitness <= 4.0 {
		t.Fatalf("expected best fitness near 5, got %v", result.BestFitness)
	}
}
