package problem

import (
	"context"
	"math/rand"
	"strings"
	"testing"
)

func TestCountOnes(t *testing.T) {
	cases := []struct {
		bits string
		want float64
	}{
		{"", 0},
		{"0000", 0},
		{"1111", 4},
		{"1010", 2},
	}
	for _, tc := range cases {
		if got := countOnes(tc.bits); got != tc.want {
			t.Fatalf("countOnes(%q) = %v, want %v", tc.bits, got, tc.want)
		}
	}
}

func TestFlipRandomBitChangesExactlyOneBit(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	original := "10101010"

	flipped := flipRandomBit(rng, original)
	if len(flipped) != len(original) {
		t.Fatalf("expected same length, got %d", len(flipped))
	}
	diff := 0
	for i := range original {
		if original[i] != flipped[i] {
			diff++
		}
	}
	if diff != 1 {
		t.Fatalf("expected exactly one flipped bit, got %d", diff)
	}
}

func TestSinglePointCrossKeepsPrefixAndSuffix(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	a := "00000000"
	b := "11111111"

	for i := 0; i < 50; i++ {
		child := singlePointCross(rng, a, b)
		if len(child) != len(a) {
			t.Fatalf("expected child length %d, got %d", len(a), len(child))
		}
		// The child must be zeros then ones with at least one byte from
		// each parent.
		boundary := strings.IndexByte(child, '1')
		if boundary <= 0 {
			t.Fatalf("expected a proper crossover point, got %q", child)
		}
		if strings.Contains(child[boundary:], "0") {
			t.Fatalf("expected contiguous parent segments, got %q", child)
		}
	}
}

func TestOneMaxRunImprovesBitCount(t *testing.T) {
	spec := Spec{
		Population:  80,
		Generations: 60,
		Pc:          0.6,
		Pm:          0.3,
		Elites:      1,
		Seed:        5,
	}
	result, err := (OneMax{Bits: 32}).Run(context.Background(), spec)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.BestFitness < 28 {
		t.Fatalf("expected near-optimal bit count for 32-bit onemax, got %v", result.BestFitness)
	}
	if len(result.BestAgent) != 32 {
		t.Fatalf("expected 32-bit rendered agent, got %d bits", len(result.BestAgent))
	}
}
