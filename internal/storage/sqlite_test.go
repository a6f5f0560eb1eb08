//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"anagen/internal/model"
)

func TestSQLiteStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "anagen.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer store.Close()

	record := model.RunRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: CurrentSchemaVersion,
			CodecVersion:  CurrentCodecVersion,
		},
		ID:           "run-1",
		Problem:      "onemax",
		Population:   50,
		Generations:  100,
		Pc:           0.7,
		Pm:           0.1,
		Seed:         42,
		Selection:    "roulette",
		BestFitness:  48,
		BestAgent:    "111101111111",
		CreatedAtUTC: "2026-03-04T05:06:07Z",
	}
	if err := store.SaveRun(ctx, record); err != nil {
		t.Fatalf("save run: %v", err)
	}

	got, ok, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected run to exist")
	}
	if got != record {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, record)
	}
}

func TestSQLiteStoreUpsertsRun(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "anagen.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer store.Close()

	record := model.RunRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: CurrentSchemaVersion,
			CodecVersion:  CurrentCodecVersion,
		},
		ID:           "run-1",
		Problem:      "sphere",
		BestFitness:  -2.0,
		CreatedAtUTC: "2026-01-01T00:00:00Z",
	}
	if err := store.SaveRun(ctx, record); err != nil {
		t.Fatalf("save run: %v", err)
	}
	record.BestFitness = -0.5
	if err := store.SaveRun(ctx, record); err != nil {
		t.Fatalf("save run again: %v", err)
	}

	got, ok, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected run to exist")
	}
	if got.BestFitness != -0.5 {
		t.Fatalf("expected upserted best fitness -0.5, got %v", got.BestFitness)
	}

	records, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single record after upsert, got %d", len(records))
	}
}

func TestSQLiteStoreHistoryAndStats(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "anagen.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer store.Close()

	history := []float64{0.1, 0.4, 0.9}
	if err := store.SaveFitnessHistory(ctx, "run-1", history); err != nil {
		t.Fatalf("save history: %v", err)
	}
	gotHistory, ok, err := store.GetFitnessHistory(ctx, "run-1")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if !ok || len(gotHistory) != 3 || gotHistory[2] != 0.9 {
		t.Fatalf("history round trip mismatch: ok=%v %v", ok, gotHistory)
	}

	stats := []model.GenerationStats{{Generation: 0, BestFitness: 0.1, MeanFitness: 0.05, MinFitness: 0.0}}
	if err := store.SaveGenerationStats(ctx, "run-1", stats); err != nil {
		t.Fatalf("save stats: %v", err)
	}
	gotStats, ok, err := store.GetGenerationStats(ctx, "run-1")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if !ok || len(gotStats) != 1 || gotStats[0].BestFitness != 0.1 {
		t.Fatalf("stats round trip mismatch: ok=%v %+v", ok, gotStats)
	}

	if err := store.DeleteRun(ctx, "run-1"); err != nil {
		t.Fatalf("delete run: %v", err)
	}
	_, ok, err = store.GetFitnessHistory(ctx, "run-1")
	if err != nil {
		t.Fatalf("get history after delete: %v", err)
	}
	if ok {
		t.Fatal("expected history to be deleted with the run")
	}
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "anagen.db"))
	if _, _, err := store.GetRun(context.Background(), "run-1"); err == nil {
		t.Fatal("expected error from uninitialized store")
	}
}
