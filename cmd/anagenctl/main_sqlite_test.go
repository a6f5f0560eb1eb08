//go:build sqlite

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"anagen/internal/storage"
)

func TestRunCommandSQLitePersistsRun(t *testing.T) {
	workdir := chdirTemp(t)
	dbPath := filepath.Join(workdir, "anagen.db")

	args := []string{
		"run",
		"--store", "sqlite",
		"--db-path", dbPath,
		"--problem", "onemax",
		"--run-id", "onemax-sqlite",
		"--pop", "20",
		"--gens", "5",
		"--seed", "11",
	}
	if err := run(context.Background(), args); err != nil {
		t.Fatalf("run command: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected sqlite db at %s: %v", dbPath, err)
	}

	store, err := storage.NewStore("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init store: %v", err)
	}

	record, ok, err := store.GetRun(ctx, "onemax-sqlite")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted run record")
	}
	if record.Problem != "onemax" || record.Population != 20 || record.Seed != 11 {
		t.Fatalf("unexpected record: %+v", record)
	}

	history, ok, err := store.GetFitnessHistory(ctx, "onemax-sqlite")
	if err != nil {
		t.Fatalf("get fitness history: %v", err)
	}
	if !ok || len(history) != 5 {
		t.Fatalf("expected 5 generations of history, got ok=%t len=%d", ok, len(history))
	}

	diagnostics, ok, err := store.GetGenerationStats(ctx, "onemax-sqlite")
	if err != nil {
		t.Fatalf("get generation stats: %v", err)
	}
	if !ok || len(diagnostics) != 5 {
		t.Fatalf("expected 5 generations of diagnostics, got ok=%t len=%d", ok, len(diagnostics))
	}
}

func TestDeleteCommandSQLiteRemovesRun(t *testing.T) {
	workdir := chdirTemp(t)
	dbPath := filepath.Join(workdir, "anagen.db")

	runArgs := []string{
		"run",
		"--store", "sqlite",
		"--db-path", dbPath,
		"--problem", "parabola",
		"--run-id", "parabola-del",
		"--pop", "10",
		"--gens", "2",
		"--seed", "3",
	}
	if err := run(context.Background(), runArgs); err != nil {
		t.Fatalf("run command: %v", err)
	}

	deleteArgs := []string{
		"delete",
		"--store", "sqlite",
		"--db-path", dbPath,
		"--run-id", "parabola-del",
	}
	if err := run(context.Background(), deleteArgs); err != nil {
		t.Fatalf("delete command: %v", err)
	}

	store, err := storage.NewStore("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init store: %v", err)
	}
	if _, ok, err := store.GetRun(ctx, "parabola-del"); err != nil || ok {
		t.Fatalf("expected run gone, got ok=%t err=%v", ok, err)
	}
}

func TestShowCommandSQLiteMissingRun(t *testing.T) {
	workdir := chdirTemp(t)
	dbPath := filepath.Join(workdir, "anagen.db")

	args := []string{
		"show",
		"--store", "sqlite",
		"--db-path", dbPath,
		"--run-id", "absent",
	}
	if err := run(context.Background(), args); err == nil {
		t.Fatal("expected error for missing run")
	}
}
