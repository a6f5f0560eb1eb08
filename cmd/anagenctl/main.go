package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"anagen/internal/model"
	"anagen/internal/problem"
	"anagen/internal/stats"
	"anagen/internal/storage"
)

const (
	benchmarksDir = "benchmarks"
	exportsDir    = "exports"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "diagnostics":
		return runDiagnostics(ctx, args[1:])
	case "delete":
		return runDelete(ctx, args[1:])
	case "problems":
		return runProblems(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: anagenctl <run|runs|show|fitness|diagnostics|delete|problems|export> [flags]", msg)
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional run config JSON path")
	runID := fs.String("run-id", "", "explicit run id (optional)")
	problemName := fs.String("problem", "parabola", "benchmark problem name")
	population := fs.Int("pop", 100, "population size")
	generations := fs.Int("gens", 100, "generation count")
	pc := fs.Float64("pc", 0.5, "crossover probability in [0, 1]")
	pm := fs.Float64("pm", 0.4, "mutation probability in [0, 1]")
	elites := fs.Int("elites", 0, "agents carried unchanged per generation (0 disables)")
	seed := fs.Int64("seed", 1, "rng seed")
	selection := fs.String("selection", "roulette", "parent selection strategy: roulette|tournament")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "anagen.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	req := runRequest{
		RunID:       *runID,
		Problem:     *problemName,
		Population:  *population,
		Generations: *generations,
		Pc:          *pc,
		Pm:          *pm,
		Elites:      *elites,
		Seed:        *seed,
		Selection:   *selection,
	}
	if *configPath != "" {
		// Config file values win over flag defaults but lose to flags
		// the user set explicitly.
		loaded, err := loadOrDefaultRunRequest(*configPath)
		if err != nil {
			return err
		}
		req = loaded
		overrideFromFlags(&req, setFlags, map[string]any{
			"run-id":    *runID,
			"problem":   *problemName,
			"pop":       *population,
			"gens":      *generations,
			"pc":        *pc,
			"pm":        *pm,
			"elites":    *elites,
			"seed":      *seed,
			"selection": *selection,
		})
	}
	applyRunDefaults(&req)

	p, err := problem.ByName(req.Problem)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	result, err := p.Run(ctx, problem.Spec{
		Population:  req.Population,
		Generations: req.Generations,
		Pc:          req.Pc,
		Pm:          req.Pm,
		Elites:      req.Elites,
		Seed:        req.Seed,
		Selection:   req.Selection,
	})
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	runDir, err := stats.WriteRunArtifacts(benchmarksDir, stats.RunArtifacts{
		Config: stats.RunConfig{
			RunID:       req.RunID,
			Problem:     req.Problem,
			Population:  req.Population,
			Generations: req.Generations,
			Pc:          req.Pc,
			Pm:          req.Pm,
			Elites:      req.Elites,
			Seed:        req.Seed,
			Selection:   req.Selection,
		},
		BestByGeneration:      result.BestByGeneration,
		GenerationDiagnostics: result.Diagnostics,
		FinalBest:             stats.BestRecord{Fitness: result.BestFitness, Agent: result.BestAgent},
	})
	if err != nil {
		return err
	}
	if err := stats.AppendRunIndex(benchmarksDir, stats.RunIndexEntry{
		RunID:            req.RunID,
		Problem:          req.Problem,
		Population:       req.Population,
		Generations:      req.Generations,
		Seed:             req.Seed,
		FinalBestFitness: result.BestFitness,
		CreatedAtUTC:     now.Format(time.RFC3339Nano),
	}); err != nil {
		return err
	}

	record := model.RunRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:           req.RunID,
		Problem:      req.Problem,
		Population:   req.Population,
		Generations:  req.Generations,
		Pc:           req.Pc,
		Pm:           req.Pm,
		Elites:       req.Elites,
		Seed:         req.Seed,
		Selection:    req.Selection,
		BestFitness:  result.BestFitness,
		BestAgent:    result.BestAgent,
		CreatedAtUTC: now.Format(time.RFC3339Nano),
	}
	if err := store.SaveRun(ctx, record); err != nil {
		return err
	}
	if err := store.SaveFitnessHistory(ctx, req.RunID, result.BestByGeneration); err != nil {
		return err
	}
	if err := store.SaveGenerationStats(ctx, req.RunID, result.Diagnostics); err != nil {
		return err
	}

	fmt.Printf("run %s finished\n", req.RunID)
	fmt.Printf("  problem:      %s\n", req.Problem)
	fmt.Printf("  best fitness: %g\n", result.BestFitness)
	fmt.Printf("  best agent:   %s\n", result.BestAgent)
	fmt.Printf("  artifacts:    %s\n", filepath.Clean(runDir))
	return nil
}

func runRuns(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "maximum entries to print")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	entries, err := stats.ListRunIndex(benchmarksDir)
	if err != nil {
		return err
	}
	if len(entries) > *limit {
		entries = entries[:*limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tPROBLEM\tPOP\tGENS\tSEED\tBEST\tCREATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%g\t%s\n",
			e.RunID, e.Problem, e.Population, e.Generations, e.Seed, e.FinalBestFitness, e.CreatedAtUTC)
	}
	return w.Flush()
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to show")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "anagen.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("show requires -run-id")
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	record, ok, err := store.GetRun(ctx, *runID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run not found: %s", *runID)
	}

	fmt.Printf("run %s\n", record.ID)
	fmt.Printf("  problem:      %s\n", record.Problem)
	fmt.Printf("  population:   %d\n", record.Population)
	fmt.Printf("  generations:  %d\n", record.Generations)
	fmt.Printf("  pc/pm:        %g/%g\n", record.Pc, record.Pm)
	fmt.Printf("  elites:       %d\n", record.Elites)
	fmt.Printf("  seed:         %d\n", record.Seed)
	fmt.Printf("  selection:    %s\n", record.Selection)
	fmt.Printf("  best fitness: %g\n", record.BestFitness)
	fmt.Printf("  best agent:   %s\n", record.BestAgent)
	fmt.Printf("  created:      %s\n", record.CreatedAtUTC)
	return nil
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	limit := fs.Int("limit", 0, "print at most N leading generations (0 prints all)")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "anagen.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit < 0 {
		return errors.New("limit must be >= 0")
	}

	id, err := resolveRunID(*runID, *latest)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	history, ok, err := store.GetFitnessHistory(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("fitness history not found for run id: %s", id)
	}
	if *limit > 0 && len(history) > *limit {
		history = history[:*limit]
	}

	for gen, best := range history {
		fmt.Printf("%d\t%g\n", gen, best)
	}
	return nil
}

func runDiagnostics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("diagnostics", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	limit := fs.Int("limit", 0, "print at most N leading generations (0 prints all)")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "anagen.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit < 0 {
		return errors.New("limit must be >= 0")
	}

	id, err := resolveRunID(*runID, *latest)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	diagnostics, ok, err := store.GetGenerationStats(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("diagnostics not found for run id: %s", id)
	}
	if *limit > 0 && len(diagnostics) > *limit {
		diagnostics = diagnostics[:*limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GEN\tBEST\tMEAN\tMIN")
	for _, d := range diagnostics {
		fmt.Fprintf(w, "%d\t%g\t%g\t%g\n", d.Generation, d.BestFitness, d.MeanFitness, d.MinFitness)
	}
	return w.Flush()
}

func runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to delete")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "anagen.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("delete requires -run-id")
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	_, ok, err := store.GetRun(ctx, *runID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run not found: %s", *runID)
	}
	if err := store.DeleteRun(ctx, *runID); err != nil {
		return err
	}

	fmt.Printf("deleted run %s\n", *runID)
	return nil
}

func runProblems(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("problems", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, p := range problem.All() {
		fmt.Fprintf(w, "%s\t%s\n", p.Name(), p.Description())
	}
	return w.Flush()
}

func runExport(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to export")
	latest := fs.Bool("latest", false, "export the most recent run")
	outDir := fs.String("out", exportsDir, "destination directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := resolveRunID(*runID, *latest)
	if err != nil {
		return err
	}

	dst, err := stats.ExportRunArtifacts(benchmarksDir, id, *outDir)
	if err != nil {
		return err
	}
	fmt.Printf("exported run %s to %s\n", id, filepath.Clean(dst))
	return nil
}

func resolveRunID(runID string, latest bool) (string, error) {
	if runID != "" && latest {
		return "", errors.New("use either run id or latest")
	}
	if runID != "" {
		return runID, nil
	}
	if !latest {
		return "", errors.New("run id or latest is required")
	}

	entries, err := stats.ListRunIndex(benchmarksDir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", errors.New("no runs available")
	}
	return entries[0].RunID, nil
}

func applyRunDefaults(req *runRequest) {
	if req.Problem == "" {
		req.Problem = "parabola"
	}
	if req.Population <= 0 {
		req.Population = 100
	}
	if req.Generations < 0 {
		req.Generations = 100
	}
	if req.Selection == "" {
		req.Selection = "roulette"
	}
	if req.RunID == "" {
		req.RunID = fmt.Sprintf("%s-%s", req.Problem, uuid.NewString())
	}
}
