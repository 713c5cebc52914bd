// Command realmsim runs turn-based contests between rival civilizations.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/emberfall/rival-realms/internal/climate"
	"github.com/emberfall/rival-realms/internal/config"
	"github.com/emberfall/rival-realms/internal/engine"
	"github.com/emberfall/rival-realms/internal/entropy"
	"github.com/emberfall/rival-realms/internal/persistence"
	"github.com/emberfall/rival-realms/internal/report"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "scenario YAML (empty runs the built-in twin-empires)")
		seed         = flag.Int64("seed", 0, "override the scenario seed (0 keeps the scenario's)")
		turns        = flag.Int("turns", 0, "override the scenario turn limit (0 keeps the scenario's)")
		dbPath       = flag.String("db", "", "record the run into this SQLite database")
		outPath      = flag.String("out", "", "write the run result (or batch summary) as JSON")
		runs         = flag.Int("runs", 1, "number of runs; above 1 switches to batch mode")
		history      = flag.Int("history", 0, "print the latest N recorded runs from -db and exit")
		quiet        = flag.Bool("quiet", false, "suppress console narration")
		verbose      = flag.Bool("verbose", false, "debug logging plus a structured log reporter")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	sc := config.Default()
	if *scenarioPath != "" {
		var err error
		sc, err = config.Load(*scenarioPath)
		if err != nil {
			slog.Error("scenario rejected", "error", err)
			os.Exit(2)
		}
	}
	if *seed != 0 {
		sc.Seed = *seed
	}
	if *turns != 0 {
		sc.Turns = *turns
	}
	if err := sc.Validate(); err != nil {
		slog.Error("scenario rejected", "error", err)
		os.Exit(2)
	}

	var db *persistence.DB
	if *dbPath != "" {
		var err error
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Debug("database opened", "path", *dbPath)
	}

	if *history > 0 {
		if db == nil {
			slog.Error("-history needs -db")
			os.Exit(2)
		}
		printHistory(db, *history)
		return
	}

	if *runs > 1 {
		if db != nil {
			slog.Warn("batch mode does not record runs, -db ignored")
		}
		batch(sc, *runs, *outPath)
		return
	}

	runOnce(sc, db, *outPath, *quiet, *verbose)
}

// runOnce plays the scenario a single time with reporters attached.
func runOnce(sc config.Scenario, db *persistence.DB, outPath string, quiet, verbose bool) {
	civs, err := sc.Build()
	if err != nil {
		slog.Error("scenario rejected", "error", err)
		os.Exit(2)
	}

	var reporters report.Multi
	if !quiet {
		reporters = append(reporters, report.NewConsole(os.Stdout))
	}
	if verbose {
		reporters = append(reporters, report.NewLog(nil))
	}
	var rec *persistence.Recorder
	if db != nil {
		rec = persistence.NewRecorder(db)
		reporters = append(reporters, rec)
	}

	sim, err := engine.New(engine.Config{
		Scenario: sc.Name,
		Civs:     civs,
		MaxTurns: sc.Turns,
		Seed:     sc.Seed,
		Rng:      entropy.New(sc.Seed),
		Reporter: reporters,
		Yield:    yieldFor(sc, sc.Seed),
	})
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	res := sim.Run()

	if rec != nil {
		slog.Info("run recorded", "id", rec.RunID())
	}
	if outPath != "" {
		writeJSON(outPath, res)
	}
}

// batch plays the scenario n times on a small worker pool and prints
// aggregate statistics. Run i always gets the same derived seed no matter
// which worker picks it up, so a batch is as reproducible as a single run.
func batch(sc config.Scenario, n int, outPath string) {
	type tally struct {
		completed    int
		outcomes     map[string]int
		wins         map[string]int
		turns        int
		conflicts    int
		cooperations int
	}
	st := tally{outcomes: map[string]int{}, wins: map[string]int{}}
	var mu sync.Mutex

	workers := 8
	if c := runtime.NumCPU(); c < workers {
		workers = c
	}
	if n < workers {
		workers = n
	}

	jobs := make(chan int, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := runDerived(sc, int64(i))
				if err != nil {
					slog.Error("batch run failed", "run", i, "error", err)
					continue
				}
				mu.Lock()
				st.completed++
				st.outcomes[string(res.Outcome)]++
				if res.Winner != "" {
					st.wins[res.Winner]++
				}
				st.turns += res.Turns
				st.conflicts += res.Conflicts
				st.cooperations += res.Cooperations
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if st.completed == 0 {
		slog.Error("no batch run completed")
		os.Exit(1)
	}

	meanTurns := float64(st.turns) / float64(st.completed)

	fmt.Printf("=== batch: %d runs of %s, base seed %d ===\n", st.completed, sc.Name, sc.Seed)
	for _, oc := range []engine.Outcome{engine.OutcomeDominance, engine.OutcomeStalemate, engine.OutcomeSoleSurvivor, engine.OutcomeExtinction} {
		if c := st.outcomes[string(oc)]; c > 0 {
			fmt.Printf("  %-14s %4d  (%.1f%%)\n", oc, c, 100*float64(c)/float64(st.completed))
		}
	}
	names := make([]string, 0, len(st.wins))
	for name := range st.wins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-14s wins %d\n", name, st.wins[name])
	}
	fmt.Printf("  mean turns %.1f, %d conflicts, %d cooperations\n", meanTurns, st.conflicts, st.cooperations)

	if outPath != "" {
		writeJSON(outPath, map[string]any{
			"scenario":     sc.Name,
			"base_seed":    sc.Seed,
			"runs":         st.completed,
			"outcomes":     st.outcomes,
			"wins":         st.wins,
			"mean_turns":   meanTurns,
			"conflicts":    st.conflicts,
			"cooperations": st.cooperations,
		})
	}
}

// runDerived plays one silent batch run with seed derived from the job
// index.
func runDerived(sc config.Scenario, i int64) (engine.Result, error) {
	runSeed := sc.Seed + i*7919
	civs, err := sc.Build()
	if err != nil {
		return engine.Result{}, err
	}
	sim, err := engine.New(engine.Config{
		Scenario: sc.Name,
		Civs:     civs,
		MaxTurns: sc.Turns,
		Seed:     runSeed,
		Rng:      entropy.New(runSeed),
		Yield:    yieldFor(sc, runSeed),
	})
	if err != nil {
		return engine.Result{}, err
	}
	return sim.Run(), nil
}

func yieldFor(sc config.Scenario, seed int64) engine.YieldModifier {
	if !sc.Climate.Enabled {
		return nil
	}
	return climate.New(seed, sc.Climate.Amplitude, sc.Climate.Frequency)
}

func printHistory(db *persistence.DB, limit int) {
	summaries, err := db.RecentRuns(limit)
	if err != nil {
		slog.Error("history query failed", "error", err)
		os.Exit(1)
	}
	if len(summaries) == 0 {
		fmt.Println("no recorded runs")
		return
	}
	for _, r := range summaries {
		line := fmt.Sprintf("%s  %-16s seed %-8d %4d turns  %-14s", shortID(r.ID), r.Scenario, r.Seed, r.Turns, r.Outcome)
		if r.Winner != "" {
			line += "  winner " + r.Winner
		}
		fmt.Println(line)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func writeJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("encode output", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		slog.Error("write output", "path", path, "error", err)
		os.Exit(1)
	}
	slog.Info("output written", "path", path)
}
