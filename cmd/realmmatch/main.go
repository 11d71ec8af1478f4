// Command realmmatch plays batches of AI-vs-AI matches and summarises how
// each playstyle fared.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/freeeve/realmwright/internal/arena"
	"github.com/freeeve/realmwright/internal/config"
	"github.com/freeeve/realmwright/internal/logger"
	"github.com/freeeve/realmwright/internal/repository"
)

type options struct {
	playstyles string
	matchFile  string
	numGames   int
	workers    int
	turns      int
	seed       int64
	dbURL      string
	redisURL   string
	heathens   int
	dryRun     bool
	jsonOut    bool
	quiet      bool
}

func main() {
	env := config.Load()
	opts := options{}

	rootCmd := &cobra.Command{
		Use:   "realmmatch",
		Short: "Run AI-vs-AI realm matches",
		Long: `Plays one or more matches between AI players and prints a summary of
wins, settlements and wealth per playstyle. Results are stored in Postgres or
SQLite unless --dry-run is set.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.playstyles, "playstyles", "p", "", "Playstyle config (e.g. red=aggressive,*=neutral)")
	flags.StringVarP(&opts.matchFile, "file", "f", "", "YAML match file (overrides -p, --turns and --seed)")
	flags.IntVarP(&opts.numGames, "games", "n", 1, "Number of matches to run")
	flags.IntVar(&opts.workers, "workers", 1, "Concurrency (parallel matches)")
	flags.IntVar(&opts.turns, "turns", env.Turns, "Turn limit per match")
	flags.Int64Var(&opts.seed, "seed", env.Seed, "Base seed (0 = random)")
	flags.StringVar(&opts.dbURL, "db", env.DatabaseURL, "postgres:// or sqlite:// URL (or use DATABASE_URL env)")
	flags.StringVar(&opts.redisURL, "redis", env.RedisURL, "Redis URL for live world snapshots (or use REDIS_URL env)")
	flags.IntVar(&opts.heathens, "heathens", 6, "Heathen units per match")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Skip database and cache writes")
	flags.BoolVar(&opts.jsonOut, "json", false, "Output results as JSON")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only log errors")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Init()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.quiet {
		logger.Silence()
	}
	if opts.workers < 1 {
		opts.workers = 1
	}

	base, err := baseConfig(opts)
	if err != nil {
		return err
	}

	var repo repository.MatchRepository
	var cache repository.WorldCache
	if !opts.dryRun {
		var closeStore, closeCache func()
		repo, closeStore, err = openStore(ctx, opts.dbURL, opts.workers)
		if err != nil {
			return err
		}
		defer closeStore()

		cache, closeCache, err = openCache(opts.redisURL)
		if err != nil {
			return err
		}
		defer closeCache()
	}
	if repo == nil && cache == nil {
		base.DryRun = true
	}

	label := buildLabel(base.Players)
	results := make([]*arena.MatchResult, opts.numGames)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.workers)
	errCount := 0

	for i := 0; i < opts.numGames; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			cfg := base
			cfg.Name = fmt.Sprintf("%s #%d", label, idx+1)
			if base.Seed != 0 {
				cfg.Seed = base.Seed + int64(idx)
			}

			result, err := arena.RunMatch(ctx, cfg, repo, cache)
			if err != nil {
				log.Error().Err(err).Int("match", idx+1).Msg("Match failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().Int("match", idx+1).Str("winner", result.Winner).Int("turns", result.Turns).Msg("Match completed")
		}(i)
	}

	wg.Wait()

	if opts.jsonOut {
		return printJSON(os.Stdout, results, opts.numGames, errCount)
	}
	printSummary(os.Stdout, results, base, errCount, label)
	return nil
}

// baseConfig builds the match template from a match file, or from the
// default roster and the command-line flags.
func baseConfig(opts options) (arena.MatchConfig, error) {
	if opts.matchFile != "" {
		mf, err := config.LoadMatchFile(opts.matchFile)
		if err != nil {
			return arena.MatchConfig{}, err
		}
		return arena.FromMatchFile(mf)
	}
	players, err := arena.ParsePlaystyleConfig(opts.playstyles, arena.DefaultRoster)
	if err != nil {
		return arena.MatchConfig{}, err
	}
	return arena.MatchConfig{
		Players:  players,
		MaxTurns: opts.turns,
		Seed:     opts.seed,
		Heathens: opts.heathens,
		DryRun:   opts.dryRun,
	}, nil
}
