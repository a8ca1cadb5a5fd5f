package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"degola/internal/app"
	"degola/internal/bot"
	"degola/internal/config"
	"degola/internal/domain"
	"degola/internal/ports"
	"degola/internal/sim"
	"degola/internal/store"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	deals      int
	seed       int64
	workers    int
	dbPath     string
	pgDSN      string
	configPath string
	envFile    string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "trucosim",
		Short:        "Play simulated first-round truco deals through the bot",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.envFile != "" {
				if err := godotenv.Load(opts.envFile); err != nil {
					return fmt.Errorf("failed to load env file: %w", err)
				}
			}
			if err := applyEnv(cmd, &opts); err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.deals, "deals", 1000, "number of deals to simulate (TRUCOSIM_DEALS)")
	f.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "base random seed (TRUCOSIM_SEED)")
	f.IntVar(&opts.workers, "workers", 4, "concurrent deals (TRUCOSIM_WORKERS)")
	f.StringVar(&opts.dbPath, "db", "", "SQLite file to record decisions in (TRUCOSIM_DB)")
	f.StringVar(&opts.pgDSN, "postgres", "", "PostgreSQL DSN to record decisions in (TRUCOSIM_POSTGRES_DSN)")
	f.StringVar(&opts.configPath, "config", "", "game config with tuning overrides (TRUCOSIM_CONFIG)")
	f.StringVar(&opts.envFile, "env-file", "", "dotenv file to read TRUCOSIM_* settings from")
	f.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error (TRUCOSIM_LOG_LEVEL)")
	return cmd
}

// applyEnv fills every flag the user did not set from its TRUCOSIM_* variable.
func applyEnv(cmd *cobra.Command, opts *options) error {
	flags := cmd.Flags()
	ints := []struct {
		flag, env string
		dst       *int
	}{
		{"deals", "TRUCOSIM_DEALS", &opts.deals},
		{"workers", "TRUCOSIM_WORKERS", &opts.workers},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.env)
		if !ok || flags.Changed(v.flag) {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", v.env, err)
		}
		*v.dst = n
	}

	if raw, ok := os.LookupEnv("TRUCOSIM_SEED"); ok && !flags.Changed("seed") {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TRUCOSIM_SEED: %w", err)
		}
		opts.seed = n
	}

	strs := []struct {
		flag, env string
		dst       *string
	}{
		{"db", "TRUCOSIM_DB", &opts.dbPath},
		{"postgres", "TRUCOSIM_POSTGRES_DSN", &opts.pgDSN},
		{"config", "TRUCOSIM_CONFIG", &opts.configPath},
		{"log-level", "TRUCOSIM_LOG_LEVEL", &opts.logLevel},
	}
	for _, v := range strs {
		if raw, ok := os.LookupEnv(v.env); ok && !flags.Changed(v.flag) {
			*v.dst = raw
		}
	}
	return nil
}

func run(ctx context.Context, out io.Writer, opts options) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "trucosim",
	})
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	tuning := bot.DefaultTuning
	if opts.configPath != "" {
		if err := config.LoadGameConfig(opts.configPath); err != nil {
			return err
		}
		if tuning, err = config.GetGameConfig().BotTuning(tuning); err != nil {
			return err
		}
	}

	var decisions ports.DecisionLogPort
	switch {
	case opts.dbPath != "" && opts.pgDSN != "":
		return fmt.Errorf("--db and --postgres are mutually exclusive")
	case opts.dbPath != "":
		db, err := store.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		decisions = db
	case opts.pgDSN != "":
		pg, err := store.OpenPostgres(ctx, opts.pgDSN)
		if err != nil {
			return err
		}
		defer pg.Close()
		decisions = pg
	}

	runID := uuid.NewString()
	logger.Info("starting run", "run", runID, "deals", opts.deals, "seed", opts.seed, "workers", opts.workers)

	service := app.NewDecisionService(bot.New(tuning), decisions)
	runner := sim.NewRunner(service, logger, "trucosim")
	summary, err := runner.Run(ctx, sim.Config{
		RunID:   runID,
		Deals:   opts.deals,
		Seed:    opts.seed,
		Workers: opts.workers,
	})
	if err != nil {
		logger.Error("run failed", "run", runID, "err", err)
		return err
	}

	printSummary(out, runID, summary)
	return nil
}

func printSummary(out io.Writer, runID string, s sim.Summary) {
	fmt.Fprintf(out, "run %s: %d deals\n", runID, s.Deals)
	fmt.Fprintf(out, "  raise response: decline=%d accept=%d reraise=%d\n",
		s.RaiseResponses[domain.Decline], s.RaiseResponses[domain.Accept], s.RaiseResponses[domain.Reraise])
	fmt.Fprintf(out, "  raises: %d  mao de onze accepted: %d\n", s.Raises, s.MaoDeOnze)
	if tricks := s.Won + s.Tied + s.Lost; tricks > 0 {
		fmt.Fprintf(out, "  answering a lead: won=%d tied=%d lost=%d (%.1f%% won)\n",
			s.Won, s.Tied, s.Lost, 100*float64(s.Won)/float64(tricks))
	}
}
