package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv("TRUCOSIM_DEALS", "25")
	t.Setenv("TRUCOSIM_WORKERS", "9")
	t.Setenv("TRUCOSIM_SEED", "11")
	t.Setenv("TRUCOSIM_DB", "from-env.db")

	cmd := newRootCmd()
	if err := cmd.Flags().Parse([]string{"--workers", "2"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	opts := options{}
	opts.deals, _ = cmd.Flags().GetInt("deals")
	opts.workers, _ = cmd.Flags().GetInt("workers")
	if err := applyEnv(cmd, &opts); err != nil {
		t.Fatalf("applyEnv error: %v", err)
	}

	if opts.deals != 25 {
		t.Fatalf("deals = %d, want 25", opts.deals)
	}
	if opts.workers != 2 {
		t.Fatalf("workers = %d, want flag value 2", opts.workers)
	}
	if opts.seed != 11 {
		t.Fatalf("seed = %d, want 11", opts.seed)
	}
	if opts.dbPath != "from-env.db" {
		t.Fatalf("dbPath = %s, want from-env.db", opts.dbPath)
	}
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	t.Setenv("TRUCOSIM_DEALS", "many")
	if err := applyEnv(newRootCmd(), &options{}); err == nil {
		t.Fatal("expected error for invalid TRUCOSIM_DEALS")
	}
}

func TestRunWritesSummaryAndDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "decisions.db")

	var out bytes.Buffer
	err := run(context.Background(), &out, options{
		deals:    20,
		seed:     5,
		workers:  2,
		dbPath:   dbPath,
		logLevel: "error",
	})
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out.String(), "20 deals") {
		t.Fatalf("summary missing deal count:\n%s", out.String())
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	if err := run(context.Background(), &bytes.Buffer{}, options{deals: 1, logLevel: "chatty"}); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestRunRejectsTwoDatabases(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, options{deals: 1, logLevel: "error", dbPath: "a.db", pgDSN: "postgres://localhost/x"})
	if err == nil {
		t.Fatal("expected error when both databases are set")
	}
}
