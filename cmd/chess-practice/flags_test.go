package main

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-practice-go/internal/config"
	"github.com/lgbarn/chess-practice-go/internal/testutil"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(strictMode, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	want := config.NewConfig()
	testutil.AssertEqual(t, cfg.Output, want.Output)
	testutil.AssertEqual(t, cfg.Rules, want.Rules)
	testutil.AssertEqual(t, cfg.Storage, want.Storage)
	testutil.AssertEqual(t, cfg.Batch, want.Batch)
	testutil.AssertEqual(t, cfg.Verbosity, want.Verbosity)
}

func TestApplyOutputFormatFlags(t *testing.T) {
	t.Run("W selects format", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "fen")()
		cfg := config.NewConfig()
		applyFlags(cfg)
		testutil.AssertEqual(t, cfg.Output.Format, config.FENOnly)
	})

	t.Run("J overrides W", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "fen")()
		defer saveRestoreBool(jsonOutput, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		testutil.AssertEqual(t, cfg.Output.Format, config.JSON)
	})

	t.Run("line length and nomoves", func(t *testing.T) {
		defer saveRestoreInt(lineLength, 40)()
		defer saveRestoreBool(noMoves, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		testutil.AssertEqual(t, cfg.Output.MaxLineLength, uint(40))
		testutil.AssertFalse(t, cfg.Output.ShowMoves)
	})
}

func TestApplyFlags_OverridesFile(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
verbosity: 2
rules:
  strict: false
storage:
  dir: /var/lib/chess
batch:
  workers: 4
`))
	testutil.AssertNoError(t, err)

	defer saveRestoreBool(strictMode, true)()
	defer saveRestoreString(storeDir, "/tmp/positions")()
	defer saveRestoreBool(quiet, true)()
	applyFlags(cfg)

	testutil.AssertTrue(t, cfg.Rules.Strict)
	testutil.AssertEqual(t, cfg.Storage.Dir, "/tmp/positions")
	testutil.AssertEqual(t, cfg.Verbosity, 0)
	// -workers left at -1 keeps the file value.
	testutil.AssertEqual(t, cfg.Batch.Workers, 4)
}

func TestApplyBatchFlags(t *testing.T) {
	tests := []struct {
		name string
		flag int
		want int
	}{
		{"unset keeps config", -1, 3},
		{"zero means per CPU", 0, 0},
		{"explicit", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(workers, tt.flag)()
			cfg := config.NewConfig()
			cfg.Batch.Workers = 3
			applyFlags(cfg)
			testutil.AssertEqual(t, cfg.Batch.Workers, tt.want)
		})
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	defer saveRestoreInt(verbosity, 2)()
	cfg := config.NewConfig()
	applyFlags(cfg)
	testutil.AssertEqual(t, cfg.Verbosity, 2)

	defer saveRestoreBool(quiet, true)()
	applyFlags(cfg)
	testutil.AssertEqual(t, cfg.Verbosity, 0)
}
