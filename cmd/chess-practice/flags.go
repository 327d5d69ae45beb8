// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-practice-go/internal/config"
)

var (
	// Position options
	fenString  = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList   = flag.String("moves", "", "Moves to play in long algebraic notation (e.g. 'e2e4 e7e5')")
	focusFrom  = flag.String("from", "", "Focus this square and mark its destinations")
	strictMode = flag.Bool("strict", false, "Only allow moves that leave the king safe")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "", "Output format: diagram, fen, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	lineLength   = flag.Int("w", 0, "Maximum line length (0 = config value)")
	noMoves      = flag.Bool("nomoves", false, "Don't list moves")

	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")
	dumpConfig = flag.Bool("dumpconfig", false, "Print the effective configuration and exit")

	// Saved positions
	storeDir   = flag.String("store", "", "Directory of the saved position store")
	saveName   = flag.String("save", "", "Save the resulting position under this name")
	loadName   = flag.String("load", "", "Start from the saved position with this name")
	deleteName = flag.String("delete", "", "Delete the saved position with this name")
	listSaved  = flag.Bool("list", false, "List saved positions")

	// Batch analysis
	batchFile         = flag.String("batch", "", "Count moves for each FEN line of this file ('-' for stdin)")
	workers           = flag.Int("workers", -1, "Number of batch workers (0 = one per CPU, -1 = config value)")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum positions remembered for repeat detection (0 = config value)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", -1, "Verbosity: 0 errors, 1 info, 2 debug (-1 = config value)")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (errors only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration. Flags left
// at their defaults keep the values read from -config.
func applyFlags(cfg *config.Config) {
	b := config.From(cfg)
	applyOutputFormatFlags(b)
	applyRuleFlags(b)
	applyBatchFlags(b)

	switch {
	case *quiet:
		b.WithVerbosity(0)
	case *verbosity >= 0:
		b.WithVerbosity(*verbosity)
	}
}

// applyOutputFormatFlags configures the output format.
func applyOutputFormatFlags(b *config.ConfigBuilder) {
	if *outputFormat != "" {
		// Validated in main before flags are applied.
		if format, err := config.ParseOutputFormat(*outputFormat); err == nil {
			b.WithOutputFormat(format)
		}
	}
	b.WithJSONOutput(*jsonOutput)

	if *lineLength > 0 {
		b.WithMaxLineLength(uint(*lineLength))
	}
	if *noMoves {
		b.ShowMoves(false)
	}
}

// applyRuleFlags configures move validation and the store.
func applyRuleFlags(b *config.ConfigBuilder) {
	if *strictMode {
		b.WithStrict(true)
	}
	if *storeDir != "" {
		b.WithStore(*storeDir)
	}
}

// applyBatchFlags configures batch analysis.
func applyBatchFlags(b *config.ConfigBuilder) {
	if *workers >= 0 {
		b.WithWorkers(*workers)
	}
	if *duplicateCapacity > 0 {
		b.WithDuplicateCapacity(*duplicateCapacity)
	}
}
