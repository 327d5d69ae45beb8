// chess-practice sets up chess positions, plays moves on them and shows
// where pieces can go.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-practice-go/internal/config"
	"github.com/lgbarn/chess-practice-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	args, err := loadArgsFromFileIfSpecified(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.Usage = usage
	flag.CommandLine.Parse(args) //nolint:errcheck,gosec // ExitOnError

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-practice version %s\n", programVersion)
		os.Exit(0)
	}

	if *outputFormat != "" {
		if _, err := config.ParseOutputFormat(*outputFormat); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := loadConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *dumpConfig {
		if err := cfg.Write(cfg.OutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	log, err := newLogger(cfg.LogFile, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(newProcessingContext(cfg, log)))
}

// loadConfig reads -config over the defaults, or returns the defaults.
func loadConfig() *config.Config {
	if *configFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", *configFile, err)
		os.Exit(1)
	}
	return cfg
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// openStore opens the store described by sc.
func openStore(sc *config.StorageConfig) (*storage.Store, error) {
	if sc.InMemory {
		return storage.OpenInMemory()
	}
	return storage.Open(sc.Dir)
}

// run executes the mode selected by the flags and returns the exit code.
func run(ctx *ProcessingContext) int {
	if ctx.cfg.Storage.Enabled() {
		store, err := openStore(ctx.cfg.Storage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			return 1
		}
		defer store.Close() //nolint:errcheck // G104: cleanup on exit
		ctx.store = store
	}

	var err error
	switch {
	case *listSaved:
		err = ctx.listSavedPositions(ctx.cfg.OutputFile)
	case *deleteName != "":
		err = deleteSaved(ctx, *deleteName)
	case *batchFile != "":
		err = runBatchFile(ctx, *batchFile)
	default:
		err = runSingle(ctx, ctx.cfg.OutputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runSingle sets up one position, plays -moves, optionally saves it and
// prints it.
func runSingle(ctx *ProcessingContext, w io.Writer) error {
	start, err := ctx.startPosition(*fenString, *loadName)
	if err != nil {
		return err
	}
	moves, err := parseMoves(*moveList)
	if err != nil {
		return err
	}
	s, err := ctx.play(start, moves, *focusFrom)
	if err != nil {
		return err
	}
	if *saveName != "" {
		if err := ctx.save(*saveName, start, s); err != nil {
			return err
		}
	}
	return ctx.writeSession(w, s)
}

// deleteSaved removes a saved position.
func deleteSaved(ctx *ProcessingContext, name string) error {
	if ctx.store == nil {
		return fmt.Errorf("-delete needs a store (-store or storage.dir)")
	}
	if err := ctx.store.Delete(name); err != nil {
		return err
	}
	ctx.log.Info().Str("name", name).Msg("deleted position")
	return nil
}

// runBatchFile analyses the FEN lines of path, or stdin for "-".
func runBatchFile(ctx *ProcessingContext, path string) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer file.Close() //nolint:errcheck // read-only
		r = file
	}

	fens, err := readFENs(r)
	if err != nil {
		return fmt.Errorf("read batch: %w", err)
	}

	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := ctx.runBatch(c, ctx.cfg.OutputFile, fens)
	if err != nil {
		return err
	}
	if ctx.cfg.Verbosity > 0 {
		reportStatistics(failed, len(fens))
	}
	return nil
}

// reportStatistics prints the batch summary to stderr.
func reportStatistics(failed, total int) {
	fmt.Fprintf(os.Stderr, "%d position(s) analysed, %d failed.\n", total-failed, failed)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-practice [options]\n\n")
	fmt.Fprintf(os.Stderr, "Set up a chess position, play moves and show where pieces can go.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  diagram  ASCII board with moves (default)\n")
	fmt.Fprintf(os.Stderr, "  fen      FEN line only\n")
	fmt.Fprintf(os.Stderr, "  json     JSON document\n")
	fmt.Fprintf(os.Stderr, "\nDiagram marks: [x] last move, <x> focused piece, (x) destination.\n")
}
