package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/config"
	"github.com/lgbarn/chess-practice-go/internal/engine"
	"github.com/lgbarn/chess-practice-go/internal/hashing"
	"github.com/lgbarn/chess-practice-go/internal/legality"
	"github.com/lgbarn/chess-practice-go/internal/output"
	"github.com/lgbarn/chess-practice-go/internal/session"
	"github.com/lgbarn/chess-practice-go/internal/storage"
	"github.com/lgbarn/chess-practice-go/internal/worker"
)

// ProcessingContext holds the state shared by the run modes.
type ProcessingContext struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *storage.Store    // nil without -store
	filter *legality.Filter // nil unless strict
}

// newProcessingContext builds the context for cfg. The store is opened by
// the caller.
func newProcessingContext(cfg *config.Config, log zerolog.Logger) *ProcessingContext {
	ctx := &ProcessingContext{cfg: cfg, log: log}
	if cfg.Rules.Strict {
		ctx.filter = legality.New()
	}
	return ctx
}

// newLogger creates the program logger writing to w at the configured level.
func newLogger(w io.Writer, cfg *config.Config) (zerolog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// parseMoves parses moves separated by spaces or commas.
func parseMoves(text string) ([]chess.Move, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	moves := make([]chess.Move, 0, len(fields))
	for _, f := range fields {
		m, err := chess.ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// startPosition returns the position to start from: a saved position when
// name is set, otherwise fen, otherwise the initial position.
func (ctx *ProcessingContext) startPosition(fen, name string) (chess.Position, error) {
	if name != "" {
		if ctx.store == nil {
			return chess.Position{}, fmt.Errorf("-load needs a store (-store or storage.dir)")
		}
		rec, err := ctx.store.Load(name)
		if err != nil {
			return chess.Position{}, err
		}
		ctx.log.Info().Str("name", name).Int("moves", len(rec.Moves)).Msg("loaded position")
		return rec.Position()
	}
	if fen != "" {
		return engine.ParseFEN(fen)
	}
	return engine.NewInitialPosition(), nil
}

// play replays moves in a new session and focuses from when it is set.
func (ctx *ProcessingContext) play(start chess.Position, moves []chess.Move, from string) (*session.Session, error) {
	opts := []session.Option{session.WithLogger(ctx.log)}
	if ctx.filter != nil {
		opts = append(opts, session.WithLegality(ctx.filter))
	}
	s := session.New(start, opts...)

	for _, m := range moves {
		if err := s.Move(m.From, m.To); err != nil {
			return nil, err
		}
	}

	if from != "" {
		sq, err := chess.ParseSquare(from)
		if err != nil {
			return nil, err
		}
		if !s.Focus(sq) {
			ctx.log.Warn().Str("square", from).Msg("no piece of the side to move")
		}
	}
	return s, nil
}

// view converts the session state for output.
func (ctx *ProcessingContext) view(s *session.Session) output.View {
	v := output.View{
		Position:    s.Position(),
		Highlighted: s.Highlighted(),
		History:     s.History(),
	}
	if focus, ok := s.Focused(); ok {
		origin := focus.Origin
		v.Focus = &origin
		v.Valid = focus.Valid
	}
	if ctx.filter != nil {
		moves, err := ctx.filter.LegalMoves(v.Position)
		if err != nil {
			ctx.log.Warn().Err(err).Msg("listing legal moves")
		} else {
			// Non-nil so an empty legal list is not replaced.
			v.Moves = append([]chess.Move{}, moves...)
		}
	}
	return v
}

// writeSession prints the session position in the configured format.
func (ctx *ProcessingContext) writeSession(w io.Writer, s *session.Session) error {
	pw := output.NewWriter(w, ctx.cfg)
	if err := pw.WritePosition(ctx.view(s)); err != nil {
		return err
	}
	return pw.Close()
}

// save stores the session under name as its start position and moves.
func (ctx *ProcessingContext) save(name string, start chess.Position, s *session.Session) error {
	if ctx.store == nil {
		return fmt.Errorf("-save needs a store (-store or storage.dir)")
	}
	rec := storage.Record{
		Name:  name,
		FEN:   engine.FEN(start),
		Moves: output.MoveStrings(s.History()),
	}
	if err := ctx.store.Save(rec); err != nil {
		return err
	}
	ctx.log.Info().Str("name", name).Str("fen", engine.FEN(s.Position())).Msg("saved position")
	return nil
}

// listSavedPositions prints one saved name per line.
func (ctx *ProcessingContext) listSavedPositions(w io.Writer) error {
	if ctx.store == nil {
		return fmt.Errorf("-list needs a store (-store or storage.dir)")
	}
	names, err := ctx.store.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// readFENs reads one FEN per line, skipping blank lines and # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// BatchResult is the JSON form of one batch position. Line counts
// positions from 1, skipping blank and comment lines.
type BatchResult struct {
	Line      int    `json:"line"`
	FEN       string `json:"fen"`
	MoveCount int    `json:"moveCount"`
	InCheck   bool   `json:"inCheck,omitempty"`

	// DuplicateOf is the Line of an earlier identical position.
	DuplicateOf int    `json:"duplicateOf,omitempty"`
	Error       string `json:"error,omitempty"`
}

// runBatch counts the moves of every FEN on the worker pool and prints one
// result per input line in input order. Repeated positions are marked with
// the line they first appeared on. It returns the number of lines that
// failed.
func (ctx *ProcessingContext) runBatch(c context.Context, w io.Writer, fens []string) (int, error) {
	n := ctx.cfg.Batch.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}
	ctx.log.Debug().Int("positions", len(fens)).Int("workers", n).Msg("batch start")

	results, err := worker.Run(c, fens, worker.CountMoves(ctx.filter),
		worker.WithWorkers(n),
		worker.WithBufferSize(ctx.cfg.Batch.BufferSize),
	)
	if err != nil {
		return 0, err
	}

	detector := hashing.NewDuplicateDetector(ctx.cfg.Batch.DuplicateCapacity)
	failed := 0
	batch := make([]BatchResult, len(results))
	for i, res := range results {
		batch[i] = BatchResult{
			Line:      res.Index + 1,
			FEN:       res.FEN,
			MoveCount: res.MoveCount,
			InCheck:   res.InCheck,
		}
		if res.Error != nil {
			failed++
			batch[i].Error = res.Error.Error()
			ctx.log.Warn().Err(res.Error).Int("line", res.Index+1).Msg("batch position failed")
			continue
		}
		if first, dup := detector.CheckAndAdd(res.Position, res.Index); dup {
			batch[i].DuplicateOf = first + 1
		}
	}
	ctx.log.Debug().
		Int("unique", detector.UniqueCount()).
		Int("duplicates", detector.DuplicateCount()).
		Msg("batch done")

	if ctx.cfg.Output.Format == config.JSON {
		return failed, output.WriteJSON(w, batch)
	}
	for _, b := range batch {
		if err := writeBatchLine(w, b); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// writeBatchLine writes "line<TAB>count<TAB>fen", with "+" after the count
// when in check and a trailing "= line" for repeats.
func writeBatchLine(w io.Writer, b BatchResult) error {
	if b.Error != "" {
		_, err := fmt.Fprintf(w, "%d\terror\t%s\n", b.Line, b.Error)
		return err
	}
	count := strconv.Itoa(b.MoveCount)
	if b.InCheck {
		count += "+"
	}
	if b.DuplicateOf > 0 {
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\t= %d\n", b.Line, count, b.FEN, b.DuplicateOf)
		return err
	}
	_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", b.Line, count, b.FEN)
	return err
}
