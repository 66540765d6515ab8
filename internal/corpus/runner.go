package corpus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"corpusstat/internal/config"
	"corpusstat/internal/fileutil"
	"corpusstat/internal/logging"
)

// Stats summarizes one run.
type Stats struct {
	Total    int
	Analyzed int
	Failed   int
	Bytes    int64
	Duration time.Duration
}

// Result is the outcome of Runner.Run. Documents are in file name order.
type Result struct {
	RunID      string
	CorpusDir  string
	StartedAt  time.Time
	FinishedAt time.Time
	Documents  []Document
	Stats      Stats
}

// Valid returns the documents that were analysed.
func (r *Result) Valid() []Document {
	out := make([]Document, 0, len(r.Documents))
	for _, d := range r.Documents {
		if d.OK() {
			out = append(out, d)
		}
	}
	return out
}

// Runner analyses every file of a corpus directory.
type Runner struct {
	analyzer  Analyzer
	dir       string
	extension string
	workers   int
	topLemmas int
	logger    *slog.Logger
	progress  io.Writer
	now       func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithProgress draws a progress bar on w when w is a terminal.
func WithProgress(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if isTerminal(w) {
			r.progress = w
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner builds a Runner from the [paths] and [analysis] settings.
func NewRunner(cfg *config.Config, a Analyzer, logger *slog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		analyzer:  a,
		dir:       cfg.Paths.CorpusDir,
		extension: cfg.Analysis.Extension,
		workers:   max(cfg.Analysis.Workers, 1),
		topLemmas: cfg.Analysis.TopLemmas,
		logger:    logging.NewComponentLogger(logger, "corpus"),
		now:       time.Now,
	}
	if r.topLemmas <= 0 {
		r.topLemmas = DefaultTopLemmas
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run lists the corpus and analyses each file. It fails only when the
// corpus cannot be listed or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		RunID:     uuid.NewString(),
		CorpusDir: r.dir,
		StartedAt: r.now(),
	}
	ctx = logging.WithRunID(ctx, res.RunID)
	logger := logging.WithContext(ctx, r.logger)

	files, err := fileutil.ListFiles(r.dir, r.extension)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	logger.Info("corpus discovered",
		slog.String("dir", r.dir),
		slog.Int("files", len(files)),
		slog.Int("workers", r.workers),
	)

	res.Documents = make([]Document, len(files))
	bar := r.newBar(len(files))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, name := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docLogger := logging.WithContext(logging.WithDocument(gctx, name), r.logger)
			docLogger.Info(fmt.Sprintf("[%d/%d] analyze", i+1, len(files)), slog.String("file", name))

			doc := analyzeFile(r.analyzer, r.dir, name, r.topLemmas)
			res.Documents[i] = doc
			if doc.Err != nil {
				logging.WarnWithContext(docLogger, "document skipped", "document_read_failed",
					logging.Error(doc.Err),
					slog.String(logging.FieldErrorHint, "check that the file exists and is UTF-8"),
				)
			} else {
				docLogger.Debug("document analysed",
					slog.Int("words", doc.WordsCount),
					slog.Int("unique_lemmas", doc.UniqueLemmas),
					slog.Float64("ttr", doc.TTR),
				)
			}

			if bar != nil {
				mu.Lock()
				_ = bar.Add(1)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	res.FinishedAt = r.now()
	res.Stats = collectStats(res.Documents, res.FinishedAt.Sub(res.StartedAt))
	logger.Info("analysis complete",
		slog.Int("analyzed", res.Stats.Analyzed),
		slog.Int("failed", res.Stats.Failed),
		slog.String("size", humanize.Bytes(uint64(res.Stats.Bytes))),
		slog.Duration("duration", res.Stats.Duration.Round(time.Millisecond)),
	)
	return res, nil
}

func collectStats(docs []Document, elapsed time.Duration) Stats {
	s := Stats{Total: len(docs), Duration: elapsed}
	for _, d := range docs {
		if d.OK() {
			s.Analyzed++
			s.Bytes += d.Bytes
		} else {
			s.Failed++
		}
	}
	return s
}

func (r *Runner) newBar(total int) *progressbar.ProgressBar {
	if r.progress == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription("analyze"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
