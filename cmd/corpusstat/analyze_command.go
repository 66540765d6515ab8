package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"corpusstat/internal/config"
	"corpusstat/internal/corpus"
	"corpusstat/internal/fileutil"
	"corpusstat/internal/history"
	"corpusstat/internal/logging"
	"corpusstat/internal/morph"
	"corpusstat/internal/report"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the corpus and write the statistics table and report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return runAnalyze(cmd, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&ctx.overrides.CorpusDir, "corpus", "", "Directory with the corpus texts")
	cmd.Flags().StringVar(&ctx.overrides.MetadataFile, "metadata", "", "Metadata table (filename,title,author,year)")
	cmd.Flags().StringVar(&ctx.overrides.ResultsDir, "out", "", "Directory for the statistics table and report")
	cmd.Flags().IntVar(&ctx.overrides.Workers, "workers", 0, "Files analyzed in parallel")
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", cfg.LockPath(), err)
	}
	if !locked {
		return fmt.Errorf("another corpusstat analysis is already running for %s", cfg.Paths.ResultsDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	analyzer, err := morph.New(morph.WithDataDir(cfg.Paths.DictionaryDir), morph.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("load morphology dictionary: %w", err)
	}
	meta := corpus.LoadMetadata(cfg.Paths.MetadataFile, logger)

	runner := corpus.NewRunner(cfg, analyzer, logger, corpus.WithProgress(cmd.ErrOrStderr()))
	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	headers, rows := report.StatisticsTable(res.Documents, meta)
	if err := fileutil.WriteTable(cfg.StatisticsPath(), headers, rows); err != nil {
		return fmt.Errorf("write statistics: %w", err)
	}
	opts := report.OptionsFromConfig(cfg, analyzer.IsStopword)
	if err := fileutil.WriteText(cfg.ReportPath(), report.Generate(res.Documents, meta, opts)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("results written",
		slog.String("statistics", cfg.StatisticsPath()),
		slog.String("report", cfg.ReportPath()),
	)

	if cfg.History.Enabled {
		if err := recordHistory(cmd, cfg, res); err != nil {
			logging.WarnWithContext(logger, "run history not recorded", "history_write_failed",
				logging.Error(err),
				slog.String(logging.FieldErrorHint, "check history.path or set history.enabled = false"),
			)
		}
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	fmt.Fprint(out, report.Summary(res.Documents, meta, opts, colorize))

	success := color.New(color.FgGreen, color.Bold)
	if colorize {
		success.EnableColor()
	} else {
		success.DisableColor()
	}
	success.Fprintf(out, "Results saved to %s\n", cfg.Paths.ResultsDir)
	return nil
}

func recordHistory(cmd *cobra.Command, cfg *config.Config, res *corpus.Result) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.RecordRun(cmd.Context(), history.RunFromResult(res), history.DocumentsFromResult(res.Documents))
}
