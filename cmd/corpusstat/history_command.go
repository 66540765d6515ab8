package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"corpusstat/internal/history"
	"corpusstat/internal/textutil"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "history [RUN_ID]",
		Short: "List recorded runs, or the documents of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if err := validateFormat(format); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("run history is disabled (history.enabled = false)")
			}
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				return showRun(cmd, store, strings.TrimSpace(args[0]), format)
			}
			return listRuns(cmd, store, limit, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json or yaml")
	return cmd
}

func listRuns(cmd *cobra.Command, store *history.Store, limit int, format string) error {
	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}
	switch format {
	case formatJSON:
		return writeJSON(cmd, runs)
	case formatYAML:
		return writeYAML(cmd, runs)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded")
		return nil
	}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			humanize.Time(run.StartedAt),
			run.Duration().Round(time.Millisecond).String(),
			strconv.Itoa(run.Texts),
			strconv.Itoa(run.Failed),
			strconv.Itoa(run.Words),
			humanize.Bytes(uint64(max(run.Bytes, 0))),
			textutil.FormatFloat(textutil.Round(run.AvgTTR, 4)),
		})
	}
	headers := []string{"Run", "Started", "Duration", "Texts", "Failed", "Words", "Size", "Avg TTR"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return nil
}

func showRun(cmd *cobra.Command, store *history.Store, id, format string) error {
	run, err := store.Run(cmd.Context(), id)
	if err != nil {
		return err
	}
	docs, err := store.Documents(cmd.Context(), id)
	if err != nil {
		return err
	}
	switch format {
	case formatJSON:
		return writeJSON(cmd, runDetail{Run: run, Documents: docs})
	case formatYAML:
		return writeYAML(cmd, runDetail{Run: run, Documents: docs})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", run.ID)
	fmt.Fprintf(out, "Corpus: %s\n", run.CorpusDir)
	fmt.Fprintf(out, "Started: %s (%s)\n", run.StartedAt.Local().Format(time.DateTime), humanize.Time(run.StartedAt))
	fmt.Fprintf(out, "Texts: %d analyzed, %d failed\n", run.Texts, run.Failed)

	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		if d.Failed() {
			rows = append(rows, []string{d.Filename, "", "", "", "", "", d.Error})
			continue
		}
		rows = append(rows, []string{
			d.Filename,
			strconv.Itoa(d.Words),
			strconv.Itoa(d.UniqueLemmas),
			textutil.FormatFloat(d.TTR),
			textutil.FormatFloat(d.LexicalDensity),
			d.LongestWord,
			"",
		})
	}
	headers := []string{"File", "Words", "Lemmas", "TTR", "Density", "Longest word", "Error"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return nil
}

type runDetail struct {
	history.Run `yaml:",inline"`
	Documents   []history.Document `json:"documents" yaml:"documents"`
}
