package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"corpusstat/internal/morph"
	"corpusstat/internal/textutil"
)

func newLemmaCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lemma WORD...",
		Short: "Show every parse the analyzer finds for the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			analyzer, err := morph.New(morph.WithDataDir(cfg.Paths.DictionaryDir), morph.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("load morphology dictionary: %w", err)
			}

			var rows [][]string
			for _, word := range args {
				for _, p := range analyzer.Parse(textutil.Lower(strings.TrimSpace(word))) {
					rows = append(rows, []string{
						p.Word,
						p.NormalForm,
						p.Tag.String(),
						strconv.FormatFloat(p.Score, 'f', 3, 64),
						string(p.Method),
						yesNo(analyzer.IsStopword(p.NormalForm)),
					})
				}
			}
			headers := []string{"Word", "Lemma", "Tag", "Score", "Method", "Stopword"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
