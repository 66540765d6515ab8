package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeGroups()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeHistory()
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(envCorpusDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.CorpusDir = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv(envResultsDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.ResultsDir = strings.TrimSpace(value)
	}

	var err error
	if c.Paths.CorpusDir, err = expandPath(strings.TrimSpace(c.Paths.CorpusDir)); err != nil {
		return fmt.Errorf("paths.corpus_dir: %w", err)
	}
	if c.Paths.MetadataFile, err = expandPath(strings.TrimSpace(c.Paths.MetadataFile)); err != nil {
		return fmt.Errorf("paths.metadata_file: %w", err)
	}
	if c.Paths.ResultsDir, err = expandPath(strings.TrimSpace(c.Paths.ResultsDir)); err != nil {
		return fmt.Errorf("paths.results_dir: %w", err)
	}
	if c.Paths.DictionaryDir, err = expandPath(strings.TrimSpace(c.Paths.DictionaryDir)); err != nil {
		return fmt.Errorf("paths.dictionary_dir: %w", err)
	}
	if c.Paths.StatisticsFile, err = c.resultsPath(c.Paths.StatisticsFile, defaultStatisticsFile); err != nil {
		return fmt.Errorf("paths.statistics_file: %w", err)
	}
	if c.Paths.ReportFile, err = c.resultsPath(c.Paths.ReportFile, defaultReportFile); err != nil {
		return fmt.Errorf("paths.report_file: %w", err)
	}
	return nil
}

// resultsPath resolves a bare or relative file name against the results
// directory. Absolute and tilde paths are only expanded.
func (c *Config) resultsPath(value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) || strings.HasPrefix(value, "~") {
		return expandPath(value)
	}
	return expandPath(filepath.Join(c.Paths.ResultsDir, value))
}

func (c *Config) normalizeAnalysis() {
	c.Analysis.Extension = strings.TrimSpace(c.Analysis.Extension)
	if c.Analysis.Extension == "" {
		c.Analysis.Extension = defaultExtension
	}
	if !strings.HasPrefix(c.Analysis.Extension, ".") {
		c.Analysis.Extension = "." + c.Analysis.Extension
	}
	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = defaultWorkers
	}
	if c.Analysis.TopLemmas == 0 {
		c.Analysis.TopLemmas = defaultTopLemmas
	}
	if c.Analysis.TopVerbs == 0 {
		c.Analysis.TopVerbs = defaultTopVerbs
	}
}

// normalizeGroups trims names, lowercases lemmas, and drops blank and
// repeated lemmas. Missing sections fall back to the defaults.
func (c *Config) normalizeGroups() {
	if c.Characters == nil {
		c.Characters = DefaultCharacters()
	}
	if c.Colors == nil {
		c.Colors = DefaultColors()
	}
	for i := range c.Characters {
		c.Characters[i].Name = strings.TrimSpace(c.Characters[i].Name)
		c.Characters[i].Lemmas = cleanLemmas(c.Characters[i].Lemmas)
	}
	for i := range c.Colors {
		c.Colors[i].Name = strings.TrimSpace(c.Colors[i].Name)
		c.Colors[i].Variants = cleanLemmas(c.Colors[i].Variants)
	}
}

func cleanLemmas(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	var err error
	if c.History.Path, err = c.resultsPath(c.History.Path, defaultHistoryFile); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}
