package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Overrides carries command-line values that take precedence over the
// file. Zero values leave the setting alone.
type Overrides struct {
	CorpusDir    string
	MetadataFile string
	ResultsDir   string
	Workers      int
	LogLevel     string
	LogFormat    string
}

// Apply merges o into c and validates the result. Output files and the
// history database that lived in the old results directory follow it to
// the new one.
func (c *Config) Apply(o Overrides) error {
	var err error
	if v := strings.TrimSpace(o.CorpusDir); v != "" {
		if c.Paths.CorpusDir, err = expandPath(v); err != nil {
			return fmt.Errorf("corpus dir: %w", err)
		}
	}
	if v := strings.TrimSpace(o.MetadataFile); v != "" {
		if c.Paths.MetadataFile, err = expandPath(v); err != nil {
			return fmt.Errorf("metadata file: %w", err)
		}
	}
	if v := strings.TrimSpace(o.ResultsDir); v != "" {
		dir, err := expandPath(v)
		if err != nil {
			return fmt.Errorf("results dir: %w", err)
		}
		old := c.Paths.ResultsDir
		c.Paths.StatisticsFile = relocate(c.Paths.StatisticsFile, old, dir)
		c.Paths.ReportFile = relocate(c.Paths.ReportFile, old, dir)
		c.History.Path = relocate(c.History.Path, old, dir)
		c.Paths.ResultsDir = dir
	}
	if o.Workers != 0 {
		c.Analysis.Workers = o.Workers
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(o.LogFormat); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	return c.Validate()
}

func relocate(path, from, to string) string {
	rel, err := filepath.Rel(from, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join(to, rel)
}
