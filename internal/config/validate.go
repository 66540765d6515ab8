package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateGroups(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.CorpusDir == "" {
		return errors.New("paths.corpus_dir must be set")
	}
	if c.Paths.ResultsDir == "" {
		return errors.New("paths.results_dir must be set")
	}
	if c.Paths.StatisticsFile == c.Paths.ReportFile {
		return errors.New("paths.statistics_file and paths.report_file must differ")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.Extension == "." {
		return errors.New("analysis.extension must name an extension")
	}
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("analysis.workers must be at least 1, got %d", c.Analysis.Workers)
	}
	if c.Analysis.TopLemmas < 1 {
		return fmt.Errorf("analysis.top_lemmas must be positive, got %d", c.Analysis.TopLemmas)
	}
	if c.Analysis.TopVerbs < 1 {
		return fmt.Errorf("analysis.top_verbs must be positive, got %d", c.Analysis.TopVerbs)
	}
	return nil
}

func (c *Config) validateGroups() error {
	names := make(map[string]struct{}, len(c.Characters))
	for i, g := range c.Characters {
		if g.Name == "" {
			return fmt.Errorf("characters[%d].name must be set", i)
		}
		if _, dup := names[g.Name]; dup {
			return fmt.Errorf("characters: duplicate name %q", g.Name)
		}
		names[g.Name] = struct{}{}
		if len(g.Lemmas) == 0 {
			return fmt.Errorf("characters %q: lemmas must not be empty", g.Name)
		}
	}

	names = make(map[string]struct{}, len(c.Colors))
	for i, g := range c.Colors {
		if g.Name == "" {
			return fmt.Errorf("colors[%d].name must be set", i)
		}
		if _, dup := names[g.Name]; dup {
			return fmt.Errorf("colors: duplicate name %q", g.Name)
		}
		names[g.Name] = struct{}{}
		if len(g.Variants) == 0 {
			return fmt.Errorf("colors %q: variants must not be empty", g.Name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want %s)", c.Logging.Level,
			strings.Join([]string{"debug", "info", "warn", "error"}, ", "))
	}
	return nil
}
