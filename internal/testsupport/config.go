// Package testsupport builds configs, corpora and stores for tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"corpusstat/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose corpus and results directories live in
// a fresh temp directory. Paths are absolute, as Load would leave them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CorpusDir = filepath.Join(base, "corpus")
	cfgVal.Paths.MetadataFile = filepath.Join(base, "metadata.csv")
	cfgVal.Paths.ResultsDir = filepath.Join(base, "results")
	cfgVal.Paths.StatisticsFile = filepath.Join(base, "results", "statistics.csv")
	cfgVal.Paths.ReportFile = filepath.Join(base, "results", "report.txt")
	cfgVal.History.Path = filepath.Join(base, "results", "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithCorpus writes files into the corpus directory.
func WithCorpus(files map[string][]byte) ConfigOption {
	return func(b *configBuilder) {
		for name, data := range files {
			WriteFile(b.t, filepath.Join(b.cfg.Paths.CorpusDir, name), data)
		}
	}
}

// WithCorpusDir points the config at an existing directory.
func WithCorpusDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.CorpusDir = dir
	}
}

// WithWorkers sets the analysis worker count.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.Workers = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ResultsDir)
}
