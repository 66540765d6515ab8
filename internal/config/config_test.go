package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"corpusstat/internal/config"
)

func TestLoadDefaultsResolveAgainstWorkingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected no config file")
	}
	if !strings.HasSuffix(resolved, filepath.Join(".config", "corpusstat", "config.toml")) {
		t.Fatalf("unexpected resolved path %q", resolved)
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"corpus_dir", cfg.Paths.CorpusDir, filepath.Join(work, "corpus")},
		{"metadata_file", cfg.Paths.MetadataFile, filepath.Join(work, "data", "metadata.csv")},
		{"results_dir", cfg.Paths.ResultsDir, filepath.Join(work, "results")},
		{"statistics_file", cfg.StatisticsPath(), filepath.Join(work, "results", "statistics.csv")},
		{"report_file", cfg.ReportPath(), filepath.Join(work, "results", "report.txt")},
		{"history.path", cfg.History.Path, filepath.Join(work, "results", "history.db")},
		{"lock", cfg.LockPath(), filepath.Join(work, "results", ".corpusstat.lock")},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if cfg.Paths.DictionaryDir != "" {
		t.Errorf("dictionary_dir = %q, want empty", cfg.Paths.DictionaryDir)
	}
	if cfg.Analysis.Workers != 1 || cfg.Analysis.TopLemmas != 10 || cfg.Analysis.TopVerbs != 5 {
		t.Errorf("unexpected analysis defaults %+v", cfg.Analysis)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if diff := cmp.Diff(config.DefaultCharacters(), cfg.Characters); diff != "" {
		t.Errorf("characters mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCustomPathReplacesGroups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpusstat.toml")
	content := `
[paths]
corpus_dir = "` + filepath.ToSlash(filepath.Join(dir, "texts")) + `"
results_dir = "` + filepath.ToSlash(filepath.Join(dir, "out")) + `"
report_file = "summary.txt"

[analysis]
extension = "md"
workers = 4

[[characters]]
name = " Лютик "
lemmas = ["лютик", "Бард", "лютик", ""]

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Paths.CorpusDir != filepath.Join(dir, "texts") {
		t.Errorf("corpus_dir = %q", cfg.Paths.CorpusDir)
	}
	if cfg.ReportPath() != filepath.Join(dir, "out", "summary.txt") {
		t.Errorf("report path = %q", cfg.ReportPath())
	}
	if cfg.StatisticsPath() != filepath.Join(dir, "out", "statistics.csv") {
		t.Errorf("statistics path = %q", cfg.StatisticsPath())
	}
	if cfg.Analysis.Extension != ".md" || cfg.Analysis.Workers != 4 {
		t.Errorf("analysis = %+v", cfg.Analysis)
	}
	want := []config.CharacterGroup{{Name: "Лютик", Lemmas: []string{"лютик", "бард"}}}
	if diff := cmp.Diff(want, cfg.Characters); diff != "" {
		t.Errorf("characters mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(config.DefaultColors(), cfg.Colors); diff != "" {
		t.Errorf("colors should fall back to defaults (-want +got):\n%s", diff)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CORPUSSTAT_CORPUS_DIR", filepath.Join(dir, "env-corpus"))
	t.Setenv("CORPUSSTAT_RESULTS_DIR", filepath.Join(dir, "env-results"))

	cfg, _, _, err := config.Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.CorpusDir != filepath.Join(dir, "env-corpus") {
		t.Errorf("corpus_dir = %q", cfg.Paths.CorpusDir)
	}
	if cfg.ReportPath() != filepath.Join(dir, "env-results", "report.txt") {
		t.Errorf("report path = %q", cfg.ReportPath())
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[analysis]\nthreads = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if diff := cmp.Diff(config.DefaultCharacters(), cfg.Characters); diff != "" {
		t.Errorf("sample characters differ from defaults (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(config.DefaultColors(), cfg.Colors); diff != "" {
		t.Errorf("sample colors differ from defaults (-want +got):\n%s", diff)
	}

	loaded, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample does not load: %v", err)
	}
	if loaded.Analysis.Workers != 1 {
		t.Errorf("workers = %d", loaded.Analysis.Workers)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	text, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	var back config.Config
	if err := toml.Unmarshal([]byte(text), &back); err != nil {
		t.Fatalf("unmarshal encoded config: %v", err)
	}
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero workers", func(c *config.Config) { c.Analysis.Workers = 0 }},
		{"negative top lemmas", func(c *config.Config) { c.Analysis.TopLemmas = -1 }},
		{"bare dot extension", func(c *config.Config) { c.Analysis.Extension = "." }},
		{"same output file", func(c *config.Config) { c.Paths.ReportFile = c.Paths.StatisticsFile }},
		{"unnamed character", func(c *config.Config) { c.Characters[0].Name = "" }},
		{"duplicate colour", func(c *config.Config) { c.Colors[1].Name = c.Colors[0].Name }},
		{"empty variants", func(c *config.Config) { c.Colors[0].Variants = nil }},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpusstat.toml")
	outside := filepath.Join(dir, "elsewhere", "report.txt")
	content := `
[paths]
results_dir = "` + filepath.ToSlash(filepath.Join(dir, "results")) + `"
report_file = "` + filepath.ToSlash(outside) + `"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	err = cfg.Apply(config.Overrides{
		CorpusDir:  filepath.Join(dir, "texts"),
		ResultsDir: filepath.Join(dir, "out"),
		Workers:    3,
		LogLevel:   "DEBUG",
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if cfg.Paths.CorpusDir != filepath.Join(dir, "texts") || cfg.Analysis.Workers != 3 || cfg.Logging.Level != "debug" {
		t.Errorf("overrides not applied: %+v %+v %+v", cfg.Paths, cfg.Analysis, cfg.Logging)
	}
	if cfg.StatisticsPath() != filepath.Join(dir, "out", "statistics.csv") {
		t.Errorf("statistics path = %q", cfg.StatisticsPath())
	}
	if cfg.History.Path != filepath.Join(dir, "out", "history.db") {
		t.Errorf("history path = %q", cfg.History.Path)
	}
	if cfg.ReportPath() != outside {
		t.Errorf("report outside results dir moved to %q", cfg.ReportPath())
	}

	if err := cfg.Apply(config.Overrides{Workers: -2}); err == nil {
		t.Fatal("expected validation error for negative workers")
	}
}
