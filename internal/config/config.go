package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths locates the corpus inputs and the analysis outputs.
type Paths struct {
	CorpusDir      string `toml:"corpus_dir"`
	MetadataFile   string `toml:"metadata_file"`
	ResultsDir     string `toml:"results_dir"`
	StatisticsFile string `toml:"statistics_file"`
	ReportFile     string `toml:"report_file"`
	DictionaryDir  string `toml:"dictionary_dir"`
}

// Analysis tunes the per-file pipeline.
type Analysis struct {
	Extension string `toml:"extension"`
	Workers   int    `toml:"workers"`
	TopLemmas int    `toml:"top_lemmas"`
	TopVerbs  int    `toml:"top_verbs"`
}

// CharacterGroup is a named set of lemmas that count as a mention of one
// character.
type CharacterGroup struct {
	Name   string   `toml:"name"`
	Lemmas []string `toml:"lemmas"`
}

// ColorGroup is a colour and the lemmas that evoke it.
type ColorGroup struct {
	Name     string   `toml:"name"`
	Variants []string `toml:"variants"`
}

// Logging controls log output. File, when set, receives a JSON copy of
// every record.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// History controls the run history database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config encapsulates every corpusstat setting.
type Config struct {
	Paths      Paths            `toml:"paths"`
	Analysis   Analysis         `toml:"analysis"`
	Characters []CharacterGroup `toml:"characters"`
	Colors     []ColorGroup     `toml:"colors"`
	Logging    Logging          `toml:"logging"`
	History    History          `toml:"history"`
}

// DefaultConfigPath returns the absolute path of the per-user config file.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the path that was resolved, and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// Arrays of tables append on decode; start them empty so a file
		// replaces the defaults instead of extending them.
		cfg.Characters, cfg.Colors = nil, nil
		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// StatisticsPath returns the absolute path of the per-file statistics table.
func (c *Config) StatisticsPath() string {
	return c.Paths.StatisticsFile
}

// ReportPath returns the absolute path of the text report.
func (c *Config) ReportPath() string {
	return c.Paths.ReportFile
}

// LockPath returns the lock file guarding the results directory.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.ResultsDir, lockFileName)
}

// EnsureDirectories creates the results directory.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.ResultsDir, 0o755); err != nil {
		return fmt.Errorf("create results directory %q: %w", c.Paths.ResultsDir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules to other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// SampleConfig returns the annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders c as TOML.
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	enc := toml.NewEncoder(&b).SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}
