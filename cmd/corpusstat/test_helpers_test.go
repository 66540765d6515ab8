package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	corpusDir  string
	resultsDir string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("CORPUSSTAT_CORPUS_DIR", "")
	t.Setenv("CORPUSSTAT_RESULTS_DIR", "")
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:    base,
		corpusDir:  filepath.Join(base, "corpus"),
		resultsDir: filepath.Join(base, "results"),
		configPath: filepath.Join(base, "corpusstat.toml"),
	}
	writeFile(t, filepath.Join(env.corpusDir, "witcher.txt"), "Ведьмак и чародейка пришли ночью.\nВедьмак молчал.\n")
	writeFile(t, filepath.Join(env.corpusDir, "notes.txt"), "Белый волк ждал у башни.\n")
	writeFile(t, filepath.Join(base, "metadata.csv"), "filename,title,author,year\nwitcher.txt,Ведьмак,Сапковский,1990\n")

	content := fmt.Sprintf(
		"[paths]\ncorpus_dir = %q\nmetadata_file = %q\nresults_dir = %q\n\n[logging]\nlevel = \"error\"\n",
		filepath.ToSlash(env.corpusDir),
		filepath.ToSlash(filepath.Join(base, "metadata.csv")),
		filepath.ToSlash(env.resultsDir),
	)
	writeFile(t, env.configPath, content)
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
