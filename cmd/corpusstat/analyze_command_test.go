package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"corpusstat/internal/history"
)

func TestAnalyzeWritesResultsAndHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"analyze", "--workers", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "2/2")
	requireContains(t, out, "Ведьмак")
	requireContains(t, out, "Results saved to "+env.resultsDir)
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected plain output for a non-terminal writer: %q", out)
	}

	stats := readFile(t, filepath.Join(env.resultsDir, "statistics.csv"))
	lines := strings.Split(strings.TrimSpace(stats), "\n")
	if len(lines) != 3 {
		t.Fatalf("statistics has %d lines: %q", len(lines), stats)
	}
	requireContains(t, lines[1], "notes.txt")
	requireContains(t, lines[2], "witcher.txt,Сапковский,1990,Ведьмак")

	rep := readFile(t, filepath.Join(env.resultsDir, "report.txt"))
	requireContains(t, rep, "Ведьмак")

	out, _, err = runCLI(t, []string{"history", "--format", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	var runs []history.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode history json: %v\n%s", err, out)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	if runs[0].Texts != 2 || runs[0].Failed != 0 || runs[0].CorpusDir != env.corpusDir {
		t.Errorf("unexpected run: %+v", runs[0])
	}

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history table: %v", err)
	}
	requireContains(t, out, runs[0].ID)

	out, _, err = runCLI(t, []string{"history", runs[0].ID, "--format", "yaml"}, env.configPath)
	if err != nil {
		t.Fatalf("history run: %v", err)
	}
	requireContains(t, out, "id: "+runs[0].ID)
	requireContains(t, out, "filename: witcher.txt")

	out, _, err = runCLI(t, []string{"history", runs[0].ID}, env.configPath)
	if err != nil {
		t.Fatalf("history run table: %v", err)
	}
	requireContains(t, out, "Texts: 2 analyzed, 0 failed")
	requireContains(t, out, "notes.txt")
}

func TestAnalyzeOutOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	outDir := filepath.Join(env.baseDir, "elsewhere")

	out, _, err := runCLI(t, []string{"analyze", "--out", outDir}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Results saved to "+outDir)
	readFile(t, filepath.Join(outDir, "statistics.csv"))
	readFile(t, filepath.Join(outDir, "report.txt"))
}

func TestAnalyzeMissingCorpus(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"analyze", "--corpus", filepath.Join(env.baseDir, "absent")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for a missing corpus directory")
	}
}

func TestAnalyzeRefusesConcurrentRun(t *testing.T) {
	env := setupCLITestEnv(t)
	writeFile(t, filepath.Join(env.resultsDir, ".keep"), "")

	lock := flock.New(filepath.Join(env.resultsDir, ".corpusstat.lock"))
	locked, err := lock.TryLock()
	if err != nil || !locked {
		t.Fatalf("TryLock = %v, %v", locked, err)
	}
	defer lock.Unlock()

	_, _, err = runCLI(t, []string{"analyze"}, env.configPath)
	if err == nil {
		t.Fatal("expected lock conflict")
	}
	requireContains(t, err.Error(), "already running")
}

func TestHistoryRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"history", "--format", "xml"}, env.configPath)
	if err == nil {
		t.Fatal("expected format error")
	}
	requireContains(t, err.Error(), "unsupported format")
}

func TestHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No runs recorded")
}

func TestLemmaCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"lemma", "Ведьмак", "и"}, env.configPath)
	if err != nil {
		t.Fatalf("lemma: %v", err)
	}
	requireContains(t, out, "LEMMA")
	requireContains(t, out, "ведьмак")
	requireContains(t, out, "yes")

	if _, _, err := runCLI(t, []string{"lemma"}, env.configPath); err == nil {
		t.Fatal("expected error without words")
	}
}
