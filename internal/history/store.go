package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrRunNotFound reports an unknown run identifier.
var ErrRunNotFound = errors.New("run not found")

// Store persists runs in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun stores run and its documents in one transaction. Documents
// keep their order.
func (s *Store) RecordRun(ctx context.Context, run Run, docs []Document) error {
	if run.ID == "" {
		return errors.New("record run: missing run id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, started_at, finished_at, corpus_dir, texts, failed, words, bytes, avg_ttr
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		formatTime(run.StartedAt),
		formatTime(run.FinishedAt),
		run.CorpusDir,
		run.Texts,
		run.Failed,
		run.Words,
		run.Bytes,
		run.AvgTTR,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (
            run_id, position, filename, words, unique_lemmas, ttr, lexical_density, longest_word, lines, error
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare document insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range docs {
		var metrics []any
		if d.Failed() {
			metrics = []any{nil, nil, nil, nil, nil, nil, d.Error}
		} else {
			metrics = []any{d.Words, d.UniqueLemmas, d.TTR, d.LexicalDensity, d.LongestWord, d.Lines, nil}
		}
		args := append([]any{run.ID, i, d.Filename}, metrics...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert document %s: %w", d.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

const runColumns = `id, started_at, finished_at, corpus_dir, texts, failed, words, bytes, avg_ttr`

// Runs returns the most recent runs first. limit <= 0 returns every run.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Run fetches one run. An unknown id yields ErrRunNotFound.
func (s *Store) Run(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// Documents returns the documents of a run in their original order.
func (s *Store) Documents(ctx context.Context, runID string) ([]Document, error) {
	if _, err := s.Run(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT filename, words, unique_lemmas, ttr, lexical_density, longest_word, lines, error
         FROM documents WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			d       Document
			words   sql.NullInt64
			unique  sql.NullInt64
			ttr     sql.NullFloat64
			density sql.NullFloat64
			longest sql.NullString
			lines   sql.NullInt64
			errMsg  sql.NullString
		)
		if err := rows.Scan(&d.Filename, &words, &unique, &ttr, &density, &longest, &lines, &errMsg); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Words = int(words.Int64)
		d.UniqueLemmas = int(unique.Int64)
		d.TTR = ttr.Float64
		d.LexicalDensity = density.Float64
		d.LongestWord = longest.String
		d.Lines = int(lines.Int64)
		d.Error = errMsg.String
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run                   Run
		startedRaw, finishRaw string
	)
	err := scanner.Scan(&run.ID, &startedRaw, &finishRaw, &run.CorpusDir,
		&run.Texts, &run.Failed, &run.Words, &run.Bytes, &run.AvgTTR)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	if run.StartedAt, err = parseTime(startedRaw); err != nil {
		return Run{}, fmt.Errorf("run %s started_at: %w", run.ID, err)
	}
	if run.FinishedAt, err = parseTime(finishRaw); err != nil {
		return Run{}, fmt.Errorf("run %s finished_at: %w", run.ID, err)
	}
	return run, nil
}

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
