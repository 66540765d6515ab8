// Package fileutil reads and writes the plain-text and tabular files the
// analysis consumes and produces.
package fileutil

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotFound reports a missing input file.
	ErrNotFound = errors.New("file not found")
	// ErrEncoding reports a file whose content is not valid UTF-8.
	ErrEncoding = errors.New("invalid file encoding")
	// ErrRowTooLong reports a table row with more values than headers.
	ErrRowTooLong = errors.New("row has more values than headers")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one table record keyed by column header.
type Row map[string]string

// ListFiles returns the names of the regular files in dir ending in ext,
// sorted. Subdirectories are not descended into.
func ListFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("list %s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ReadText returns the content of a UTF-8 text file.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read %s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrEncoding)
	}
	return string(data), nil
}

// WriteText writes content to path, creating parent directories. The file
// is written to a temporary sibling first and renamed into place.
func WriteText(path, content string) error {
	return writeAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
}

// ReadTable reads a comma separated table whose first line is the header.
// Fields are split on every comma; quotes carry no meaning and stay in the
// value. Values are trimmed of surrounding whitespace and blank lines are
// skipped. A line shorter than the header carries only the columns it has.
// A line longer than the header stops the read: the rows before it are
// returned along with ErrRowTooLong.
func ReadTable(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read table %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read table %s: %w", path, ErrEncoding)
	}

	sc := bufio.NewScanner(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	var (
		headers []string
		rows    []Row
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		values := strings.Split(line, ",")
		trimAll(values)
		if headers == nil {
			headers = values
			continue
		}
		if len(values) > len(headers) {
			return rows, fmt.Errorf("read table %s line %d: %w", path, lineNo, ErrRowTooLong)
		}
		row := make(Row, len(values))
		for i, v := range values {
			row[headers[i]] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return rows, fmt.Errorf("read table %s: %w", path, err)
	}
	return rows, nil
}

// WriteTable writes headers and rows as a comma separated table, creating
// parent directories. Values holding commas, quotes or newlines are quoted.
func WriteTable(path string, headers []string, rows [][]string) error {
	return writeAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(headers); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		return cw.Error()
	})
}

func trimAll(values []string) {
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
}

func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
