package corpus

import (
	"errors"
	"log/slog"

	"corpusstat/internal/fileutil"
	"corpusstat/internal/logging"
)

// Metadata maps corpus file names to their metadata rows.
type Metadata struct {
	rows map[string]fileutil.Row
}

// NewMetadata indexes rows by their filename column. A later row for the
// same file replaces an earlier one; rows without a filename are ignored.
func NewMetadata(rows []fileutil.Row) Metadata {
	m := Metadata{rows: make(map[string]fileutil.Row, len(rows))}
	for _, row := range rows {
		name, ok := row["filename"]
		if !ok {
			continue
		}
		m.rows[name] = row
	}
	return m
}

// LoadMetadata reads the metadata table at path. A missing or unreadable
// table is logged and yields whatever rows could be read, so a run can
// proceed without metadata.
func LoadMetadata(path string, logger *slog.Logger) Metadata {
	logger = logging.NewComponentLogger(logger, "metadata")
	rows, err := fileutil.ReadTable(path)
	switch {
	case err == nil:
		logger.Debug("metadata loaded", slog.String("path", path), slog.Int("rows", len(rows)))
	case errors.Is(err, fileutil.ErrNotFound):
		logging.WarnWithContext(logger, "metadata file not found", "metadata_missing",
			slog.String("path", path),
			slog.String(logging.FieldErrorHint, "set paths.metadata_file or create the table"),
		)
	default:
		logging.WarnWithContext(logger, "metadata table unreadable", "metadata_invalid",
			slog.String("path", path),
			slog.Int("rows_kept", len(rows)),
			logging.Error(err),
		)
	}
	return NewMetadata(rows)
}

// Len returns the number of indexed files.
func (m Metadata) Len() int { return len(m.rows) }

// Lookup returns the row for filename.
func (m Metadata) Lookup(filename string) (fileutil.Row, bool) {
	row, ok := m.rows[filename]
	return row, ok
}

// Field returns the named column of filename's row, or def when the file
// or the column is absent. A present but empty column yields "".
func (m Metadata) Field(filename, column, def string) string {
	row, ok := m.rows[filename]
	if !ok {
		return def
	}
	value, ok := row[column]
	if !ok {
		return def
	}
	return value
}

func (m Metadata) Title(filename, def string) string  { return m.Field(filename, "title", def) }
func (m Metadata) Author(filename, def string) string { return m.Field(filename, "author", def) }
func (m Metadata) Year(filename, def string) string   { return m.Field(filename, "year", def) }
