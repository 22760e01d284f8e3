// Package dataset loads person records from CSV, SQLite and JSON lines files.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/f3rmion/agedash/internal/people"
	"github.com/sirupsen/logrus"
)

// DefaultFile is the data file read when no other path is configured.
const DefaultFile = "country_data.csv"

// DefaultTable is the SQLite table read when no other table is configured.
const DefaultTable = "country_data"

var (
	// ErrMissingInput is returned when the data file does not exist.
	ErrMissingInput = errors.New("input file not found")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing column")
)

// utf8BOM is the byte order mark spreadsheet programs put before UTF-8 text.
const utf8BOM = "\ufeff"

// Format identifies the encoding of a data file.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
	FormatJSONL  Format = "jsonl"
)

// Source describes where records are read from.
type Source struct {
	Path  string
	Table string // SQLite only
}

// DetectFormat picks a format from the file extension. Unknown extensions
// are read as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatCSV
	}
}

// Load reads and cleans the records of src.
func Load(ctx context.Context, src Source) (people.Table, error) {
	path := src.Path
	if path == "" {
		path = DefaultFile
	}

	format := DetectFormat(path)
	logrus.WithFields(logrus.Fields{"path": path, "format": format}).Debug("loading dataset")

	var (
		tbl people.Table
		err error
	)
	switch format {
	case FormatSQLite:
		table := src.Table
		if table == "" {
			table = DefaultTable
		}
		tbl, err = LoadSQLite(ctx, path, table)
	case FormatJSONL:
		tbl, err = LoadJSONL(path)
	default:
		tbl, err = LoadCSV(path)
	}
	if err != nil {
		return people.Table{}, err
	}

	logrus.WithField("rows", tbl.Len()).Info("dataset loaded")
	return tbl, nil
}

// IsMissingInput reports whether err means the data file was absent.
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

func missingInput(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingInput, path)
}

// buildTable maps a header row and string rows onto cleaned records.
func buildTable(header []string, rows [][]string) (people.Table, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		// Repeated names resolve to the first column.
		if _, ok := index[strings.TrimSpace(name)]; !ok {
			index[strings.TrimSpace(name)] = i
		}
	}

	cols := make([]int, len(people.Columns))
	for i, name := range people.Columns {
		idx, ok := index[name]
		if !ok {
			return people.Table{}, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		cols[i] = idx
	}

	records := make([]people.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, people.NewRecord(cell(row, cols[0]), cell(row, cols[1]), cell(row, cols[2])))
	}

	return people.NewTable(header, records), nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
