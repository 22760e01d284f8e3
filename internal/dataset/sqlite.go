package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/f3rmion/agedash/internal/people"
	_ "modernc.org/sqlite"
)

// LoadSQLite reads every row of table from the SQLite database at path.
func LoadSQLite(ctx context.Context, path, table string) (people.Table, error) {
	// sql.Open would create a missing database file.
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return people.Table{}, missingInput(path)
		}
		return people.Table{}, fmt.Errorf("opening database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return people.Table{}, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table))
	if err != nil {
		return people.Table{}, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return people.Table{}, fmt.Errorf("reading columns: %w", err)
	}

	var data [][]string
	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return people.Table{}, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = v.String
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return people.Table{}, fmt.Errorf("reading rows: %w", err)
	}

	return buildTable(header, data)
}

// quoteIdent quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
