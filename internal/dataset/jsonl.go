package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/f3rmion/agedash/internal/people"
	"github.com/sirupsen/logrus"
)

// LoadJSONL reads a file holding one JSON object per line.
func LoadJSONL(path string) (people.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return people.Table{}, missingInput(path)
		}
		return people.Table{}, fmt.Errorf("opening jsonl file: %w", err)
	}
	defer f.Close()

	return ReadJSONL(f)
}

// ReadJSONL reads JSON lines from r. Blank and malformed lines are skipped.
// Object keys are trimmed before they are matched against column names.
func ReadJSONL(r io.Reader) (people.Table, error) {
	var rows [][]string

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(line))
		dec.UseNumber()
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			logrus.WithField("line", lineNum).WithError(err).Debug("skipping malformed jsonl line")
			continue
		}

		fields := make(map[string]any, len(obj))
		for k, v := range obj {
			fields[strings.TrimSpace(k)] = v
		}

		row := make([]string, len(people.Columns))
		for i, name := range people.Columns {
			v, ok := fields[name]
			if !ok {
				return people.Table{}, fmt.Errorf("line %d: %w: %s", lineNum, ErrMissingColumn, name)
			}
			row[i] = jsonText(v)
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return people.Table{}, fmt.Errorf("reading jsonl: %w", err)
	}

	return buildTable(people.Columns, rows)
}

func jsonText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
