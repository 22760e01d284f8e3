package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/f3rmion/agedash/internal/people"
	"github.com/go-gota/gota/dataframe"
)

// LoadCSV reads a comma-separated file with a header row.
func LoadCSV(path string) (people.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return people.Table{}, missingInput(path)
		}
		return people.Table{}, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads comma-separated records from r. Every cell is read as text;
// ages are parsed after trimming. The header row is read as data so gota
// leaves duplicate names alone and a header without rows still loads.
func ReadCSV(r io.Reader) (people.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return people.Table{}, fmt.Errorf("reading csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return people.Table{}, fmt.Errorf("reading csv: %w", df.Err)
	}

	// The first record holds gota's generated column names.
	records := df.Records()
	if len(records) < 2 {
		return people.Table{}, fmt.Errorf("reading csv: no header row")
	}

	return buildTable(records[1], records[2:])
}
