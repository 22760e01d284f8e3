package dataset

import (
	"fmt"
	"io"

	"github.com/f3rmion/agedash/internal/people"
	"github.com/go-gota/gota/dataframe"
)

// frameColumns are the columns of the tabular display.
var frameColumns = []string{people.ColumnCountry, people.ColumnGender, people.ColumnAge, "Color"}

// Frame converts records into a text DataFrame. Row order is preserved, so
// the frame is indexed from zero in record order.
func Frame(records []people.Record) dataframe.DataFrame {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, frameColumns)
	for _, r := range records {
		rows = append(rows, []string{r.Country, string(r.Gender), r.AgeString(), string(r.Color())})
	}
	return dataframe.LoadRecords(rows, dataframe.DetectTypes(false), dataframe.NaNValues(nil))
}

// WriteCSV writes records with a header row to w.
func WriteCSV(w io.Writer, records []people.Record) error {
	var (
		df   dataframe.DataFrame
		opts []dataframe.WriteOption
	)
	if len(records) == 0 {
		// gota needs a row, so the header goes in as one.
		df = dataframe.LoadRecords([][]string{frameColumns},
			dataframe.HasHeader(false),
			dataframe.DetectTypes(false),
			dataframe.NaNValues(nil),
		)
		opts = append(opts, dataframe.WriteHeader(false))
	} else {
		df = Frame(records)
	}

	if df.Err != nil {
		return fmt.Errorf("building frame: %w", df.Err)
	}
	if err := df.WriteCSV(w, opts...); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// FormatTable renders records as a zero-indexed text table.
func FormatTable(records []people.Record) string {
	if len(records) == 0 {
		return "(no rows)"
	}
	return Frame(records).String()
}
