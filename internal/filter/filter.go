// Package filter narrows a table down to the selected countries and genders.
package filter

import (
	"strconv"

	"github.com/f3rmion/agedash/internal/people"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"
)

// Selection holds the countries and genders chosen by the user.
// A nil or empty slice selects nothing.
type Selection struct {
	Countries []string
	Genders   []people.Gender
}

// View is the filtered, sorted subset of a table. Rows are indexed from zero.
type View struct {
	Rows []people.Record
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	return len(v.Rows)
}

// colRow holds the load position of each record in the key frame.
const colRow = "Row"

// Apply returns the records of t whose country and gender are both selected,
// sorted by country then gender. Records with equal keys keep load order.
// The table is not modified.
func Apply(t people.Table, sel Selection) View {
	rows := make([]people.Record, 0, t.Len())
	if t.Len() == 0 || len(sel.Countries) == 0 || len(sel.Genders) == 0 {
		return View{Rows: rows}
	}

	genders := make([]string, len(sel.Genders))
	for i, g := range sel.Genders {
		genders[i] = string(g)
	}

	df := keyFrame(t).
		FilterAggregation(dataframe.And,
			dataframe.F{Colname: people.ColumnCountry, Comparator: series.In, Comparando: sel.Countries},
			dataframe.F{Colname: people.ColumnGender, Comparator: series.In, Comparando: genders},
		)
	if df.Err != nil {
		logrus.WithError(df.Err).Error("filtering rows")
		return View{Rows: rows}
	}
	if df.Nrow() == 0 {
		return View{Rows: rows}
	}

	// Arrange sorts stably once per key, so ties keep load order.
	df = df.Arrange(dataframe.Sort(people.ColumnCountry), dataframe.Sort(people.ColumnGender))
	if df.Err != nil {
		logrus.WithError(df.Err).Error("sorting rows")
		return View{Rows: rows}
	}

	idx, err := df.Col(colRow).Int()
	if err != nil {
		logrus.WithError(err).Error("reading row index")
		return View{Rows: rows}
	}
	for _, i := range idx {
		rows = append(rows, t.At(i))
	}

	return View{Rows: rows}
}

// keyFrame holds the filter and sort keys of t, one row per record, with the
// record's load position.
func keyFrame(t people.Table) dataframe.DataFrame {
	records := make([][]string, 0, t.Len()+1)
	records = append(records, []string{colRow, people.ColumnCountry, people.ColumnGender})
	for i, r := range t.Records() {
		records = append(records, []string{strconv.Itoa(i), r.Country, string(r.Gender)})
	}

	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.NaNValues(nil),
		dataframe.WithTypes(map[string]series.Type{colRow: series.Int}),
	)
}
