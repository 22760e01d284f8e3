// Package people provides the record types shown on the age dashboard.
package people

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Gender is the gender code of a record. Codes other than M and F are kept
// verbatim.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Genders lists the gender options offered by the dashboard, in display order.
var Genders = []Gender{GenderMale, GenderFemale}

// Color is a named display color.
type Color string

const (
	ColorBlue Color = "blue"
	ColorRed  Color = "red"
	ColorNone Color = "" // Unmapped gender
)

var genderColors = map[Gender]Color{
	GenderMale:   ColorBlue,
	GenderFemale: ColorRed,
}

// ColorFor returns the color assigned to a gender code. The second result is
// false for unmapped codes, in which case the color is ColorNone.
func ColorFor(g Gender) (Color, bool) {
	c, ok := genderColors[g]
	return c, ok
}

// Column names of the input table.
const (
	ColumnCountry = "Country"
	ColumnGender  = "Gender"
	ColumnAge     = "Age"
)

// Columns lists the required input columns.
var Columns = []string{ColumnCountry, ColumnGender, ColumnAge}

// Record is one person from the input table.
type Record struct {
	Country string  `json:"country" yaml:"country"`
	Gender  Gender  `json:"gender" yaml:"gender"`
	Age     float64 `json:"age" yaml:"age"` // NaN when AgeText is not a number
	AgeText string  `json:"-" yaml:"-"`     // Trimmed source text of Age
}

// NewRecord builds a cleaned record from raw cell values. Country and gender
// are trimmed; age is parsed leniently and becomes NaN when it is not numeric.
func NewRecord(country, gender, age string) Record {
	ageText := strings.TrimSpace(age)
	v, err := strconv.ParseFloat(ageText, 64)
	if err != nil {
		v = math.NaN()
	}
	return Record{
		Country: strings.TrimSpace(country),
		Gender:  Gender(strings.TrimSpace(gender)),
		Age:     v,
		AgeText: ageText,
	}
}

// Color returns the display color derived from the record's gender.
func (r Record) Color() Color {
	c, _ := ColorFor(r.Gender)
	return c
}

// AgeString formats the age for display.
func (r Record) AgeString() string {
	if math.IsNaN(r.Age) {
		return r.AgeText
	}
	return strconv.FormatFloat(r.Age, 'f', -1, 64)
}

// Table is an immutable, cleaned set of records in load order.
type Table struct {
	columns []string
	records []Record
}

// NewTable creates a table from cleaned records. Column names are trimmed.
// The slices are copied, so callers may reuse them.
func NewTable(columns []string, records []Record) Table {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = strings.TrimSpace(c)
	}
	recs := make([]Record, len(records))
	copy(recs, records)
	return Table{columns: cols, records: recs}
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.records)
}

// Columns returns the trimmed column names.
func (t Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Records returns a copy of the records in load order.
func (t Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// At returns the i-th record in load order.
func (t Table) At(i int) Record {
	return t.records[i]
}

// Countries returns the distinct countries, sorted ascending.
func (t Table) Countries() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.records {
		if !seen[r.Country] {
			seen[r.Country] = true
			out = append(out, r.Country)
		}
	}
	sort.Strings(out)
	return out
}

// CountByCountry returns the number of records per country.
func (t Table) CountByCountry() map[string]int {
	counts := make(map[string]int)
	for _, r := range t.records {
		counts[r.Country]++
	}
	return counts
}

// CountByGender returns the number of records per gender code.
func (t Table) CountByGender() map[Gender]int {
	counts := make(map[Gender]int)
	for _, r := range t.records {
		counts[r.Gender]++
	}
	return counts
}
