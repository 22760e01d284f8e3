package people

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordTrims(t *testing.T) {
	tests := []struct {
		name    string
		country string
		gender  string
		age     string
		want    Record
	}{
		{"clean", "US", "M", "30", Record{Country: "US", Gender: "M", Age: 30, AgeText: "30"}},
		{"padded", "  FR ", " F\t", " 41.5 ", Record{Country: "FR", Gender: "F", Age: 41.5, AgeText: "41.5"}},
		{"unknown gender", "DE", " X ", "7", Record{Country: "DE", Gender: "X", Age: 7, AgeText: "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRecord(tt.country, tt.gender, tt.age))
		})
	}
}

func TestNewRecordKeepsMalformedAge(t *testing.T) {
	r := NewRecord("US", "M", " thirty ")
	assert.True(t, math.IsNaN(r.Age))
	assert.Equal(t, "thirty", r.AgeText)
	assert.Equal(t, "thirty", r.AgeString())
}

func TestRecordColor(t *testing.T) {
	assert.Equal(t, ColorBlue, NewRecord("US", "M", "1").Color())
	assert.Equal(t, ColorRed, NewRecord("US", "F", "1").Color())
	assert.Equal(t, ColorNone, NewRecord("US", "X", "1").Color())

	_, ok := ColorFor("X")
	assert.False(t, ok)
}

func TestAgeString(t *testing.T) {
	assert.Equal(t, "30", NewRecord("US", "M", "30.0").AgeString())
	assert.Equal(t, "30.5", NewRecord("US", "M", "30.5").AgeString())
}

func TestTableIsImmutable(t *testing.T) {
	recs := []Record{NewRecord("US", "M", "30")}
	cols := []string{" Country ", "Gender", " Age"}
	tbl := NewTable(cols, recs)

	recs[0].Country = "changed"
	cols[0] = "changed"
	got := tbl.Records()
	got[0].Country = "also changed"

	assert.Equal(t, "US", tbl.At(0).Country)
	assert.Equal(t, []string{"Country", "Gender", "Age"}, tbl.Columns())
}

func TestTableCountries(t *testing.T) {
	tbl := NewTable(Columns, []Record{
		NewRecord("US", "M", "30"),
		NewRecord("FR", "F", "25"),
		NewRecord("US", "F", "40"),
		NewRecord("BE", "M", "50"),
	})

	require.Equal(t, 4, tbl.Len())
	assert.Equal(t, []string{"BE", "FR", "US"}, tbl.Countries())
	assert.Equal(t, map[string]int{"US": 2, "FR": 1, "BE": 1}, tbl.CountByCountry())
	assert.Equal(t, map[Gender]int{GenderMale: 2, GenderFemale: 2}, tbl.CountByGender())
}
