package dashboard

import (
	"testing"

	"github.com/f3rmion/agedash/internal/filter"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() people.Table {
	return people.NewTable(people.Columns, []people.Record{
		people.NewRecord("US", "M", "30"),
		people.NewRecord("US", "F", "25"),
		people.NewRecord("FR", "M", "40"),
	})
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection(sampleTable())

	assert.Equal(t, []string{"FR", "US"}, sel.Countries)
	assert.Equal(t, []people.Gender{people.GenderMale, people.GenderFemale}, sel.Genders)
}

func TestRenderDefault(t *testing.T) {
	tbl := sampleTable()
	res := Render(tbl, DefaultSelection(tbl))

	require.Equal(t, 3, res.View.Len())
	require.Len(t, res.Chart.Bars, 3)
	assert.Equal(t, []string{"FR\nM", "US\nF", "US\nM"}, []string{
		res.Chart.Ticks[0].Label, res.Chart.Ticks[1].Label, res.Chart.Ticks[2].Label,
	})
}

func TestRenderBarCountMatchesRows(t *testing.T) {
	tbl := sampleTable()
	selections := []filter.Selection{
		DefaultSelection(tbl),
		{Countries: []string{"US"}, Genders: people.Genders},
		{Countries: tbl.Countries(), Genders: []people.Gender{people.GenderMale}},
		{},
	}

	for _, sel := range selections {
		res := Render(tbl, sel)
		assert.Equal(t, res.View.Len(), len(res.Chart.Bars))
		assert.Len(t, res.Chart.Legend, 2)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	tbl := sampleTable()
	sel := filter.Selection{Countries: []string{"US"}, Genders: []people.Gender{people.GenderFemale}}

	assert.Equal(t, Render(tbl, sel), Render(tbl, sel))
}
