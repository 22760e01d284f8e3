package layout

import (
	"math"
	"testing"

	"github.com/f3rmion/agedash/internal/filter"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func view(records ...people.Record) filter.View {
	return filter.View{Rows: records}
}

func TestBuildScenario(t *testing.T) {
	c := Build(view(
		people.NewRecord("FR", "M", "40"),
		people.NewRecord("US", "F", "25"),
		people.NewRecord("US", "M", "30"),
	))

	require.Len(t, c.Bars, 3)
	require.Len(t, c.Ticks, 3)

	wantX := []float64{0, 1, 2}
	wantH := []float64{40, 25, 30}
	wantColor := []people.Color{people.ColorBlue, people.ColorRed, people.ColorBlue}
	wantLabel := []string{"FR\nM", "US\nF", "US\nM"}
	for i, b := range c.Bars {
		assert.Equal(t, wantX[i], b.X)
		assert.Equal(t, BarWidth, b.Width)
		assert.Equal(t, wantH[i], b.Height)
		assert.Equal(t, wantColor[i], b.Color)
		assert.Equal(t, wantX[i], c.Ticks[i].Position)
		assert.Equal(t, wantLabel[i], c.Ticks[i].Label)
	}

	assert.Equal(t, Title, c.Title)
	assert.Equal(t, "Age", c.YLabel)
	assert.Equal(t, 45.0, c.TickRotation)
	assert.Equal(t, 40.0, c.MaxHeight())
}

func TestBuildPositionsAreArithmetic(t *testing.T) {
	var rows []people.Record
	for _, country := range []string{"AT", "BE", "CH"} {
		for _, g := range []string{"F", "M", "M"} {
			rows = append(rows, people.NewRecord(country, g, "20"))
		}
	}

	c := Build(view(rows...))
	require.Len(t, c.Bars, len(rows))
	for i, b := range c.Bars {
		assert.Equal(t, float64(i)*Spacing, b.X)
	}
}

func TestBuildGroupsByFirstAppearance(t *testing.T) {
	c := Build(view(
		people.NewRecord("US", "M", "1"),
		people.NewRecord("FR", "M", "2"),
		people.NewRecord("US", "F", "3"),
	))

	var heights []float64
	for _, b := range c.Bars {
		heights = append(heights, b.Height)
	}
	assert.Equal(t, []float64{1, 3, 2}, heights)
}

func TestBuildEmptyViewKeepsLegend(t *testing.T) {
	c := Build(filter.View{})

	assert.Empty(t, c.Bars)
	assert.Empty(t, c.Ticks)
	assert.Equal(t, Legend(), c.Legend)
	assert.Equal(t, 0.0, c.MaxHeight())
}

func TestLegendIsFixed(t *testing.T) {
	for _, v := range []filter.View{
		view(people.NewRecord("US", "M", "30")),
		view(people.NewRecord("US", "F", "30")),
		view(),
	} {
		c := Build(v)
		require.Len(t, c.Legend, 2)
		assert.Equal(t, LegendEntry{Color: people.ColorBlue, Label: "Male"}, c.Legend[0])
		assert.Equal(t, LegendEntry{Color: people.ColorRed, Label: "Female"}, c.Legend[1])
		assert.Equal(t, "Gender", c.LegendTitle)
	}
}

func TestBuildUnmappedGenderAndAge(t *testing.T) {
	c := Build(view(people.NewRecord("US", "X", "n/a")))

	require.Len(t, c.Bars, 1)
	assert.Equal(t, people.ColorNone, c.Bars[0].Color)
	assert.True(t, math.IsNaN(c.Bars[0].Height))
	assert.Equal(t, "US\nX", c.Ticks[0].Label)
	assert.Equal(t, 0.0, c.MaxHeight())
}
