// Package layout turns a filtered view into a chart description: bar
// positions, heights, colors, tick labels and the legend.
package layout

import (
	"github.com/f3rmion/agedash/internal/filter"
	"github.com/f3rmion/agedash/internal/people"
)

const (
	Title         = "Individual Ages by Country and Gender"
	YLabel        = "Age"
	LegendTitle   = "Gender"
	BarWidth      = 0.4
	Spacing       = 1.0
	TickRotation  = 45.0 // degrees
	tickSeparator = "\n"
)

// Bar is one rectangle of the chart.
type Bar struct {
	X      float64
	Width  float64
	Height float64
	Color  people.Color
	Record people.Record
}

// Tick is one labelled position on the x axis.
type Tick struct {
	Position float64
	Label    string
}

// LegendEntry maps a color to a label.
type LegendEntry struct {
	Color people.Color
	Label string
}

// Chart describes everything needed to draw the age chart.
type Chart struct {
	Title        string
	YLabel       string
	TickRotation float64
	Bars         []Bar
	Ticks        []Tick
	LegendTitle  string
	Legend       []LegendEntry
}

// Legend returns the fixed legend, independent of which genders are shown.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Color: people.ColorBlue, Label: "Male"},
		{Color: people.ColorRed, Label: "Female"},
	}
}

// TickLabel formats the x-axis label of a record.
func TickLabel(r people.Record) string {
	return r.Country + tickSeparator + string(r.Gender)
}

// Build lays out one bar per row of v. Countries are walked in order of first
// appearance and rows within a country keep their order; x advances by
// Spacing from zero with no gap between countries.
func Build(v filter.View) Chart {
	c := Chart{
		Title:        Title,
		YLabel:       YLabel,
		TickRotation: TickRotation,
		Bars:         make([]Bar, 0, v.Len()),
		Ticks:        make([]Tick, 0, v.Len()),
		LegendTitle:  LegendTitle,
		Legend:       Legend(),
	}

	var countries []string
	groups := make(map[string][]people.Record)
	for _, r := range v.Rows {
		if _, ok := groups[r.Country]; !ok {
			countries = append(countries, r.Country)
		}
		groups[r.Country] = append(groups[r.Country], r)
	}

	x := 0.0
	for _, country := range countries {
		for _, r := range groups[country] {
			c.Bars = append(c.Bars, Bar{
				X:      x,
				Width:  BarWidth,
				Height: r.Age,
				Color:  r.Color(),
				Record: r,
			})
			c.Ticks = append(c.Ticks, Tick{Position: x, Label: TickLabel(r)})
			x += Spacing
		}
	}

	return c
}

// MaxHeight returns the tallest finite bar height, or zero.
func (c Chart) MaxHeight() float64 {
	max := 0.0
	for _, b := range c.Bars {
		if b.Height > max {
			max = b.Height
		}
	}
	return max
}
