// Package dashboard recomputes the filtered view and chart for a selection.
package dashboard

import (
	"github.com/f3rmion/agedash/internal/filter"
	"github.com/f3rmion/agedash/internal/layout"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of one render pass.
type Result struct {
	Selection filter.Selection
	View      filter.View
	Chart     layout.Chart
}

// DefaultSelection selects every country present in t and both genders.
func DefaultSelection(t people.Table) filter.Selection {
	genders := make([]people.Gender, len(people.Genders))
	copy(genders, people.Genders)
	return filter.Selection{
		Countries: t.Countries(),
		Genders:   genders,
	}
}

// Render filters t by sel and lays out the chart. It has no side effects
// besides logging, so it can be called on every selection change.
func Render(t people.Table, sel filter.Selection) Result {
	v := filter.Apply(t, sel)
	c := layout.Build(v)

	logrus.WithFields(logrus.Fields{
		"countries": len(sel.Countries),
		"genders":   len(sel.Genders),
		"rows":      v.Len(),
		"bars":      len(c.Bars),
	}).Debug("rendered dashboard")

	return Result{Selection: sel, View: v, Chart: c}
}
