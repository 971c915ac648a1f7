// Package payroll derives net pay and aggregate figures from gross amounts.
// Pure calculations, no state.
package payroll

import "math"

// Flat additive tax rates applied to every gross salary.
const (
	IncomeTaxRate   = 0.18  // personal income tax
	MilitaryTaxRate = 0.015 // military levy
)

// Summary aggregates a payroll run. Averages are zero for an empty run.
type Summary struct {
	TotalGross   float64
	TotalNet     float64
	AverageGross float64
	AverageNet   float64
}

// Net returns the post-tax amount for a gross salary, rounded to two
// decimal places.
func Net(gross float64) float64 {
	net := gross * (1 - IncomeTaxRate - MilitaryTaxRate)
	return math.Round(net*100) / 100
}

// Summarize totals and averages the given gross amounts. Net figures use the
// per-amount rounded values, so totals match the printed statement lines.
func Summarize(grosses []float64) Summary {
	var s Summary
	for _, gross := range grosses {
		s.TotalGross += gross
		s.TotalNet += Net(gross)
	}
	if n := len(grosses); n > 0 {
		s.AverageGross = s.TotalGross / float64(n)
		s.AverageNet = s.TotalNet / float64(n)
	}
	return s
}
