package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// bracketStep is the largest gap allowed between one bracket's upper bound
// and the next bracket's lower bound (published tables step by one cent)
var bracketStep = decimal.RequireFromString("0.01")

// Bracket is one row of a progressive table. A zero Max on the last row means
// the bracket is open-ended.
type Bracket struct {
	Min       decimal.Decimal `yaml:"min" json:"min"`
	Max       decimal.Decimal `yaml:"max" json:"max"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Deduction decimal.Decimal `yaml:"deduction" json:"deduction"`
}

// IsOpen reports whether the bracket has no upper bound
func (b Bracket) IsOpen() bool {
	return b.Max.IsZero()
}

// Contains reports whether base falls inside the bracket
func (b Bracket) Contains(base decimal.Decimal) bool {
	if base.LessThan(b.Min) {
		return false
	}
	return b.IsOpen() || base.LessThanOrEqual(b.Max)
}

// BracketTable is an ordered progressive table starting at zero
type BracketTable []Bracket

// Validate checks that the table starts at zero, is contiguous and
// non-overlapping, and that only the last bracket is open-ended.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	if !t[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at 0, got %s", t[0].Min.String())
	}

	for i, b := range t {
		if b.Rate.IsNegative() {
			return fmt.Errorf("bracket %d has negative rate", i)
		}
		if b.Deduction.IsNegative() {
			return fmt.Errorf("bracket %d has negative deduction", i)
		}
		if b.IsOpen() && i != len(t)-1 {
			return fmt.Errorf("bracket %d is open-ended but is not the last bracket", i)
		}
		if !b.IsOpen() && b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d upper bound %s must exceed lower bound %s", i, b.Max.String(), b.Min.String())
		}
		if i == 0 {
			continue
		}

		prev := t[i-1]
		gap := b.Min.Sub(prev.Max)
		if gap.IsNegative() {
			return fmt.Errorf("bracket %d overlaps bracket %d", i, i-1)
		}
		if gap.GreaterThan(bracketStep) {
			return fmt.Errorf("gap between bracket %d and %d", i-1, i)
		}
		if b.Deduction.LessThan(prev.Deduction) {
			return fmt.Errorf("bracket %d deduction decreases", i)
		}
	}
	return nil
}

// Find returns the bracket containing base and its index. Bases above a closed
// table return the last bracket; negative bases return the first.
func (t BracketTable) Find(base decimal.Decimal) (Bracket, int) {
	for i, b := range t {
		if b.IsOpen() || base.LessThanOrEqual(b.Max) {
			return b, i
		}
	}
	return t[len(t)-1], len(t) - 1
}

// Ceiling returns the upper bound of the last bracket and whether the table is capped
func (t BracketTable) Ceiling() (decimal.Decimal, bool) {
	if len(t) == 0 {
		return decimal.Zero, false
	}
	last := t[len(t)-1]
	if last.IsOpen() {
		return decimal.Zero, false
	}
	return last.Max, true
}
