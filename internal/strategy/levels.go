package strategy

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// StopBufferPct is how far below support the stop sits.
	StopBufferPct = 0.01
	// RewardMultiple projects a target when no resistance is usable.
	RewardMultiple = 2.0
)

// tradeLevels holds the derived prices; nil means it could not be derived.
type tradeLevels struct {
	entry  *float64
	stop   *float64
	target *float64
	rr     *float64
}

// validPrice treats missing, non-finite and non-positive prices as absent.
func validPrice(p *float64) (decimal.Decimal, bool) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) || *p <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*p), true
}

// roundPrice keeps cents for normal prices and four places for sub-dollar ones.
func roundPrice(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.NewFromInt(1)) {
		return d.Round(4)
	}
	return d.Round(2)
}

func ptr(d decimal.Decimal) *float64 {
	f, _ := d.Float64()
	return &f
}

// deriveLevels computes entry, stop, target and risk-reward from the analyzer's price levels.
// Entry needs a current price that is still positive once rounded, the stop needs support
// below entry, the target uses resistance that rounds above entry or else projects
// RewardMultiple times the risk.
func deriveLevels(current, support, resistance *float64) tradeLevels {
	var lv tradeLevels

	cur, ok := validPrice(current)
	if !ok {
		return lv
	}
	entry := roundPrice(cur)
	if !entry.IsPositive() {
		return lv
	}
	lv.entry = ptr(entry)

	var stop decimal.Decimal
	hasStop := false
	if sup, ok := validPrice(support); ok && sup.LessThan(entry) {
		stop = roundPrice(sup.Mul(decimal.NewFromFloat(1 - StopBufferPct)))
		if stop.IsPositive() && stop.LessThan(entry) {
			hasStop = true
			lv.stop = ptr(stop)
		}
	}

	var target decimal.Decimal
	hasTarget := false
	if res, ok := validPrice(resistance); ok && roundPrice(res).GreaterThan(entry) {
		target = roundPrice(res)
		hasTarget = true
	} else if hasStop {
		risk := entry.Sub(stop)
		target = roundPrice(entry.Add(risk.Mul(decimal.NewFromFloat(RewardMultiple))))
		hasTarget = true
	}
	if hasTarget {
		lv.target = ptr(target)
	}

	if hasStop && hasTarget && entry.GreaterThan(stop) {
		rr := target.Sub(entry).Div(entry.Sub(stop)).Round(2)
		lv.rr = ptr(rr)
	}
	return lv
}
