// Package catalog holds the fixed registry of chart signals and no-go conditions.
// Everything here is built once at init and only read afterwards.
package catalog

import (
	"fmt"

	"ChartGrader/internal/model"
)

var (
	signalIndex = map[string]int{} // id -> position in allSignals
	noGoIndex   = map[string]int{}
	allSignals  []model.Signal
)

func init() {
	for i := range bullishSignals {
		bullishSignals[i].Category = model.CategoryBullish
	}
	for i := range bearishSignals {
		bearishSignals[i].Category = model.CategoryBearish
	}
	allSignals = append(append(allSignals, bullishSignals...), bearishSignals...)

	for i, s := range allSignals {
		if _, dup := signalIndex[s.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate signal id %q", s.ID))
		}
		if s.Points <= 0 {
			panic(fmt.Sprintf("catalog: signal %q must carry a positive point magnitude", s.ID))
		}
		signalIndex[s.ID] = i
	}
	for i, c := range noGoConditions {
		if _, dup := noGoIndex[c.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate no-go id %q", c.ID))
		}
		noGoIndex[c.ID] = i
	}
}

// BullishSignals returns a copy of the bullish signals in catalog order.
func BullishSignals() []model.Signal {
	return append([]model.Signal(nil), bullishSignals...)
}

// BearishSignals returns a copy of the bearish signals in catalog order.
func BearishSignals() []model.Signal {
	return append([]model.Signal(nil), bearishSignals...)
}

// NoGoConditions returns a copy of the no-go conditions in catalog order.
func NoGoConditions() []model.NoGoCondition {
	return append([]model.NoGoCondition(nil), noGoConditions...)
}

// ResolveSignal looks up a signal by id.
func ResolveSignal(id string) (model.Signal, bool) {
	i, ok := signalIndex[id]
	if !ok {
		return model.Signal{}, false
	}
	return allSignals[i], true
}

// ResolveNoGo looks up a no-go condition by id.
func ResolveNoGo(id string) (model.NoGoCondition, bool) {
	i, ok := noGoIndex[id]
	if !ok {
		return model.NoGoCondition{}, false
	}
	return noGoConditions[i], true
}

// SignalOrder is the position of id across bullish then bearish signals, or -1.
func SignalOrder(id string) int {
	if i, ok := signalIndex[id]; ok {
		return i
	}
	return -1
}

// NoGoOrder is the position of id in the no-go list, or -1.
func NoGoOrder(id string) int {
	if i, ok := noGoIndex[id]; ok {
		return i
	}
	return -1
}
