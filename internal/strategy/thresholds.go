package strategy

import (
	"math"

	"ChartGrader/internal/model"
)

// NoLimit disables the bearish-count check of a Threshold.
const NoLimit = -1

// Threshold is the full set of criteria a setup must meet to earn Grade.
type Threshold struct {
	Grade         model.Grade
	MinScore      int
	MinBullish    int
	MinConfluence int
	// MaxBearish caps active bearish signals; NoLimit turns the cap off.
	MaxBearish int
	// BlockDisqualifying refuses the grade when any disqualifying bearish signal is active.
	BlockDisqualifying bool
}

// tally is what the cascade is evaluated against.
type tally struct {
	score        int
	bullish      int
	bearish      int
	confluence   int
	disqualified bool
}

// meetsCounts checks score, bullish count and confluence only.
func (t Threshold) meetsCounts(s tally) bool {
	return s.score >= t.MinScore && s.bullish >= t.MinBullish && s.confluence >= t.MinConfluence
}

// bearishBlocked reports whether bearish signals keep a setup out of this grade.
func (t Threshold) bearishBlocked(s tally) bool {
	if t.BlockDisqualifying && s.disqualified {
		return true
	}
	return t.MaxBearish != NoLimit && s.bearish > t.MaxBearish
}

// thresholds is evaluated top-down, first match wins.
var thresholds = []Threshold{
	{Grade: model.GradeAPlus, MinScore: 75, MinBullish: 5, MinConfluence: 4, MaxBearish: 0, BlockDisqualifying: true},
	{Grade: model.GradeA, MinScore: 60, MinBullish: 4, MinConfluence: 3, MaxBearish: 1, BlockDisqualifying: true},
	{Grade: model.GradeBPlus, MinScore: 35, MinBullish: 3, MinConfluence: 3, MaxBearish: NoLimit},
	{Grade: model.GradeB, MinScore: 28, MaxBearish: NoLimit},
	{Grade: model.GradeCPlus, MinScore: 20, MaxBearish: NoLimit},
	{Grade: model.GradeC, MinScore: 12, MaxBearish: NoLimit},
	{Grade: model.GradeD, MinScore: 5, MaxBearish: NoLimit},
}

// defaultThreshold applies when nothing above matches.
var defaultThreshold = Threshold{Grade: model.GradeF, MinScore: math.MinInt, MaxBearish: NoLimit}

// Thresholds returns the grade cascade, best grade first, ending with F.
func Thresholds() []Threshold {
	return append(append([]Threshold(nil), thresholds...), defaultThreshold)
}

// ThresholdsFor returns the criteria for a single grade.
func ThresholdsFor(g model.Grade) (Threshold, bool) {
	for _, t := range thresholds {
		if t.Grade == g {
			return t, true
		}
	}
	if g == defaultThreshold.Grade {
		return defaultThreshold, true
	}
	return Threshold{}, false
}

// mapGrade walks the cascade and returns the first grade whose criteria hold,
// along with any better grades that were reachable on counts but blocked by bearish signals.
func mapGrade(s tally) (model.Grade, []model.Grade) {
	var blocked []model.Grade
	for _, t := range thresholds {
		if !t.meetsCounts(s) {
			continue
		}
		if t.bearishBlocked(s) {
			blocked = append(blocked, t.Grade)
			continue
		}
		return t.Grade, blocked
	}
	return defaultThreshold.Grade, blocked
}
