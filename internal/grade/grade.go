// Package grade maps a letter grade to the attributes presentation layers show.
package grade

import (
	"fmt"
	"strings"

	"ChartGrader/internal/model"
)

const (
	UnknownLabel = "UNKNOWN"
	UnknownColor = "#6B7280"
	UnknownBadge = "grade-unknown"
)

type attrs struct {
	label string
	color string
	badge string
}

var table = map[model.Grade]attrs{
	model.GradeAPlus: {"TAKE IT!", "#00C853", "grade-a-plus"},
	model.GradeA:     {"STRONG SETUP", "#22C55E", "grade-a"},
	model.GradeBPlus: {"GOOD SETUP", "#84CC16", "grade-b-plus"},
	model.GradeB:     {"DECENT SETUP", "#A3E635", "grade-b"},
	model.GradeCPlus: {"BE CAREFUL", "#FACC15", "grade-c-plus"},
	model.GradeC:     {"WEAK SETUP", "#F59E0B", "grade-c"},
	model.GradeD:     {"AVOID", "#F97316", "grade-d"},
	model.GradeF:     {"SKIP!", "#EF4444", "grade-f"},
}

// Label returns the call-to-action label, e.g. "TAKE IT!" for A+.
func Label(g model.Grade) string {
	if a, ok := table[g]; ok {
		return a.label
	}
	return UnknownLabel
}

// Color returns a hex color for the grade.
func Color(g model.Grade) string {
	if a, ok := table[g]; ok {
		return a.color
	}
	return UnknownColor
}

// BadgeClass returns the style token for the grade badge.
func BadgeClass(g model.Grade) string {
	if a, ok := table[g]; ok {
		return a.badge
	}
	return UnknownBadge
}

// Description returns a one-line context for the grade.
// F names its no-go conditions, the top three grades state their confluence,
// every other case has no description.
func Description(g model.Grade, confluenceCount int, noGo []model.NoGoCondition) (string, bool) {
	switch g {
	case model.GradeF:
		if len(noGo) == 0 {
			return "", false
		}
		names := make([]string, len(noGo))
		for i, c := range noGo {
			names[i] = c.Name
		}
		return "No-go: " + strings.Join(names, ", "), true
	case model.GradeAPlus, model.GradeA, model.GradeBPlus:
		area := "areas"
		if confluenceCount == 1 {
			area = "area"
		}
		return fmt.Sprintf("Confluence across %d %s", confluenceCount, area), true
	}
	return "", false
}

// ShouldEnter reports whether a grade is worth taking.
func ShouldEnter(g model.Grade) bool {
	if _, ok := table[g]; !ok {
		return false
	}
	return g != model.GradeD && g != model.GradeF
}
