package grade

import (
	"testing"

	"ChartGrader/internal/model"
)

func TestLabel_AllGrades(t *testing.T) {
	tests := []struct {
		grade model.Grade
		label string
	}{
		{model.GradeAPlus, "TAKE IT!"},
		{model.GradeA, "STRONG SETUP"},
		{model.GradeBPlus, "GOOD SETUP"},
		{model.GradeB, "DECENT SETUP"},
		{model.GradeCPlus, "BE CAREFUL"},
		{model.GradeC, "WEAK SETUP"},
		{model.GradeD, "AVOID"},
		{model.GradeF, "SKIP!"},
		{model.Grade("Z"), UnknownLabel},
		{model.Grade(""), UnknownLabel},
	}
	for _, tt := range tests {
		if got := Label(tt.grade); got != tt.label {
			t.Errorf("Label(%q) = %q, want %q", tt.grade, got, tt.label)
		}
	}
}

func TestColorAndBadge_Fallback(t *testing.T) {
	if Color("E") != UnknownColor {
		t.Errorf("unknown grade color = %q", Color("E"))
	}
	if BadgeClass("E") != UnknownBadge {
		t.Errorf("unknown grade badge = %q", BadgeClass("E"))
	}
	seen := map[string]bool{}
	for _, g := range model.Grades {
		c := Color(g)
		if c == UnknownColor || seen[c] {
			t.Errorf("grade %s: color %q should be known and distinct", g, c)
		}
		seen[c] = true
		if BadgeClass(g) == UnknownBadge {
			t.Errorf("grade %s has no badge class", g)
		}
	}
}

func TestDescription(t *testing.T) {
	noGo := []model.NoGoCondition{{ID: "extended-move", Name: "Extended Move"}, {ID: "low-liquidity", Name: "Low Liquidity"}}

	tests := []struct {
		name  string
		grade model.Grade
		count int
		noGo  []model.NoGoCondition
		want  string
		ok    bool
	}{
		{"F with no-go", model.GradeF, 3, noGo, "No-go: Extended Move, Low Liquidity", true},
		{"F without no-go", model.GradeF, 0, nil, "", false},
		{"A+ confluence", model.GradeAPlus, 4, nil, "Confluence across 4 areas", true},
		{"B+ single area", model.GradeBPlus, 1, nil, "Confluence across 1 area", true},
		{"middle grade", model.GradeB, 3, nil, "", false},
		{"D", model.GradeD, 1, nil, "", false},
		{"unknown", model.Grade("Q"), 2, noGo, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Description(tt.grade, tt.count, tt.noGo)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Description() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestShouldEnter(t *testing.T) {
	for _, g := range model.Grades {
		want := g != model.GradeD && g != model.GradeF
		if ShouldEnter(g) != want {
			t.Errorf("ShouldEnter(%s) = %v, want %v", g, !want, want)
		}
	}
	if ShouldEnter("X") {
		t.Error("unknown grades should never enter")
	}
}
