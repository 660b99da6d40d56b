package strategy

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"ChartGrader/internal/catalog"
	"ChartGrader/internal/grade"
	"ChartGrader/internal/model"
)

// AnalyzeChart grades one chart from the signals the analyzer detected.
// It is a pure function of its input and the static catalog, and never fails:
// unknown ids are dropped and bad prices are treated as absent.
func AnalyzeChart(in *model.AnalysisInput) *model.AnalysisResult {
	if in == nil {
		in = &model.AnalysisInput{}
	}

	// Resolve against the catalog
	bullish, bearish := resolveSignals(in.ActiveSignalIDs)
	noGo, unknownNoGo := resolveNoGo(in.ActiveNoGoIDs)

	// Score and confluence
	s := tally{bullish: len(bullish), bearish: len(bearish)}
	for _, sig := range bullish {
		s.score += sig.SignedPoints()
	}
	for _, sig := range bearish {
		s.score += sig.SignedPoints()
		if sig.Disqualifying {
			s.disqualified = true
		}
	}
	categories := confluenceGroups(bullish)
	s.confluence = len(categories)

	// Any reported no-go overrides the cascade, recognised or not
	var (
		g       model.Grade
		blocked []model.Grade
	)
	if len(noGo) > 0 || unknownNoGo > 0 {
		g = model.GradeF
	} else {
		g, blocked = mapGrade(s)
	}

	// Trade levels
	lv := deriveLevels(in.CurrentPrice, in.SupportLevel, in.ResistanceLevel)

	return &model.AnalysisResult{
		TotalScore:           s.score,
		Grade:                g,
		GradeLabel:           grade.Label(g),
		GradeColor:           grade.Color(g),
		ShouldEnter:          grade.ShouldEnter(g),
		EntryPrice:           lv.entry,
		StopLoss:             lv.stop,
		TakeProfit:           lv.target,
		RiskRewardRatio:      lv.rr,
		ActiveBullishSignals: bullish,
		ActiveBearishSignals: bearish,
		ActiveNoGoConditions: noGo,
		ConfluenceCount:      s.confluence,
		ConfluenceCategories: categories,
		Reasons:              buildReasons(g, s, bullish, bearish, noGo, unknownNoGo, blocked),
	}
}

// resolveSignals splits ids into bullish and bearish catalog entries in catalog order.
// Duplicates collapse and unknown ids are dropped.
func resolveSignals(ids []string) (bullish, bearish []model.Signal) {
	bullish, bearish = []model.Signal{}, []model.Signal{}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		sig, ok := catalog.ResolveSignal(id)
		if !ok {
			log.Printf("[WARN] dropping unknown signal id %q", id)
			continue
		}
		if sig.Category == model.CategoryBearish {
			bearish = append(bearish, sig)
		} else {
			bullish = append(bullish, sig)
		}
	}
	byCatalog := func(list []model.Signal) func(i, j int) bool {
		return func(i, j int) bool { return catalog.SignalOrder(list[i].ID) < catalog.SignalOrder(list[j].ID) }
	}
	sort.Slice(bullish, byCatalog(bullish))
	sort.Slice(bearish, byCatalog(bearish))
	return bullish, bearish
}

// resolveNoGo returns the recognised no-go conditions in catalog order and how many
// distinct non-blank ids were not in the catalog.
func resolveNoGo(ids []string) ([]model.NoGoCondition, int) {
	out := []model.NoGoCondition{}
	unknown := 0
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		c, ok := catalog.ResolveNoGo(id)
		if !ok {
			log.Printf("[WARN] unknown no-go id %q, grading as F", id)
			unknown++
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return catalog.NoGoOrder(out[i].ID) < catalog.NoGoOrder(out[j].ID) })
	return out, unknown
}

// confluenceGroups returns the distinct groups of the bullish signals, first-seen order.
func confluenceGroups(bullish []model.Signal) []model.ConfluenceGroup {
	groups := []model.ConfluenceGroup{}
	seen := map[model.ConfluenceGroup]bool{}
	for _, sig := range bullish {
		if seen[sig.ConfluenceGroup] {
			continue
		}
		seen[sig.ConfluenceGroup] = true
		groups = append(groups, sig.ConfluenceGroup)
	}
	return groups
}

func buildReasons(g model.Grade, s tally, bullish, bearish []model.Signal, noGo []model.NoGoCondition, unknownNoGo int, blocked []model.Grade) []string {
	reasons := make([]string, 0, len(bullish)+len(bearish)+len(noGo)+3)

	if len(bullish) == 0 && len(bearish) == 0 {
		reasons = append(reasons, "No signals detected on the chart")
	}
	for _, sig := range bullish {
		reasons = append(reasons, fmt.Sprintf("%+d %s (%s)", sig.SignedPoints(), sig.Name, sig.ConfluenceGroup))
	}
	for _, sig := range bearish {
		line := fmt.Sprintf("%+d %s (%s)", sig.SignedPoints(), sig.Name, sig.ConfluenceGroup)
		if sig.Disqualifying {
			line += " [disqualifying]"
		}
		reasons = append(reasons, line)
	}
	for _, c := range noGo {
		reasons = append(reasons, fmt.Sprintf("NO-GO %s (%s): %s", c.Name, c.ID, c.Description))
	}

	if unknownNoGo > 0 {
		reasons = append(reasons, fmt.Sprintf("NO-GO %d unrecognised no-go condition(s) reported", unknownNoGo))
	}

	if len(noGo) > 0 || unknownNoGo > 0 {
		reasons = append(reasons, fmt.Sprintf("Grade %s (%s): no-go condition overrides score of %d", g, grade.Label(g), s.score))
		return reasons
	}
	for _, b := range blocked {
		reasons = append(reasons, fmt.Sprintf("Held out of %s by bearish signals", b))
	}
	reasons = append(reasons, fmt.Sprintf("Grade %s (%s): score %d from %d bullish and %d bearish signals across %d confluence areas",
		g, grade.Label(g), s.score, s.bullish, s.bearish, s.confluence))
	return reasons
}
