package notifier

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"ChartGrader/internal/catalog"
	"ChartGrader/internal/grade"
	"ChartGrader/internal/model"
	"ChartGrader/internal/recorder"
)

func price(p *float64) string {
	if p == nil {
		return "-"
	}
	if *p < 1 {
		return "$" + strconv.FormatFloat(*p, 'f', 4, 64)
	}
	return "$" + strconv.FormatFloat(*p, 'f', 2, 64)
}

func gradeEmoji(g model.Grade) string {
	switch g {
	case model.GradeAPlus, model.GradeA:
		return "🟢"
	case model.GradeBPlus, model.GradeB:
		return "🟡"
	case model.GradeCPlus, model.GradeC:
		return "🟠"
	default:
		return "🔴"
	}
}

// FormatAnalysisReport formats one graded chart into a Telegram message.
func FormatAnalysisReport(rec *model.AnalysisRecord) string {
	res := rec.Result
	var b strings.Builder

	title := "Chart grade"
	if rec.Symbol != "" {
		title = html.EscapeString(rec.Symbol)
	}
	b.WriteString(fmt.Sprintf("%s <b>%s</b> | Grade <b>%s</b> %s\n", gradeEmoji(res.Grade), title, res.Grade, res.GradeLabel))
	if desc, ok := grade.Description(res.Grade, res.ConfluenceCount, res.ActiveNoGoConditions); ok {
		b.WriteString(fmt.Sprintf("<i>%s</i>\n", html.EscapeString(desc)))
	}
	b.WriteString(fmt.Sprintf("\nScore: %d | Confluence: %d", res.TotalScore, res.ConfluenceCount))
	if rec.Confidence > 0 {
		b.WriteString(fmt.Sprintf(" | Confidence: %.0f%%", rec.Confidence*100))
	}
	b.WriteString("\n")

	if len(res.ActiveBullishSignals) > 0 {
		b.WriteString("\n📈 <b>Bullish:</b>\n")
		for _, s := range res.ActiveBullishSignals {
			b.WriteString(fmt.Sprintf("  +%d %s\n", s.Points, html.EscapeString(s.Name)))
		}
	}
	if len(res.ActiveBearishSignals) > 0 {
		b.WriteString("\n📉 <b>Bearish:</b>\n")
		for _, s := range res.ActiveBearishSignals {
			mark := ""
			if s.Disqualifying {
				mark = " ⛔"
			}
			b.WriteString(fmt.Sprintf("  -%d %s%s\n", s.Points, html.EscapeString(s.Name), mark))
		}
	}
	if len(res.ActiveNoGoConditions) > 0 {
		b.WriteString("\n🚫 <b>No-go:</b>\n")
		for _, c := range res.ActiveNoGoConditions {
			b.WriteString(fmt.Sprintf("  %s\n", html.EscapeString(c.Name)))
		}
	}

	if res.EntryPrice != nil {
		b.WriteString(fmt.Sprintf("\n💰 Entry %s | Stop %s | Target %s", price(res.EntryPrice), price(res.StopLoss), price(res.TakeProfit)))
		if res.RiskRewardRatio != nil {
			b.WriteString(fmt.Sprintf(" | R:R %.2f", *res.RiskRewardRatio))
		}
		b.WriteString("\n")
	}

	if res.ShouldEnter {
		b.WriteString("\n✅ Worth taking")
	} else {
		b.WriteString("\n❌ Stay out")
	}
	return b.String()
}

// FormatDigest formats the periodic summary of graded charts.
func FormatDigest(s *recorder.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 <b>Grading digest</b> | since %s\n\n", s.Since.Format("2006-01-02 15:04")))
	if s.Total == 0 {
		b.WriteString("No charts graded in this period.")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Charts graded: %d\n", s.Total))
	b.WriteString(fmt.Sprintf("Worth taking: %d\n", s.ShouldEnter))
	b.WriteString(fmt.Sprintf("Average score: %.1f\n\n", s.AvgScore))
	for _, g := range model.Grades {
		if n := s.ByGrade[g]; n > 0 {
			b.WriteString(fmt.Sprintf("  %s %-2s %s: %d\n", gradeEmoji(g), g, grade.Label(g), n))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatCatalog lists every signal id the bot understands.
func FormatCatalog() string {
	var b strings.Builder
	b.WriteString("📈 <b>Bullish signals</b>\n")
	for _, s := range catalog.BullishSignals() {
		b.WriteString(fmt.Sprintf("  <code>%s</code> +%d %s\n", s.ID, s.Points, html.EscapeString(s.ShortName)))
	}
	b.WriteString("\n📉 <b>Bearish signals</b>\n")
	for _, s := range catalog.BearishSignals() {
		b.WriteString(fmt.Sprintf("  <code>%s</code> -%d %s\n", s.ID, s.Points, html.EscapeString(s.ShortName)))
	}
	b.WriteString("\n🚫 <b>No-go conditions</b>\n")
	for _, c := range catalog.NoGoConditions() {
		b.WriteString(fmt.Sprintf("  <code>%s</code> %s\n", c.ID, html.EscapeString(c.Name)))
	}
	return strings.TrimRight(b.String(), "\n")
}
