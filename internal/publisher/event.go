// Package publisher emits graded charts as events for downstream consumers.
package publisher

import (
	"time"

	"ChartGrader/internal/model"
)

const (
	// EventAnalysisGraded is emitted once per graded chart.
	EventAnalysisGraded = "chart.analysis.graded"
	SchemaVersion       = "1.0"
	EventSource         = "chart-grader"
)

// AnalysisEvent wraps a graded chart in the shared event envelope.
type AnalysisEvent struct {
	EventType     string       `json:"event_type"`
	Source        string       `json:"source"`
	SchemaVersion string       `json:"schema_version"`
	Timestamp     time.Time    `json:"timestamp"`
	Data          AnalysisData `json:"data"`
}

// AnalysisData is the event payload.
type AnalysisData struct {
	ID              string      `json:"id"`
	Symbol          string      `json:"symbol"`
	Origin          string      `json:"origin"`
	Confidence      float64     `json:"confidence"`
	Grade           model.Grade `json:"grade"`
	GradeLabel      string      `json:"grade_label"`
	TotalScore      int         `json:"total_score"`
	ShouldEnter     bool        `json:"should_enter"`
	ConfluenceCount int         `json:"confluence_count"`
	EntryPrice      *float64    `json:"entry_price,omitempty"`
	StopLoss        *float64    `json:"stop_loss,omitempty"`
	TakeProfit      *float64    `json:"take_profit,omitempty"`
	RiskRewardRatio *float64    `json:"risk_reward_ratio,omitempty"`
	BullishSignals  []string    `json:"bullish_signals"`
	BearishSignals  []string    `json:"bearish_signals"`
	NoGoConditions  []string    `json:"no_go_conditions"`
	Reasons         []string    `json:"reasons"`
}

// NewAnalysisEvent builds the envelope for a record.
func NewAnalysisEvent(rec *model.AnalysisRecord) *AnalysisEvent {
	res := rec.Result
	data := AnalysisData{
		ID:              rec.ID.String(),
		Symbol:          rec.Symbol,
		Origin:          rec.Source,
		Confidence:      rec.Confidence,
		Grade:           res.Grade,
		GradeLabel:      res.GradeLabel,
		TotalScore:      res.TotalScore,
		ShouldEnter:     res.ShouldEnter,
		ConfluenceCount: res.ConfluenceCount,
		EntryPrice:      res.EntryPrice,
		StopLoss:        res.StopLoss,
		TakeProfit:      res.TakeProfit,
		RiskRewardRatio: res.RiskRewardRatio,
		BullishSignals:  make([]string, 0, len(res.ActiveBullishSignals)),
		BearishSignals:  make([]string, 0, len(res.ActiveBearishSignals)),
		NoGoConditions:  make([]string, 0, len(res.ActiveNoGoConditions)),
		Reasons:         res.Reasons,
	}
	for _, s := range res.ActiveBullishSignals {
		data.BullishSignals = append(data.BullishSignals, s.ID)
	}
	for _, s := range res.ActiveBearishSignals {
		data.BearishSignals = append(data.BearishSignals, s.ID)
	}
	for _, c := range res.ActiveNoGoConditions {
		data.NoGoConditions = append(data.NoGoConditions, c.ID)
	}
	return &AnalysisEvent{
		EventType:     EventAnalysisGraded,
		Source:        EventSource,
		SchemaVersion: SchemaVersion,
		Timestamp:     rec.CreatedAt,
		Data:          data,
	}
}
