package recorder

import (
	"context"
	"time"

	"ChartGrader/internal/model"
)

// Summary aggregates graded charts over a window.
type Summary struct {
	Since       time.Time
	Total       int
	ShouldEnter int
	AvgScore    float64
	ByGrade     map[model.Grade]int
}

// Recorder persists graded charts for history and digests.
type Recorder interface {
	RecordAnalysis(ctx context.Context, rec *model.AnalysisRecord) error
	Summarize(ctx context.Context, since time.Time) (*Summary, error)
	Close() error
}

// gradeRow is one GROUP BY grade row, shared by the SQL recorders.
type gradeRow struct {
	grade    string
	count    int
	entered  int
	scoreSum int
}

func buildSummary(since time.Time, rows []gradeRow) *Summary {
	s := &Summary{Since: since, ByGrade: make(map[model.Grade]int)}
	scoreSum := 0
	for _, r := range rows {
		s.ByGrade[model.Grade(r.grade)] += r.count
		s.Total += r.count
		s.ShouldEnter += r.entered
		scoreSum += r.scoreSum
	}
	if s.Total > 0 {
		s.AvgScore = float64(scoreSum) / float64(s.Total)
	}
	return s
}

// nullable maps an absent price to SQL NULL.
func nullable(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
