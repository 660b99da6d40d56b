package recorder

import (
	"context"
	"time"

	"ChartGrader/internal/model"
)

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ context.Context, _ *model.AnalysisRecord) error { return nil }
func (n *NoopRecorder) Summarize(_ context.Context, since time.Time) (*Summary, error) {
	return buildSummary(since, nil), nil
}
func (n *NoopRecorder) Close() error { return nil }
