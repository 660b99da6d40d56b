package recorder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ChartGrader/internal/model"
)

func record(g model.Grade, score int, enter bool, at time.Time) *model.AnalysisRecord {
	price := 10.0
	rec := model.NewAnalysisRecord("test", "ABC", 0.8,
		&model.AnalysisInput{ActiveSignalIDs: []string{"macd-green"}, CurrentPrice: &price},
		&model.AnalysisResult{Grade: g, TotalScore: score, ShouldEnter: enter, EntryPrice: &price})
	rec.CreatedAt = at
	return rec
}

func TestSQLiteRecorder_RecordAndSummarize(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "grader.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	ctx := context.Background()
	now := time.Now()
	recs := []*model.AnalysisRecord{
		record(model.GradeBPlus, 37, true, now),
		record(model.GradeBPlus, 41, true, now),
		record(model.GradeF, 3, false, now),
		record(model.GradeA, 70, true, now.Add(-48*time.Hour)), // outside the window
	}
	for _, rec := range recs {
		if err := r.RecordAnalysis(ctx, rec); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	s, err := r.Summarize(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.Total != 3 || s.ShouldEnter != 2 {
		t.Errorf("expected 3 total / 2 enter, got %d / %d", s.Total, s.ShouldEnter)
	}
	if s.ByGrade[model.GradeBPlus] != 2 || s.ByGrade[model.GradeF] != 1 || s.ByGrade[model.GradeA] != 0 {
		t.Errorf("unexpected grade counts: %v", s.ByGrade)
	}
	if s.AvgScore != 27 {
		t.Errorf("expected avg score 27, got %v", s.AvgScore)
	}
}

func TestSQLiteRecorder_DuplicateID(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "dup.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	rec := record(model.GradeC, 12, true, time.Now())
	if err := r.RecordAnalysis(context.Background(), rec); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := r.RecordAnalysis(context.Background(), rec); err == nil {
		t.Error("expected primary key violation on duplicate id")
	}
}

func TestNoopRecorder(t *testing.T) {
	r := NewNoopRecorder()
	if err := r.RecordAnalysis(context.Background(), record(model.GradeA, 60, true, time.Now())); err != nil {
		t.Fatal(err)
	}
	s, err := r.Summarize(context.Background(), time.Now())
	if err != nil || s.Total != 0 || s.ByGrade == nil {
		t.Errorf("unexpected noop summary: %+v, %v", s, err)
	}
}

func TestPoolConfigFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "9")
	t.Setenv("DB_MAX_CONN_LIFETIME", "1m")
	cfg := PoolConfigFromEnv()
	if cfg.MaxConns != 4 || cfg.MinConns != 4 {
		t.Errorf("min should clamp to max: %+v", cfg)
	}
	if cfg.MaxConnLifetime != time.Minute {
		t.Errorf("lifetime = %v", cfg.MaxConnLifetime)
	}
}

func TestWithSSLMode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"postgres://u:p@host:5432/db", "postgres://u:p@host:5432/db?sslmode=require"},
		{"postgres://u:p@host:5432/db?sslmode=disable", "postgres://u:p@host:5432/db?sslmode=disable"},
	}
	for _, tt := range tests {
		if got := withSSLMode(tt.in); got != tt.want {
			t.Errorf("withSSLMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
