package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"ChartGrader/internal/analyzer"
	"ChartGrader/internal/model"
)

func TestRun(t *testing.T) {
	report := `{"isValidChart":true,"activeSignals":["high-buy-vol","macd-green","close-9ema"],` +
		`"activeNoGoConditions":[],"currentPrice":10,"supportLevel":9.5,"resistanceLevel":11}`
	var out bytes.Buffer
	if err := run(strings.NewReader(report), &out, false); err != nil {
		t.Fatalf("run: %v", err)
	}

	var res model.AnalysisResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("output is not a result: %v\n%s", err, out.String())
	}
	if res.Grade != model.GradeBPlus || res.TotalScore != 37 || !res.ShouldEnter {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.StopLoss == nil || *res.StopLoss != 9.41 {
		t.Errorf("stop = %v", res.StopLoss)
	}
}

func TestRun_InvalidChart(t *testing.T) {
	err := run(strings.NewReader(`{"isValidChart":false,"reason":"blank"}`), &bytes.Buffer{}, true)
	if !errors.Is(err, analyzer.ErrInvalidChart) {
		t.Errorf("expected ErrInvalidChart, got %v", err)
	}
}

func TestRun_BadJSON(t *testing.T) {
	if err := run(strings.NewReader("not json"), &bytes.Buffer{}, true); err == nil {
		t.Error("expected parse error")
	}
}
