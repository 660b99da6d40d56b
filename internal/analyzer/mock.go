package analyzer

import (
	"context"
	"fmt"
)

// MockAnalyzer returns a fixed report, for development and tests.
type MockAnalyzer struct {
	Report *Report
	Err    error
	Calls  int
}

func (m *MockAnalyzer) Name() string { return "mock" }

func (m *MockAnalyzer) Analyze(_ context.Context, image []byte, _ string) (*Report, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}
	if m.Report != nil {
		cp := *m.Report
		if !cp.IsValidChart {
			return &cp, fmt.Errorf("%w: %s", ErrInvalidChart, cp.Reason)
		}
		return &cp, nil
	}
	price, support, resistance := 10.0, 9.5, 11.0
	return &Report{
		IsValidChart:    true,
		ActiveSignals:   []string{"high-buy-vol", "macd-green", "close-9ema"},
		CurrentPrice:    &price,
		SupportLevel:    &support,
		ResistanceLevel: &resistance,
		StockSymbol:     "MOCK",
		Confidence:      0.9,
	}, nil
}
