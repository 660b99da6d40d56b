// Package analyzer talks to the vision model that reads signals off a chart screenshot.
package analyzer

import (
	"context"
	"errors"
	"strings"

	"ChartGrader/internal/model"
)

var (
	// ErrInvalidChart is returned when the model says the image is not a trading chart.
	ErrInvalidChart = errors.New("image is not a readable trading chart")
	// ErrEmptyResponse is returned when the model answers without any choices.
	ErrEmptyResponse = errors.New("empty response from vision model")
	// ErrUnsupportedImage is returned for payloads that are not images.
	ErrUnsupportedImage = errors.New("unsupported image type")
	// ErrImageTooLarge is returned for images above MaxImageBytes.
	ErrImageTooLarge = errors.New("image too large")
)

// MaxImageBytes caps uploads sent to the model.
const MaxImageBytes = 10 << 20

// Analyzer extracts chart signals from an image.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*Report, error)
	Name() string
}

// Report is the model's reading of one chart.
type Report struct {
	IsValidChart         bool     `json:"isValidChart"`
	ActiveSignals        []string `json:"activeSignals"`
	ActiveNoGoConditions []string `json:"activeNoGoConditions"`
	CurrentPrice         *float64 `json:"currentPrice"`
	SupportLevel         *float64 `json:"supportLevel"`
	ResistanceLevel      *float64 `json:"resistanceLevel"`
	StockSymbol          string   `json:"stockSymbol"`
	Confidence           float64  `json:"confidence"`
	Reason               string   `json:"reason,omitempty"`
}

// Input passes the fields the grading engine needs through.
func (r *Report) Input() *model.AnalysisInput {
	return &model.AnalysisInput{
		ActiveSignalIDs: normalizeIDs(r.ActiveSignals),
		ActiveNoGoIDs:   normalizeIDs(r.ActiveNoGoConditions),
		CurrentPrice:    r.CurrentPrice,
		SupportLevel:    r.SupportLevel,
		ResistanceLevel: r.ResistanceLevel,
	}
}

// Symbol returns the upper-cased ticker, without a leading "$".
func (r *Report) Symbol() string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(r.StockSymbol), "$"))
}

// normalizeIDs lower-cases and trims ids; models are not always tidy about case.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
