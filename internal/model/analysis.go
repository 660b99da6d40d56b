package model

import (
	"time"

	"github.com/google/uuid"
)

// Grade is the letter summary of a setup, best first.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Grades lists every grade from best to worst.
var Grades = []Grade{GradeAPlus, GradeA, GradeBPlus, GradeB, GradeCPlus, GradeC, GradeD, GradeF}

// Rank returns 0 for the best grade and increases as grades get worse.
// Unknown grades rank below F.
func (g Grade) Rank() int {
	for i, v := range Grades {
		if v == g {
			return i
		}
	}
	return len(Grades)
}

// AnalysisInput is what the vision analyzer detected on one chart.
type AnalysisInput struct {
	ActiveSignalIDs []string `json:"activeSignalIds"`
	ActiveNoGoIDs   []string `json:"activeNoGoIds"`
	CurrentPrice    *float64 `json:"currentPrice,omitempty"`
	SupportLevel    *float64 `json:"supportLevel,omitempty"`
	ResistanceLevel *float64 `json:"resistanceLevel,omitempty"`
}

// AnalysisResult is the output of the grading engine.
type AnalysisResult struct {
	TotalScore           int               `json:"totalScore"`
	Grade                Grade             `json:"grade"`
	GradeLabel           string            `json:"gradeLabel"`
	GradeColor           string            `json:"gradeColor"`
	ShouldEnter          bool              `json:"shouldEnter"`
	EntryPrice           *float64          `json:"entryPrice,omitempty"`
	StopLoss             *float64          `json:"stopLoss,omitempty"`
	TakeProfit           *float64          `json:"takeProfit,omitempty"`
	RiskRewardRatio      *float64          `json:"riskRewardRatio,omitempty"`
	ActiveBullishSignals []Signal          `json:"activeBullishSignals"`
	ActiveBearishSignals []Signal          `json:"activeBearishSignals"`
	ActiveNoGoConditions []NoGoCondition   `json:"activeNoGoConditions"`
	ConfluenceCount      int               `json:"confluenceCount"`
	ConfluenceCategories []ConfluenceGroup `json:"confluenceCategories"`
	Reasons              []string          `json:"reasons"`
}

// AnalysisRecord is one graded chart as handed to persistence and event consumers.
type AnalysisRecord struct {
	ID         uuid.UUID       `json:"id"`
	CreatedAt  time.Time       `json:"createdAt"`
	Symbol     string          `json:"symbol,omitempty"`
	Confidence float64         `json:"confidence"`
	Source     string          `json:"source"`
	Input      *AnalysisInput  `json:"input"`
	Result     *AnalysisResult `json:"result"`
}

// NewAnalysisRecord stamps a fresh record for a graded chart.
func NewAnalysisRecord(source, symbol string, confidence float64, in *AnalysisInput, res *AnalysisResult) *AnalysisRecord {
	return &AnalysisRecord{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Symbol:     symbol,
		Confidence: confidence,
		Source:     source,
		Input:      in,
		Result:     res,
	}
}
