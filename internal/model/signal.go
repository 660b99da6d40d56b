package model

// Category tells whether a signal argues for or against the trade.
type Category string

const (
	CategoryBullish Category = "bullish"
	CategoryBearish Category = "bearish"
)

// ConfluenceGroup is the analytical family a signal belongs to.
// Confluence counts distinct groups, not signals.
type ConfluenceGroup string

const (
	GroupVolume    ConfluenceGroup = "volume"
	GroupMomentum  ConfluenceGroup = "momentum"
	GroupTrend     ConfluenceGroup = "trend"
	GroupStructure ConfluenceGroup = "structure"
	GroupPattern   ConfluenceGroup = "pattern"
	GroupCandle    ConfluenceGroup = "candle"
)

// Signal is a single detectable chart feature.
// Points is always a positive magnitude; bearish signals are subtracted when scoring.
type Signal struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ShortName       string          `json:"shortName"`
	Definition      string          `json:"definition"`
	Category        Category        `json:"category"`
	Points          int             `json:"points"`
	ConfluenceGroup ConfluenceGroup `json:"confluenceGroup"`
	// Disqualifying bearish signals block promotion to the A tiers.
	Disqualifying bool `json:"disqualifying,omitempty"`
}

// SignedPoints returns the signal's contribution to the total score.
func (s Signal) SignedPoints() int {
	if s.Category == CategoryBearish {
		return -s.Points
	}
	return s.Points
}

// NoGoCondition forces the worst grade when present. It carries no points.
type NoGoCondition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
