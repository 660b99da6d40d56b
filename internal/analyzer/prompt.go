package analyzer

import (
	"fmt"
	"strings"

	"ChartGrader/internal/catalog"
	"ChartGrader/internal/model"
)

// BuildPrompt renders the system prompt listing every id the model may return.
func BuildPrompt() string {
	var b strings.Builder

	b.WriteString("You are a stock chart analyst. You receive one screenshot of a trading chart.\n")
	b.WriteString("Identify which of the listed signals and no-go conditions are clearly visible.\n")
	b.WriteString("Use ONLY the ids below. Do not invent ids. Leave out anything you are unsure of.\n\n")

	b.WriteString("BULLISH SIGNALS:\n")
	writeSignals(&b, catalog.BullishSignals())
	b.WriteString("\nBEARISH SIGNALS:\n")
	writeSignals(&b, catalog.BearishSignals())

	b.WriteString("\nNO-GO CONDITIONS:\n")
	for _, c := range catalog.NoGoConditions() {
		b.WriteString(fmt.Sprintf("- %s: %s. %s\n", c.ID, c.Name, c.Description))
	}

	b.WriteString(`
Answer with a single JSON object and nothing else:
{
  "isValidChart": true,
  "activeSignals": ["id", ...],
  "activeNoGoConditions": ["id", ...],
  "currentPrice": number or null,
  "supportLevel": number or null,
  "resistanceLevel": number or null,
  "stockSymbol": "TICKER" or "",
  "confidence": number between 0 and 1,
  "reason": "short note, required when isValidChart is false"
}
If the image is not a price chart, set isValidChart to false and leave the lists empty.
`)
	return b.String()
}

func writeSignals(b *strings.Builder, signals []model.Signal) {
	for _, s := range signals {
		b.WriteString(fmt.Sprintf("- %s: %s. %s\n", s.ID, s.Name, s.Definition))
	}
}
