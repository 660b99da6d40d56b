package scheduler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"math"
	"strconv"
	"strings"

	"ChartGrader/internal/analyzer"
	"ChartGrader/internal/model"
	"ChartGrader/internal/notifier"
	"ChartGrader/internal/strategy"
)

const (
	SourceManual = "manual"

	helpText = "Send a chart screenshot to have it graded, or use:\n" +
		"• /grade &lt;signal ids...&gt; [nogo=a,b] [price=] [support=] [resistance=] [symbol=]\n" +
		"• /signals - list signal ids\n" +
		"• /digest - summary of the last 24h"
	gradeUsage = "Usage: /grade high-buy-vol macd-green close-9ema price=10 support=9.5 resistance=11"
)

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	// Group chats append the bot name: /grade@ChartGraderBot
	name := strings.ToLower(strings.SplitN(fields[0], "@", 2)[0])

	switch name {
	case "/grade":
		in, symbol, err := parseGradeArgs(fields[1:])
		if err != nil {
			return fmt.Sprintf("❌ %s\n%s", html.EscapeString(err.Error()), gradeUsage)
		}
		rec := s.grade(s.Ctx, SourceManual, symbol, 0, in)
		return notifier.FormatAnalysisReport(rec)
	case "/signals":
		return notifier.FormatCatalog()
	case "/digest":
		msg, err := s.digest()
		if err != nil {
			log.Printf("[ERROR] digest: %v", err)
			return "❌ Digest is unavailable right now."
		}
		return msg
	default:
		return helpText
	}
}

// parseGradeArgs turns "/grade" arguments into engine input.
// Bare words are signal ids; key=value pairs set no-go ids, prices and the symbol.
func parseGradeArgs(args []string) (*model.AnalysisInput, string, error) {
	in := &model.AnalysisInput{ActiveSignalIDs: []string{}, ActiveNoGoIDs: []string{}}
	symbol := ""

	for _, arg := range args {
		key, value, isPair := strings.Cut(arg, "=")
		if !isPair {
			for _, id := range strings.Split(arg, ",") {
				if id = strings.ToLower(strings.TrimSpace(id)); id != "" {
					in.ActiveSignalIDs = append(in.ActiveSignalIDs, id)
				}
			}
			continue
		}

		switch strings.ToLower(key) {
		case "nogo", "no-go":
			for _, id := range strings.Split(value, ",") {
				if id = strings.ToLower(strings.TrimSpace(id)); id != "" {
					in.ActiveNoGoIDs = append(in.ActiveNoGoIDs, id)
				}
			}
		case "price", "support", "resistance":
			v, err := strconv.ParseFloat(strings.TrimPrefix(value, "$"), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, "", fmt.Errorf("invalid %s %q", key, value)
			}
			switch strings.ToLower(key) {
			case "price":
				in.CurrentPrice = &v
			case "support":
				in.SupportLevel = &v
			default:
				in.ResistanceLevel = &v
			}
		case "symbol":
			symbol = strings.ToUpper(strings.TrimPrefix(value, "$"))
		default:
			return nil, "", fmt.Errorf("unknown option %q", key)
		}
	}

	if len(in.ActiveSignalIDs) == 0 && len(in.ActiveNoGoIDs) == 0 {
		return nil, "", errors.New("no signal ids given")
	}
	return in, symbol, nil
}

// HandlePhoto runs a chart image through the analyzer and the grading engine.
func (s *Scheduler) HandlePhoto(ctx context.Context, image []byte) string {
	if s.Analyzer == nil {
		return "Chart analysis is not configured. Use /grade with signal ids instead."
	}

	report, err := s.Analyzer.Analyze(ctx, image, "")
	switch {
	case errors.Is(err, analyzer.ErrInvalidChart):
		reason := ""
		if report != nil && report.Reason != "" {
			reason = "\n" + html.EscapeString(report.Reason)
		}
		return "🤔 That does not look like a trading chart." + reason
	case errors.Is(err, analyzer.ErrUnsupportedImage), errors.Is(err, analyzer.ErrImageTooLarge):
		return fmt.Sprintf("❌ %s", html.EscapeString(err.Error()))
	case err != nil:
		log.Printf("[ERROR] analyze chart with %s: %v", s.Analyzer.Name(), err)
		return "❌ Chart analysis failed, please try again later."
	}

	if report.Confidence < s.MinConfidence {
		log.Printf("[WARN] low confidence reading (%.2f < %.2f), not grading", report.Confidence, s.MinConfidence)
		return fmt.Sprintf("🤔 Could not read this chart confidently (%.0f%%). Try a clearer screenshot.", report.Confidence*100)
	}

	rec := s.grade(ctx, s.Analyzer.Name(), report.Symbol(), report.Confidence, report.Input())
	return notifier.FormatAnalysisReport(rec)
}

// grade scores the input, then records and publishes the result. Storage and
// publishing failures are logged; the caller still gets the grade.
func (s *Scheduler) grade(ctx context.Context, source, symbol string, confidence float64, in *model.AnalysisInput) *model.AnalysisRecord {
	res := strategy.AnalyzeChart(in)
	rec := model.NewAnalysisRecord(source, symbol, confidence, in, res)
	log.Printf("[INFO] graded %s: %s (score %d, source %s)", rec.ID, res.Grade, res.TotalScore, source)

	if err := s.Recorder.RecordAnalysis(ctx, rec); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}
	if err := s.Publisher.PublishAnalysis(ctx, rec); err != nil {
		log.Printf("[ERROR] publish analysis: %v", err)
	}
	return rec
}
