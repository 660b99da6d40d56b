// Command grade scores a single analyzer report and prints the result as JSON.
//
//	grade -in report.json
//	echo '{"isValidChart":true,"activeSignals":["macd-green"]}' | grade
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ChartGrader/internal/analyzer"
	"ChartGrader/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	in := flag.String("in", "-", "analyzer report JSON file, - for stdin")
	compact := flag.Bool("compact", false, "print single-line JSON")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("[FATAL] open report: %v", err)
		}
		defer f.Close()
		r = f
	}

	if err := run(r, os.Stdout, !*compact); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

func run(r io.Reader, w io.Writer, indent bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	report, err := analyzer.ParseReport(string(data))
	if err != nil {
		return err
	}
	if !report.IsValidChart {
		return fmt.Errorf("%w: %s", analyzer.ErrInvalidChart, report.Reason)
	}

	res := strategy.AnalyzeChart(report.Input())

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
