package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spacesedan/interviewlens/internal/models"
)

func writeJSON(w io.Writer, report *models.AnalysisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeText(w io.Writer, report *models.AnalysisReport, vocabulary []string) error {
	var b strings.Builder

	b.WriteString("Analysis Results\n\n")
	fmt.Fprintf(&b, "Overall Sentiment:  %s (%.2f)\n", report.Sentiment.Label, report.Sentiment.Score)
	fmt.Fprintf(&b, "Total Filler Words: %d\n", report.TotalFillers)
	fmt.Fprintf(&b, "Top Keyword:        %s\n\n", report.TopKeyword())

	b.WriteString("Filler Word Frequency\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, term := range vocabulary {
		fmt.Fprintf(tw, "  %s\t%d\n", term, report.FillerCounts[term])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	b.WriteString("\nTop Keywords\n")
	if len(report.Keywords) == 0 {
		b.WriteString("  No keywords extracted.\n")
	} else {
		tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, kw := range report.Keywords {
			fmt.Fprintf(tw, "  %s\t%d\n", kw.Term, kw.Frequency)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(&b, "\nFeedback Summary\n  %s\n", report.Feedback)

	_, err := io.WriteString(w, b.String())
	return err
}
