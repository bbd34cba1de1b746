// Package report renders classification verdicts for people and for
// downstream tooling.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/optimode/typocheck/types"
)

// Summary holds aggregate counts over a batch of verdicts.
type Summary struct {
	Total         int `json:"total"`
	Valid         int `json:"valid"`
	Suggested     int `json:"suggested"`
	UnknownDomain int `json:"unknownDomain"`
	Malformed     int `json:"malformed"`
}

// Summarize counts verdicts by status.
func Summarize(verdicts []types.Verdict) Summary {
	s := Summary{Total: len(verdicts)}
	for _, v := range verdicts {
		switch v.Status {
		case types.StatusValid:
			s.Valid++
		case types.StatusValidWithSuggestion:
			s.Suggested++
		case types.StatusValidUnknownDomain:
			s.UnknownDomain++
		case types.StatusMalformed:
			s.Malformed++
		}
	}
	return s
}

var csvHeader = []string{"Email", "Valid", "Suggested Correction", "Confidence", "Status"}

// WriteCSV writes one row per verdict. "Valid" is Yes for addresses usable
// as-is (known or unknown domain) and No for malformed ones and ones with a
// suggested correction.
func WriteCSV(w io.Writer, verdicts []types.Verdict) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, v := range verdicts {
		valid := "No"
		if v.Deliverable() {
			valid = "Yes"
		}
		confidence := ""
		if v.NeedsCorrection() {
			confidence = percent(v.Confidence)
		}
		if err := cw.Write([]string{v.Email, valid, v.SuggestedEmail, confidence, string(v.Status)}); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}
	return nil
}

// WriteJSON writes the verdicts as an indented JSON array.
func WriteJSON(w io.Writer, verdicts []types.Verdict) error {
	if verdicts == nil {
		verdicts = []types.Verdict{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(verdicts); err != nil {
		return fmt.Errorf("report: encode JSON: %w", err)
	}
	return nil
}

// PrintSummary prints the totals and every suggested correction.
func PrintSummary(w io.Writer, s Summary, verdicts []types.Verdict) error {
	lines := []string{
		"",
		"Summary:",
		fmt.Sprintf("Total emails processed: %d", s.Total),
		fmt.Sprintf("Valid emails: %d (%s)", s.Valid, share(s.Valid, s.Total)),
		fmt.Sprintf("Emails with suggested corrections: %d (%s)", s.Suggested, share(s.Suggested, s.Total)),
		fmt.Sprintf("Unknown domains: %d (%s)", s.UnknownDomain, share(s.UnknownDomain, s.Total)),
		fmt.Sprintf("Malformed emails: %d (%s)", s.Malformed, share(s.Malformed, s.Total)),
	}

	if s.Suggested > 0 {
		lines = append(lines, "", "Suggested corrections:")
		for _, v := range verdicts {
			if v.NeedsCorrection() {
				lines = append(lines, fmt.Sprintf("  %s → %s (%s confident)", v.Email, v.SuggestedEmail, percent(v.Confidence)))
			}
		}
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

func share(n, total int) string {
	if total == 0 {
		return percent(0)
	}
	return percent(float64(n) / float64(total))
}
