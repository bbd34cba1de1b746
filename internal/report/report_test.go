package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/typocheck/internal/report"
	"github.com/optimode/typocheck/types"
)

var sample = []types.Verdict{
	{Email: "a@gmail.com", Status: types.StatusValid},
	{Email: "b@gmial.com", Status: types.StatusValidWithSuggestion, SuggestedEmail: "b@gmail.com", Confidence: 7.0 / 9.0, Distance: 2},
	{Email: "c@example.com", Status: types.StatusValidUnknownDomain},
	{Email: "nope", Status: types.StatusMalformed},
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(sample)
	assert.Equal(t, report.Summary{Total: 4, Valid: 1, Suggested: 1, UnknownDomain: 1, Malformed: 1}, s)
	assert.Equal(t, report.Summary{}, report.Summarize(nil))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sample))

	want := strings.Join([]string{
		"Email,Valid,Suggested Correction,Confidence,Status",
		"a@gmail.com,Yes,,,valid",
		"b@gmial.com,No,b@gmail.com,77.8%,valid_with_suggestion",
		"c@example.com,Yes,,,valid_unknown_domain",
		"nope,No,,,malformed",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, sample))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "valid", got[0]["status"])
	assert.NotContains(t, got[0], "suggestedEmail")
	assert.Equal(t, "b@gmail.com", got[1]["suggestedEmail"])
	assert.EqualValues(t, 2, got[1]["distance"])
	assert.InDelta(t, 7.0/9.0, got[1]["confidence"], 1e-9)
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.PrintSummary(&buf, report.Summarize(sample), sample))

	out := buf.String()
	assert.Contains(t, out, "Total emails processed: 4")
	assert.Contains(t, out, "Valid emails: 1 (25.0%)")
	assert.Contains(t, out, "Emails with suggested corrections: 1 (25.0%)")
	assert.Contains(t, out, "Unknown domains: 1 (25.0%)")
	assert.Contains(t, out, "Malformed emails: 1 (25.0%)")
	assert.Contains(t, out, "  b@gmial.com → b@gmail.com (77.8% confident)")
}

func TestPrintSummary_NoEmails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.PrintSummary(&buf, report.Summary{}, nil))

	out := buf.String()
	assert.Contains(t, out, "Total emails processed: 0")
	assert.Contains(t, out, "Valid emails: 0 (0.0%)")
	assert.NotContains(t, out, "Suggested corrections:")
}
