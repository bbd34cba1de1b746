// Package ingest reads email addresses from CSV files or plain lists.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// sniffSize is how much of the input is inspected to decide between CSV and
// a plain one-address-per-line list.
const sniffSize = 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrEmptyInput is returned when the input has no bytes at all.
var ErrEmptyInput = errors.New("ingest: input is empty")

// Format describes how the input was interpreted.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatLines Format = "lines"
)

// Batch is the set of addresses extracted from one input.
type Batch struct {
	Emails []string
	Format Format
	// Column is the CSV header used for addresses; empty when the first
	// column was used by default or the input was a plain list.
	Column string
}

// Read extracts addresses from r.
//
// If the first 1024 bytes contain a comma the input is parsed as CSV with a
// header row, and the first column whose header contains "email"
// (case-insensitive) is used, falling back to the first column. Otherwise
// every non-blank line is one address. Values are trimmed and empty values
// skipped.
func Read(r io.Reader) (Batch, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	sample, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return Batch{}, fmt.Errorf("ingest: read input: %w", err)
	}
	if len(sample) == 0 {
		return Batch{}, ErrEmptyInput
	}
	if bytes.HasPrefix(sample, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		sample = sample[len(utf8BOM):]
	}

	if bytes.IndexByte(sample, ',') >= 0 {
		return readCSV(br)
	}
	return readLines(br)
}

func readCSV(r io.Reader) (Batch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	b := Batch{Format: FormatCSV}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return b, nil
	}
	if err != nil {
		return Batch{}, fmt.Errorf("ingest: read CSV header: %w", err)
	}

	col := -1
	for i, h := range header {
		if strings.Contains(strings.ToLower(h), "email") {
			col = i
			b.Column = strings.TrimSpace(h)
			break
		}
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Batch{}, fmt.Errorf("ingest: read CSV: %w", err)
		}

		var email string
		switch {
		case col >= 0 && col < len(row):
			email = row[col]
		case len(row) > 0:
			email = row[0]
		}
		if email = strings.TrimSpace(email); email != "" {
			b.Emails = append(b.Emails, email)
		}
	}
	return b, nil
}

func readLines(r io.Reader) (Batch, error) {
	b := Batch{Format: FormatLines}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if email := strings.TrimSpace(sc.Text()); email != "" {
			b.Emails = append(b.Emails, email)
		}
	}
	if err := sc.Err(); err != nil {
		return Batch{}, fmt.Errorf("ingest: read lines: %w", err)
	}
	return b, nil
}
