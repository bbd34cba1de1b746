// Package typocheck detects likely typos in the domain part of email
// addresses and suggests the closest known domain, without any network
// lookups.
//
// Basic usage:
//
//	verdict, err := typocheck.New().Classify("user@gmial.com")
//	// verdict.Status == typocheck.StatusValidWithSuggestion
//	// verdict.SuggestedEmail == "user@gmail.com"
//
// Custom reference list and threshold:
//
//	c := typocheck.New().
//	    WithDomains([]string{"corp.example", "partner.example"}).
//	    WithThreshold(1)
package typocheck

import "github.com/optimode/typocheck/types"

// Verdict is a re-export from the types package so that consumers
// don't need to import the types package directly.
type Verdict = types.Verdict

// Status is a re-export.
type Status = types.Status

// MatchResult is a re-export.
type MatchResult = types.MatchResult

// Status constants re-exported.
const (
	StatusValid               = types.StatusValid
	StatusValidWithSuggestion = types.StatusValidWithSuggestion
	StatusValidUnknownDomain  = types.StatusValidUnknownDomain
	StatusMalformed           = types.StatusMalformed
)
