// Package types contains the shared value types for typocheck.
// This package does not import anything from other typocheck packages
// to avoid circular imports.
package types

// Status is the classification outcome of a single email address.
type Status string

const (
	// StatusValid means the domain is in the reference set verbatim.
	StatusValid Status = "valid"
	// StatusValidWithSuggestion means the domain is close enough to a
	// reference domain that a correction is suggested.
	StatusValidWithSuggestion Status = "valid_with_suggestion"
	// StatusValidUnknownDomain means the address is well-formed but its
	// domain is neither known nor close to any known domain.
	StatusValidUnknownDomain Status = "valid_unknown_domain"
	// StatusMalformed means the address failed the shape check.
	StatusMalformed Status = "malformed"
)

// MatchResult is the outcome of matching one domain against a reference set.
// SuggestedDomain is empty when no reference domain is within the threshold.
// Distance is 0 only for exact matches.
type MatchResult struct {
	IsExactMatch    bool   `json:"isExactMatch"`
	InputDomain     string `json:"inputDomain"`
	SuggestedDomain string `json:"suggestedDomain,omitempty"`
	Distance        int    `json:"distance"`
}

// HasSuggestion reports whether a correction was found.
func (m MatchResult) HasSuggestion() bool {
	return !m.IsExactMatch && m.SuggestedDomain != ""
}

// Verdict summarizes the classification of one email address.
// SuggestedEmail, Confidence and Distance are only populated for
// StatusValidWithSuggestion. Confidence is always serialized since 0 is a
// legitimate score for a suggestion.
type Verdict struct {
	Email          string  `json:"email"`
	Status         Status  `json:"status"`
	SuggestedEmail string  `json:"suggestedEmail,omitempty"`
	Confidence     float64 `json:"confidence"`
	Distance       int     `json:"distance,omitempty"`
}

// NeedsCorrection reports whether the verdict carries a suggested correction.
func (v Verdict) NeedsCorrection() bool {
	return v.Status == StatusValidWithSuggestion
}

// Deliverable reports whether the address is considered usable as-is:
// either a known domain or a well-formed address on an unknown domain.
func (v Verdict) Deliverable() bool {
	return v.Status == StatusValid || v.Status == StatusValidUnknownDomain
}
