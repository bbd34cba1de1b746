package parse

import (
	"strings"
	"unicode"
)

// Email is the internal representation of an address that went through the
// shape check. The root package receives this from NewEmail.
type Email struct {
	Raw    string // the input, untouched
	Local  string // the part before @
	Domain string // the part after @, verbatim (no case folding)
	Valid  bool   // false if Raw failed the shape check
}

// NewEmail applies a coarse, permissive shape check equivalent to
// ^[^\s@]+@[^\s@]+\.[^\s@]+$ and splits the address.
//
// This is not RFC 5321 validation: consecutive or leading dots in the domain,
// quoted local parts and the like are let through on purpose. The input is
// not trimmed; surrounding whitespace makes it malformed.
func NewEmail(raw string) Email {
	bad := Email{Raw: raw}

	if strings.IndexFunc(raw, isSpace) >= 0 {
		return bad
	}
	if strings.Count(raw, "@") != 1 {
		return bad
	}

	local, domain, _ := strings.Cut(raw, "@")
	if local == "" || !hasInnerDot(domain) {
		return bad
	}

	return Email{Raw: raw, Local: local, Domain: domain, Valid: true}
}

// hasInnerDot reports whether domain contains a '.' that is neither its
// first nor its last character.
func hasInnerDot(domain string) bool {
	if len(domain) < 3 {
		return false
	}
	return strings.Contains(domain[1:len(domain)-1], ".")
}

// isSpace matches the \s class of Unicode-aware regex engines, which also
// counts the information separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
