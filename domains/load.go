package domains

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidDomain is returned by Validate and Load for entries that are not
// usable host names.
var ErrInvalidDomain = errors.New("domains: invalid domain")

// Load reads a reference list, one domain per line. Blank lines and lines
// starting with '#' are ignored. Order is preserved and duplicates collapse
// onto their first occurrence.
func Load(r io.Reader) (*Set, error) {
	var list []string

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := Validate(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("domains: read list: %w", err)
	}

	return New(list), nil
}

// Validate checks that domain is a plausible host name with at least two
// labels. The IDNA lookup profile is used purely as a check; callers keep
// their original string.
func Validate(domain string) error {
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("%w %q: needs at least two labels", ErrInvalidDomain, domain)
	}
	if _, err := idna.Lookup.ToASCII(domain); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidDomain, domain, err)
	}
	return nil
}
