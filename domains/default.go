package domains

import (
	_ "embed"
	"strings"
)

//go:embed default.txt
var rawDefault string

var defaultSet *Set

func init() {
	s, err := Load(strings.NewReader(rawDefault))
	if err != nil {
		panic("domains: embedded default list: " + err.Error())
	}
	defaultSet = s
}

// Default returns the built-in reference list of major email providers and
// their country-code variants, in declaration order.
// The returned Set is shared and must be treated as read-only.
func Default() *Set {
	return defaultSet
}
