package domains_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/typocheck/domains"
)

func TestLoad(t *testing.T) {
	input := `
# providers
gmail.com
  yahoo.com  

# duplicates collapse
gmail.com
outlook.com
`
	s, err := domains.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"gmail.com", "yahoo.com", "outlook.com"}, s.List())
}

func TestLoad_Empty(t *testing.T) {
	s, err := domains.Load(strings.NewReader("# nothing here\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_InvalidEntry(t *testing.T) {
	_, err := domains.Load(strings.NewReader("gmail.com\nnot a domain.com\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domains.ErrInvalidDomain)
	assert.Contains(t, err.Error(), "line 2")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		domain string
		wantOK bool
	}{
		{"gmail.com", true},
		{"outlook.co.cr", true},
		{"y7mail.com", true},
		{"xn--mnchen-3ya.de", true},
		{"localhost", false},
		{"user@gmail.com", false},
		{"gmail .com", false},
		{"-gmail.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			err := domains.Validate(tt.domain)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domains.ErrInvalidDomain)
			}
		})
	}
}
