package typocheck

import "errors"

// ErrInvalidThreshold is returned by Classify and ClassifyMany when
// WithThreshold was given a negative distance.
var ErrInvalidThreshold = errors.New("typocheck: threshold must not be negative")
