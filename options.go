package typocheck

import "github.com/optimode/typocheck/internal/matchcache"

// CacheOptions configures memoization of per-domain match results.
type CacheOptions struct {
	// MaxEntries bounds the number of distinct domains kept. Default: 4096
	MaxEntries int
	// Disabled turns memoization off; every call scans the reference set.
	Disabled bool
}

func defaultCacheOptions() CacheOptions {
	return CacheOptions{
		MaxEntries: matchcache.DefaultMaxEntries,
	}
}

// ConcurrencyOptions configures concurrent processing for ClassifyMany.
type ConcurrencyOptions struct {
	// Workers is the number of concurrent goroutines. Default: 5
	Workers int
}

func defaultConcurrencyOptions() ConcurrencyOptions {
	return ConcurrencyOptions{
		Workers: 5,
	}
}
