package typocheck

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/optimode/typocheck/domains"
	"github.com/optimode/typocheck/internal/matchcache"
	"github.com/optimode/typocheck/internal/parse"
	"github.com/optimode/typocheck/match"
	"github.com/optimode/typocheck/types"
)

// Classifier is the main fluent builder struct.
// Instantiate with the New() function and finish configuring it before
// sharing it between goroutines; after that it is safe for concurrent use.
type Classifier struct {
	matcher   *match.Matcher
	threshold int
	cacheOpts CacheOptions
	cache     *matchcache.Cache
	logger    *slog.Logger
	err       error // configuration error, returned on Classify()
}

// New creates a Classifier over the built-in reference list with the
// default threshold of 2.
func New() *Classifier {
	c := &Classifier{
		matcher:   match.New(nil),
		threshold: match.DefaultThreshold,
		cacheOpts: defaultCacheOptions(),
		logger:    slog.New(slog.DiscardHandler),
	}
	c.resetCache()
	return c
}

// WithDomains replaces the reference list wholesale. The order of list is
// the tie-break order. An empty list is allowed: nothing is ever an exact
// match and nothing is ever suggested.
func (c *Classifier) WithDomains(list []string) *Classifier {
	return c.WithDomainSet(domains.New(list))
}

// WithDomainSet is like WithDomains for an already built set.
// A nil set restores the built-in list.
func (c *Classifier) WithDomainSet(set *domains.Set) *Classifier {
	c.matcher = match.New(set)
	c.resetCache()
	return c
}

// WithThreshold sets the largest edit distance at which a correction is
// suggested. A negative value is a configuration error.
func (c *Classifier) WithThreshold(threshold int) *Classifier {
	if threshold < 0 {
		c.err = ErrInvalidThreshold
		return c
	}
	c.threshold = threshold
	c.resetCache()
	return c
}

// WithCache overrides the default memoization settings.
func (c *Classifier) WithCache(opts CacheOptions) *Classifier {
	c.cacheOpts = opts
	c.resetCache()
	return c
}

// WithLogger sets a logger for batch diagnostics. Classify itself never logs.
func (c *Classifier) WithLogger(l *slog.Logger) *Classifier {
	if l != nil {
		c.logger = l
	}
	return c
}

// Threshold returns the configured suggestion threshold.
func (c *Classifier) Threshold() int {
	return c.threshold
}

// Domains returns the reference set in use.
func (c *Classifier) Domains() *domains.Set {
	return c.matcher.Domains()
}

// resetCache drops memoized results; they are only valid for one
// matcher/threshold pair.
func (c *Classifier) resetCache() {
	c.cache = nil
	if c.cacheOpts.Disabled {
		return
	}
	m, threshold := c.matcher, c.threshold
	c.cache = matchcache.New(c.cacheOpts.MaxEntries, func(domain string) types.MatchResult {
		return m.Classify(domain, threshold)
	})
}

// Classify classifies a single email address.
// Malformed input yields StatusMalformed, not an error; the error is only
// non-nil when the Classifier itself is misconfigured.
func (c *Classifier) Classify(email string) (Verdict, error) {
	if c.err != nil {
		return Verdict{}, c.err
	}
	return c.classify(email), nil
}

func (c *Classifier) classify(email string) Verdict {
	parsed := parse.NewEmail(email)
	if !parsed.Valid {
		return Verdict{Email: email, Status: StatusMalformed}
	}

	res := c.match(parsed.Domain)
	switch {
	case res.IsExactMatch:
		return Verdict{Email: email, Status: StatusValid}
	case res.HasSuggestion():
		return Verdict{
			Email:          email,
			Status:         StatusValidWithSuggestion,
			SuggestedEmail: parsed.Local + "@" + res.SuggestedDomain,
			Confidence:     confidence(parsed.Domain, res.SuggestedDomain, res.Distance),
			Distance:       res.Distance,
		}
	default:
		return Verdict{Email: email, Status: StatusValidUnknownDomain}
	}
}

func (c *Classifier) match(domain string) types.MatchResult {
	if c.cache != nil {
		return c.cache.Classify(domain)
	}
	return c.matcher.Classify(domain, c.threshold)
}

// confidence is 1 - distance/longest, where longest is the rune length of
// the longer of the two domains, clamped to [0,1].
func confidence(domain, suggestion string, distance int) float64 {
	longest := max(utf8.RuneCountInString(domain), utf8.RuneCountInString(suggestion))
	if longest == 0 {
		return 0
	}
	return min(max(1-float64(distance)/float64(longest), 0), 1)
}

// ClassifyMany classifies multiple emails concurrently.
// The result order matches the input slice order.
// Emails are sorted by domain internally so repeated domains hit the match
// cache back to back.
func (c *Classifier) ClassifyMany(ctx context.Context, emails []string, opts ...ConcurrencyOptions) ([]Verdict, error) {
	if c.err != nil {
		return nil, c.err
	}

	o := defaultConcurrencyOptions()
	if len(opts) > 0 && opts[0].Workers > 0 {
		o.Workers = opts[0].Workers
	}

	type job struct {
		idx    int
		email  string
		domain string
	}

	jobs := make([]job, len(emails))
	for i, e := range emails {
		domain := ""
		if atIdx := strings.LastIndex(e, "@"); atIdx >= 0 {
			domain = e[atIdx+1:]
		}
		jobs[i] = job{idx: i, email: e, domain: domain}
	}
	slices.SortStableFunc(jobs, func(a, b job) int {
		return strings.Compare(a.domain, b.domain)
	})

	start := time.Now()
	results := make([]Verdict, len(emails))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[j.idx] = c.classify(j.email)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Debug("classified batch",
		"emails", len(emails),
		"workers", o.Workers,
		"cached_domains", c.cachedDomains(),
		"elapsed", time.Since(start),
	)
	return results, nil
}

func (c *Classifier) cachedDomains() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
