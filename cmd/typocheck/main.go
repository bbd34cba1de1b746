// Command typocheck scans a list of email addresses for likely domain typos.
//
// Usage:
//
//	typocheck [flags] <input|-> [output]
//
// The input is either a CSV file (the first column whose header contains
// "email" is used) or a plain list with one address per line. When output is
// given, a per-address report is written there.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/optimode/typocheck"
	"github.com/optimode/typocheck/domains"
	"github.com/optimode/typocheck/internal/config"
	"github.com/optimode/typocheck/internal/ingest"
	"github.com/optimode/typocheck/internal/logger"
	"github.com/optimode/typocheck/internal/report"
)

var errUsage = errors.New("usage")

type options struct {
	configPath  string
	domainsFile string
	threshold   int
	thresholdSet bool // -threshold was given explicitly
	workers     int
	format      string
	input       string
	output      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "typocheck: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("typocheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&o.domainsFile, "domains", "", "reference domain list, one per line (overrides config)")
	fs.IntVar(&o.threshold, "threshold", 0, "max edit distance for a suggestion (overrides config)")
	fs.IntVar(&o.workers, "workers", 0, "concurrent classifiers (overrides config)")
	fs.StringVar(&o.format, "format", "", "report format: csv or json (overrides config)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: typocheck [flags] <input|-> [output]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, errUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return o, errUsage
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			o.thresholdSet = true
		}
	})
	o.input = fs.Arg(0)
	o.output = fs.Arg(1)
	return o, nil
}

// applyFlags lets explicitly set flags win over file and environment config.
func applyFlags(cfg *config.Config, o options) error {
	if o.domainsFile != "" {
		cfg.DomainsFile = o.domainsFile
	}
	if o.thresholdSet {
		cfg.Threshold = o.threshold
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	if o.format != "" {
		cfg.Format = strings.ToLower(o.format)
	}
	return cfg.Validate()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, o); err != nil {
		return err
	}

	log := logger.New(cfg.Log, stderr).With("run_id", uuid.NewString())

	classifier, err := newClassifier(cfg, log)
	if err != nil {
		return err
	}
	log.Debug("classifier ready",
		"domains", classifier.Domains().Len(),
		"threshold", classifier.Threshold(),
		"workers", cfg.Workers,
	)

	fmt.Fprintf(stdout, "Processing %s...\n", o.input)

	batch, err := readInput(o.input, stdin)
	if err != nil {
		return err
	}
	log.Info("input loaded",
		"input", o.input,
		"format", batch.Format,
		"column", batch.Column,
		"emails", len(batch.Emails),
	)

	verdicts, err := classifier.ClassifyMany(ctx, batch.Emails, typocheck.ConcurrencyOptions{Workers: cfg.Workers})
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	if o.output != "" {
		if err := writeReport(o.output, cfg.Format, verdicts); err != nil {
			return err
		}
	}

	summary := report.Summarize(verdicts)
	log.Info("classification finished",
		"total", summary.Total,
		"valid", summary.Valid,
		"suggested", summary.Suggested,
		"unknown_domain", summary.UnknownDomain,
		"malformed", summary.Malformed,
	)
	if err := report.PrintSummary(stdout, summary, verdicts); err != nil {
		return err
	}

	if o.output != "" {
		fmt.Fprintf(stdout, "Detailed results saved to %s\n", o.output)
	}
	return nil
}

func newClassifier(cfg *config.Config, log *slog.Logger) (*typocheck.Classifier, error) {
	c := typocheck.New().
		WithThreshold(cfg.Threshold).
		WithCache(typocheck.CacheOptions{
			MaxEntries: cfg.CacheSize,
			Disabled:   cfg.CacheSize == 0,
		}).
		WithLogger(log)

	switch {
	case cfg.DomainsFile != "":
		set, err := loadDomains(cfg.DomainsFile)
		if err != nil {
			return nil, err
		}
		c.WithDomainSet(set)
	case len(cfg.Domains) > 0:
		c.WithDomains(cfg.Domains)
	}

	if c.Domains().Len() == 0 {
		log.Warn("reference domain list is empty; no suggestions will be made")
	}
	return c, nil
}

func loadDomains(path string) (*domains.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open domain list: %w", err)
	}
	defer func() { _ = f.Close() }()

	set, err := domains.Load(f)
	if err != nil {
		return nil, fmt.Errorf("domain list %s: %w", path, err)
	}
	return set, nil
}

func readInput(path string, stdin io.Reader) (ingest.Batch, error) {
	if path == "-" {
		return ingest.Read(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return ingest.Batch{}, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ingest.Read(f)
}

func writeReport(path, format string, verdicts []typocheck.Verdict) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if format == "json" {
		return report.WriteJSON(f, verdicts)
	}
	return report.WriteCSV(f, verdicts)
}
