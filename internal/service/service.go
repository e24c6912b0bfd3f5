package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/moasq/affixgen/internal/affix"
	"github.com/moasq/affixgen/internal/config"
	"github.com/moasq/affixgen/internal/emitter"
	"github.com/moasq/affixgen/internal/wordlist"
)

// ErrStale is returned by Check when the generated file on disk does not match
// what would be generated from the current word list.
var ErrStale = errors.New("generated affixes are out of date")

// Service coordinates loading, deriving and emitting affixes for CLI usage.
type Service struct {
	config   *config.Config
	log      *zap.Logger
	profile  string
	strategy string
}

// ServiceOpts holds optional configuration for the service.
type ServiceOpts struct {
	Profile  string // alphabet profile override
	Strategy string // strategy override (auto, alphabetic, universal)
	Logger   *zap.Logger
}

// NewService creates a new service.
func NewService(cfg *config.Config, opts ...ServiceOpts) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Service{config: cfg, log: zap.NewNop()}
	if len(opts) > 0 {
		o := opts[0]
		if o.Logger != nil {
			s.log = o.Logger
		}
		if _, err := affix.ParseStrategy(o.Strategy); err != nil {
			return nil, err
		}
		s.profile = o.Profile
		s.strategy = o.Strategy
	}
	return s, nil
}

// Job names one word list and the file generated from it.
type Job struct {
	Locale string
	Input  string
	Output string
}

// Report describes the outcome of one job.
type Report struct {
	Job
	Entries  int
	Strategy affix.Strategy
	// Changed is true when the output differed from (or did not match) the
	// file previously on disk.
	Changed bool
}

// JobFor builds a job for a single input file. An empty output places the
// generated file next to the input. The locale is taken from the input's
// directory name.
func (s *Service) JobFor(input, output string) Job {
	if output == "" {
		output = filepath.Join(filepath.Dir(input), s.config.OutputName)
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		abs = input
	}
	return Job{
		Locale: filepath.Base(filepath.Dir(abs)),
		Input:  input,
		Output: output,
	}
}

// Derive loads the job's word list and derives its affixes.
func (s *Service) Derive(ctx context.Context, job Job) ([]affix.Result, affix.Strategy, error) {
	settings, err := s.config.Resolve(job.Locale, s.profile, s.strategy)
	if err != nil {
		return nil, "", err
	}

	var opts []wordlist.Option
	if settings.Normalize {
		opts = append(opts, wordlist.WithNFC())
	}
	list, err := wordlist.Load(job.Input, opts...)
	if err != nil {
		return nil, "", err
	}
	s.log.Debug("loaded word list",
		zap.String("locale", job.Locale),
		zap.String("path", job.Input),
		zap.Int("entries", list.Len()))

	strategy := settings.Strategy.Resolve(list.Names())
	results, err := affix.NewDeriver(settings.Alphabet, strategy, s.log).Derive(ctx, list.Entries())
	if err != nil {
		return nil, "", err
	}
	return results, strategy, nil
}

// Generate derives the job's affixes and overwrites its output file.
func (s *Service) Generate(ctx context.Context, job Job) (Report, error) {
	results, strategy, err := s.Derive(ctx, job)
	if err != nil {
		return Report{Job: job}, err
	}
	data, err := emitter.Render(results)
	if err != nil {
		return Report{Job: job}, err
	}
	changed := !sameContent(job.Output, data)
	if err := emitter.WriteFile(job.Output, results); err != nil {
		return Report{Job: job}, err
	}
	s.log.Debug("wrote affixes",
		zap.String("path", job.Output),
		zap.Bool("changed", changed))
	return Report{Job: job, Entries: len(results), Strategy: strategy, Changed: changed}, nil
}

// Check derives the job's affixes in memory and compares them with the output
// file. It returns ErrStale when the file is missing or differs.
func (s *Service) Check(ctx context.Context, job Job) (Report, error) {
	results, strategy, err := s.Derive(ctx, job)
	if err != nil {
		return Report{Job: job}, err
	}
	data, err := emitter.Render(results)
	if err != nil {
		return Report{Job: job}, err
	}
	r := Report{Job: job, Entries: len(results), Strategy: strategy}
	if !sameContent(job.Output, data) {
		r.Changed = true
		return r, fmt.Errorf("%s: %w", job.Output, ErrStale)
	}
	return r, nil
}

func sameContent(path string, data []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Equal(existing, data)
}

// Discover finds every locale under the configured locales directory that has
// a word list. Locales marked skip are left out. Jobs are sorted by locale.
func (s *Service) Discover() ([]Job, error) {
	root := s.config.LocalesDir
	pattern := filepath.Join(root, "*", s.config.InputName)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	var jobs []Job
	for _, input := range matches {
		dir := filepath.Dir(input)
		locale := filepath.Base(dir)
		if s.config.Skipped(locale) {
			s.log.Debug("skipping locale", zap.String("locale", locale))
			continue
		}
		jobs = append(jobs, Job{
			Locale: locale,
			Input:  input,
			Output: filepath.Join(dir, s.config.OutputName),
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Locale < jobs[j].Locale })
	return jobs, nil
}

// RunAll applies run to every job with bounded concurrency. Reports are
// returned in job order. The first error cancels the remaining jobs, except
// ErrStale, which is collected so that every stale locale is reported.
func (s *Service) RunAll(ctx context.Context, jobs []Job, run func(context.Context, Job) (Report, error)) ([]Report, error) {
	reports := make([]Report, len(jobs))
	stale := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.config.Concurrency))
	for i, job := range jobs {
		g.Go(func() error {
			r, err := run(gctx, job)
			reports[i] = r
			if errors.Is(err, ErrStale) {
				stale[i] = err
				return nil
			}
			if err != nil {
				return fmt.Errorf("locale %s: %w", job.Locale, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, errors.Join(stale...)
}
