package affix

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/moasq/affixgen/internal/wordlist"
)

// Result is the derived fusion affix pair for one word-list entry.
type Result struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Prefix string `json:"fusion_prefix"`
	Suffix string `json:"fusion_suffix"`
}

// Deriver computes fusion affixes for a whole word list.
type Deriver struct {
	alphabet Alphabet
	strategy Strategy
	log      *zap.Logger
}

// NewDeriver creates a deriver. A nil logger disables logging.
func NewDeriver(a Alphabet, s Strategy, log *zap.Logger) *Deriver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deriver{alphabet: a, strategy: s, log: log}
}

// Derive returns one Result per entry, in entry order. The prefix and suffix
// passes read the same immutable name slice and run concurrently.
func (d *Deriver) Derive(ctx context.Context, entries []wordlist.Entry) ([]Result, error) {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	strategy := d.strategy.Resolve(names)
	d.log.Debug("deriving affixes",
		zap.Int("entries", len(entries)),
		zap.String("alphabet", d.alphabet.Name),
		zap.String("strategy", string(strategy)))

	var prefixes, suffixes []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		prefixes = d.prefixes(names, strategy)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		suffixes = d.suffixes(names, strategy)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Key: e.Key, Name: e.Name, Prefix: prefixes[i], Suffix: suffixes[i]}
	}
	return results, nil
}

func (d *Deriver) prefixes(names []string, s Strategy) []string {
	if s == StrategyUniversal {
		return UniversalPrefixes(names)
	}
	return Prefixes(names, d.alphabet)
}

func (d *Deriver) suffixes(names []string, s Strategy) []string {
	if s == StrategyUniversal {
		return UniversalSuffixes(names)
	}
	return Suffixes(names, d.alphabet)
}

// UniversalPrefixes derives prefixes without consonant extension.
func UniversalPrefixes(names []string) []string {
	words := toRunes(names)
	out := make([]string, len(names))
	for i := range names {
		out[i] = universalPrefix(words[i], longestShared(i, words, names, commonPrefixLen))
	}
	return out
}

// UniversalSuffixes derives suffixes without vowel extension or case mapping.
func UniversalSuffixes(names []string) []string {
	words := toRunes(names)
	out := make([]string, len(names))
	for i := range names {
		out[i] = universalSuffix(words[i], longestShared(i, words, names, commonSuffixLen))
	}
	return out
}
