package affix

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/language"
)

// DefaultMaxLen is the soft length cap applied when extending an affix root.
const DefaultMaxLen = 6

// Strategy selects how affixes are derived for a word list.
type Strategy string

const (
	// StrategyAuto picks StrategyAlphabetic when every name is Latin script,
	// StrategyUniversal otherwise.
	StrategyAuto Strategy = "auto"
	// StrategyAlphabetic extends roots to the next consonant (prefix) or vowel (suffix).
	StrategyAlphabetic Strategy = "alphabetic"
	// StrategyUniversal cuts one character past the shared part. Used for
	// ideographic scripts where consonant/vowel classes do not apply.
	StrategyUniversal Strategy = "universal"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ParseStrategy converts a config or flag value into a Strategy.
// An empty string means StrategyAuto.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyAlphabetic, StrategyUniversal:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w %q (want auto, alphabetic or universal)", ErrUnknownStrategy, s)
}

// RuneSet is a set of lower-case code points.
type RuneSet map[rune]struct{}

// NewRuneSet builds a set from every rune in chars, lower-cased.
func NewRuneSet(chars string) RuneSet {
	set := make(RuneSet, len(chars))
	for _, r := range chars {
		set[unicode.ToLower(r)] = struct{}{}
	}
	return set
}

// Has reports whether the lower-cased form of r is in the set.
func (s RuneSet) Has(r rune) bool {
	_, ok := s[unicode.ToLower(r)]
	return ok
}

// Alphabet holds the per-locale character classes used by the derivers.
type Alphabet struct {
	Name       string
	Consonants RuneSet
	Vowels     RuneSet
	// Language drives case mapping of the suffix's first letter.
	Language language.Tag
	MaxLen   int
}

const (
	latinConsonants = "bcdfghjklmnpqrstvwxzçßñ"
	latinVowels     = "aeiouyáéíóúàèìòùâêîôûäëïöüãẽĩõũæœøýỳÿŷỹ"
)

// Latin returns the built-in alphabet for Latin-script locales.
func Latin() Alphabet {
	return Alphabet{
		Name:       "latin",
		Consonants: NewRuneSet(latinConsonants),
		Vowels:     NewRuneSet(latinVowels),
		Language:   language.Und,
		MaxLen:     DefaultMaxLen,
	}
}

func (a Alphabet) maxLen() int {
	if a.MaxLen <= 0 {
		return DefaultMaxLen
	}
	return a.MaxLen
}

// IsLatin reports whether every rune of name falls in the extended Latin
// range or the miscellaneous symbols block (for ♂ and ♀).
func IsLatin(name string) bool {
	for _, r := range name {
		if !(r >= 0x0020 && r <= 0x02AF || r >= 0x2600 && r <= 0x26FF) {
			return false
		}
	}
	return true
}

// Resolve turns StrategyAuto into a concrete strategy for names.
func (s Strategy) Resolve(names []string) Strategy {
	if s != StrategyAuto && s != "" {
		return s
	}
	for _, n := range names {
		if !IsLatin(n) {
			return StrategyUniversal
		}
	}
	return StrategyAlphabetic
}
