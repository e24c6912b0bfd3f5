package affix

import (
	"golang.org/x/text/cases"
)

// Suffixes derives one fusion suffix per name, in input order.
//
// It mirrors Prefixes on reversed names and extends backwards to the previous
// vowel. The first letter of every suffix is lower-cased, and a hyphen that
// sits right before the suffix is kept in front of it.
func Suffixes(names []string, a Alphabet) []string {
	words := toRunes(names)
	lower := cases.Lower(a.Language)
	out := make([]string, len(names))
	memo := make(map[string]string, len(names))
	for i, name := range names {
		if s, ok := memo[name]; ok {
			out[i] = s
			continue
		}
		w := words[i]
		shared := longestShared(i, words, names, commonSuffixLen)
		start := a.suffixStart(w, shared)
		s := lowerFirst(lower, w[start:])
		if start > 0 && w[start-1] == '-' {
			s = "-" + s
		}
		memo[name] = s
		out[i] = s
	}
	return out
}

// suffixStart returns the index in w where the suffix begins.
func (a Alphabet) suffixStart(w []rune, shared int) int {
	n := len(w)
	if shared >= n {
		return 0
	}
	root := n - shared - 1
	if a.Vowels.Has(w[root]) || n-root >= a.maxLen() {
		return root
	}
	start := root
	for start > 0 {
		start--
		if a.Vowels.Has(w[start]) {
			break
		}
	}
	if n-start > a.maxLen() {
		return root
	}
	return start
}

// universalSuffix is one character plus the shared suffix.
func universalSuffix(w []rune, shared int) string {
	if shared >= len(w) {
		return string(w)
	}
	return string(w[len(w)-shared-1:])
}

func lowerFirst(c cases.Caser, w []rune) string {
	if len(w) == 0 {
		return ""
	}
	return c.String(string(w[0])) + string(w[1:])
}
