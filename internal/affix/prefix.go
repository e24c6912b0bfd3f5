package affix

// Prefixes derives one fusion prefix per name, in input order.
//
// The shared part is the longest prefix the name has in common with any other
// name in the list. One more character is added to it, then the root is
// extended to the next consonant as long as the result stays within MaxLen.
func Prefixes(names []string, a Alphabet) []string {
	words := toRunes(names)
	out := make([]string, len(names))
	memo := make(map[string]string, len(names))
	for i, name := range names {
		if p, ok := memo[name]; ok {
			out[i] = p
			continue
		}
		shared := longestShared(i, words, names, commonPrefixLen)
		p := a.prefix(words[i], shared)
		memo[name] = p
		out[i] = p
	}
	return out
}

func (a Alphabet) prefix(w []rune, shared int) string {
	if shared >= len(w) {
		return string(w)
	}
	root := w[:shared+1]
	if a.Consonants.Has(root[len(root)-1]) || len(root) >= a.maxLen() {
		return string(root)
	}
	end := len(root)
	for end < len(w) {
		end++
		if a.Consonants.Has(w[end-1]) {
			break
		}
	}
	if end > a.maxLen() {
		return string(root)
	}
	return string(w[:end])
}

// universalPrefix is the shared prefix plus one character.
func universalPrefix(w []rune, shared int) string {
	if shared >= len(w) {
		return string(w)
	}
	return string(w[:shared+1])
}

// longestShared scans every other name and returns the longest match length
// reported by common. Names equal to names[i] are skipped. Only a strictly
// longer match replaces the current best, so the first maximal match wins.
func longestShared(i int, words [][]rune, names []string, common func(a, b []rune) int) int {
	best := 0
	for j, other := range words {
		if names[j] == names[i] {
			continue
		}
		if n := common(words[i], other); n > best {
			best = n
		}
	}
	return best
}

func commonPrefixLen(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffixLen(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

func toRunes(names []string) [][]rune {
	words := make([][]rune, len(names))
	for i, n := range names {
		words[i] = []rune(n)
	}
	return words
}
