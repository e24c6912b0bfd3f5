// Package wordlist loads locale name lists of the form `key: "Name",`.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is one key/name pair from a word list.
type Entry struct {
	Key  string
	Name string
}

// List is an ordered key → name mapping. Re-setting an existing key replaces
// its name but keeps the key's original position.
type List struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty list.
func New() *List {
	return &List{index: make(map[string]int)}
}

// Set adds key or overwrites its name in place.
func (l *List) Set(key, name string) {
	if i, ok := l.index[key]; ok {
		l.entries[i].Name = name
		return
	}
	l.index[key] = len(l.entries)
	l.entries = append(l.entries, Entry{Key: key, Name: name})
}

// Get returns the name stored for key.
func (l *List) Get(key string) (string, bool) {
	i, ok := l.index[key]
	if !ok {
		return "", false
	}
	return l.entries[i].Name, true
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Entries returns a copy of the entries in insertion order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Names returns the names in insertion order.
func (l *List) Names() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Name
	}
	return out
}

// Option configures parsing.
type Option func(*options)

type options struct {
	normalize bool
}

// WithNFC normalizes every name to Unicode NFC so decomposed and precomposed
// accents compare equal.
func WithNFC() Option {
	return func(o *options) { o.normalize = true }
}

var quoted = regexp.MustCompile(`"(.*?)"`)

// ParseLine extracts an entry from a line holding a colon and at least two
// quoted strings. The first quoted string is the key, the second the name.
func ParseLine(line string) (Entry, bool) {
	if !strings.Contains(line, ":") {
		return Entry{}, false
	}
	m := quoted.FindAllStringSubmatch(line, 2)
	if len(m) < 2 {
		return Entry{}, false
	}
	return Entry{Key: m[0][1], Name: m[1][1]}, true
}

// Parse reads a word list. Lines that do not look like entries are skipped.
func Parse(r io.Reader, opts ...Option) (*List, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	list := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		e, ok := ParseLine(sc.Text())
		if !ok {
			continue
		}
		if o.normalize {
			e.Name = norm.NFC.String(e.Name)
		}
		list.Set(e.Key, e.Name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan word list: %w", err)
	}
	return list, nil
}

// Load reads and parses the word list at path.
func Load(path string, opts ...Option) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	list, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
