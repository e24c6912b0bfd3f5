package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleSource = `export const pokemon: SimpleTranslationEntries = {
  "bulbasaur": "Bulbasaur",
  "ivysaur": "Ivysaur",
  // "comment": "commented out entries still count",
  "mr_mime": "Mr. Mime",
  "bad line without colon" "x"
  "only_key":
  "ivysaur": "Ivysaur II",
} as const;
`

func TestParse(t *testing.T) {
	list, err := Parse(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Entry{
		{Key: "bulbasaur", Name: "Bulbasaur"},
		{Key: "ivysaur", Name: "Ivysaur II"},
		{Key: "comment", Name: "commented out entries still count"},
		{Key: "mr_mime", Name: "Mr. Mime"},
	}
	if diff := cmp.Diff(want, list.Entries()); diff != "" {
		t.Fatalf("Parse() entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Entry
		ok   bool
	}{
		{`  "pikachu": "Pikachu",`, Entry{Key: "pikachu", Name: "Pikachu"}, true},
		{`  pikachu: "Pikachu",`, Entry{}, false},
		{`"a" "b"`, Entry{}, false},
		{`"key": "", "extra": "x"`, Entry{Key: "key", Name: ""}, true},
		{``, Entry{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseLine(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseLine(%q) = %+v, %v; want %+v, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseNFC(t *testing.T) {
	decomposed := "Flabe\u0301be\u0301"
	src := `"flabebe": "` + decomposed + `",`

	raw, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if name, _ := raw.Get("flabebe"); name != decomposed {
		t.Fatalf("Parse() without NFC changed name to %q", name)
	}

	normalized, err := Parse(strings.NewReader(src), WithNFC())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if name, _ := normalized.Get("flabebe"); name != "Flab\u00e9b\u00e9" {
		t.Fatalf("Parse() with NFC = %q, want %q", name, "Flab\u00e9b\u00e9")
	}
}

func TestParseEmpty(t *testing.T) {
	list, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if list.Len() != 0 {
		t.Fatalf("expected empty list, got %d entries", list.Len())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokemon.ts")
	if err := os.WriteFile(path, []byte(sampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff([]string{"Bulbasaur", "Ivysaur II", "commented out entries still count", "Mr. Mime"}, list.Names()); diff != "" {
		t.Fatalf("Load() names mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "missing.ts")); err == nil {
		t.Fatal("expected error for missing word list")
	}
}
