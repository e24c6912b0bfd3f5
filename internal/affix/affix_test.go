package affix

import (
	"context"
	"errors"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/moasq/affixgen/internal/wordlist"
)

func TestPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "diverge after shared stem",
			names: []string{"Charmander", "Charmeleon", "Charizard"},
			want:  []string{"Charma", "Charme", "Chariz"},
		},
		{
			name:  "single entry extends to first consonant",
			names: []string{"Eevee"},
			want:  []string{"Eev"},
		},
		{
			name:  "single entry starting with consonant",
			names: []string{"Pikachu"},
			want:  []string{"P"},
		},
		{
			name:  "total prefix of another name keeps whole name",
			names: []string{"Nidoran", "Nidorana"},
			want:  []string{"Nidoran", "Nidorana"},
		},
		{
			name:  "extension past cap falls back to root",
			names: []string{"Aeiouaxb"},
			want:  []string{"A"},
		},
		{
			name:  "comparison is case sensitive",
			names: []string{"Abra", "Kadabra", "abc"},
			want:  []string{"Ab", "K", "ab"},
		},
		{
			name:  "empty name",
			names: []string{"", "Mew"},
			want:  []string{"", "M"},
		},
		{
			name:  "empty list",
			names: nil,
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prefixes(tt.names, Latin())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Prefixes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSuffixes(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "extend back to previous vowel",
			names: []string{"Charmander", "Charmeleon", "Charizard"},
			want:  []string{"er", "on", "ard"},
		},
		{
			name:  "hyphen before suffix is kept",
			names: []string{"Ho-Oh", "Hoothoot"},
			want:  []string{"-oh", "ot"},
		},
		{
			name:  "whole name suffix is lower-cased",
			names: []string{"Oh", "Ho-Oh"},
			want:  []string{"oh", "o-Oh"},
		},
		{
			name:  "shared suffix ending at a vowel",
			names: []string{"Abra", "Kadabra"},
			want:  []string{"abra", "abra"},
		},
		{
			name:  "no vowel within reach uses whole name",
			names: []string{"Brrrr"},
			want:  []string{"brrrr"},
		},
		{
			name:  "single entry ending in vowel",
			names: []string{"Pikachu"},
			want:  []string{"u"},
		},
		{
			name:  "duplicate names reuse the first result",
			names: []string{"Ho-Oh", "Ho-Oh", "Hoothoot"},
			want:  []string{"-oh", "-oh", "ot"},
		},
		{
			name:  "empty name",
			names: []string{"", "Mew"},
			want:  []string{"", "ew"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suffixes(tt.names, Latin())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Suffixes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSuffixesUseAlphabetLanguage(t *testing.T) {
	a := Latin()
	a.Language = language.Turkish
	got := Suffixes([]string{"Ilk"}, a)
	if got[0] != "ılk" {
		t.Fatalf("Suffixes() with Turkish casing = %q, want %q", got[0], "ılk")
	}
}

func TestAffixProperties(t *testing.T) {
	names := []string{
		"Bulbasaur", "Ivysaur", "Venusaur", "Charmander", "Charmeleon", "Charizard",
		"Squirtle", "Wartortle", "Blastoise", "Nidoran♀", "Nidorina", "Nidoqueen",
		"Nidoran♂", "Nidorino", "Nidoking", "Porygon", "Porygon2", "Porygon-Z",
		"Mr. Mime", "Mime Jr.", "Ho-Oh", "Flabébé", "Jangmo-o", "Hakamo-o", "Kommo-o",
	}
	a := Latin()
	prefixes := Prefixes(names, a)
	suffixes := Suffixes(names, a)

	for i, name := range names {
		p := prefixes[i]
		if n := utf8.RuneCountInString(p); n > a.MaxLen {
			// Only allowed when the shared part plus one character already reaches the cap.
			words := toRunes(names)
			shared := longestShared(i, words, names, commonPrefixLen)
			if shared+1 < a.MaxLen && shared < len(words[i]) {
				t.Errorf("prefix of %q = %q exceeds cap without a long root", name, p)
			}
		}

		s := []rune(suffixes[i])
		if len(s) > 0 && s[0] == '-' {
			s = s[1:]
		}
		if len(s) == 0 {
			t.Errorf("suffix of %q is empty", name)
			continue
		}
		if unicode.IsUpper(s[0]) {
			t.Errorf("suffix of %q = %q starts with an upper-case letter", name, suffixes[i])
		}
	}
}

func TestPrefixesDeterministic(t *testing.T) {
	names := []string{"Jangmo-o", "Hakamo-o", "Kommo-o", "Tapu Koko", "Tapu Lele"}
	first := Prefixes(names, Latin())
	second := Prefixes(names, Latin())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Prefixes() not deterministic (-first +second):\n%s", diff)
	}
}

func TestUniversal(t *testing.T) {
	names := []string{"이상해씨", "이상해풀", "이상해꽃", "파이리"}
	if diff := cmp.Diff([]string{"이상해씨", "이상해풀", "이상해꽃", "파"}, UniversalPrefixes(names)); diff != "" {
		t.Fatalf("UniversalPrefixes() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"씨", "풀", "꽃", "리"}, UniversalSuffixes(names)); diff != "" {
		t.Fatalf("UniversalSuffixes() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsLatin(t *testing.T) {
	tests := map[string]bool{
		"Flabébé":  true,
		"Nidoran♀": true,
		"Mr. Mime": true,
		"이상해씨":     false,
		"フシギダネ":    false,
	}
	for name, want := range tests {
		if got := IsLatin(name); got != want {
			t.Errorf("IsLatin(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, in := range []string{"", "auto", "alphabetic", "universal"} {
		if _, err := ParseStrategy(in); err != nil {
			t.Errorf("ParseStrategy(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := ParseStrategy("ideographic"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("ParseStrategy(ideographic) error = %v, want ErrUnknownStrategy", err)
	}
}

func TestDeriverAutoStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("latin names use alphabetic rules", func(t *testing.T) {
		entries := []wordlist.Entry{
			{Key: "A", Name: "Charmander"},
			{Key: "B", Name: "Charmeleon"},
			{Key: "C", Name: "Charizard"},
		}
		got, err := NewDeriver(Latin(), StrategyAuto, nil).Derive(ctx, entries)
		if err != nil {
			t.Fatalf("Derive() error: %v", err)
		}
		want := []Result{
			{Key: "A", Name: "Charmander", Prefix: "Charma", Suffix: "er"},
			{Key: "B", Name: "Charmeleon", Prefix: "Charme", Suffix: "on"},
			{Key: "C", Name: "Charizard", Prefix: "Chariz", Suffix: "ard"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Derive() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-latin names use universal rules", func(t *testing.T) {
		entries := []wordlist.Entry{
			{Key: "charmander", Name: "파이리"},
			{Key: "charmeleon", Name: "리자드"},
		}
		got, err := NewDeriver(Latin(), StrategyAuto, nil).Derive(ctx, entries)
		if err != nil {
			t.Fatalf("Derive() error: %v", err)
		}
		want := []Result{
			{Key: "charmander", Name: "파이리", Prefix: "파", Suffix: "리"},
			{Key: "charmeleon", Name: "리자드", Prefix: "리", Suffix: "드"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Derive() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		got, err := NewDeriver(Latin(), StrategyAuto, nil).Derive(ctx, nil)
		if err != nil {
			t.Fatalf("Derive() error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("Derive() returned %d results for empty input", len(got))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewDeriver(Latin(), StrategyAuto, nil).Derive(cctx, []wordlist.Entry{{Key: "a", Name: "Mew"}})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Derive() error = %v, want context.Canceled", err)
		}
	})
}
