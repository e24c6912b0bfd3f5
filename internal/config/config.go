package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/moasq/affixgen/internal/affix"
	"github.com/moasq/affixgen/internal/emitter"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "affixgen.yaml"

// DefaultProfile is the built-in Latin profile name.
const DefaultProfile = "latin"

// ErrUnknownProfile is returned when a locale or flag names a profile that is
// neither built in nor declared in the config file.
var ErrUnknownProfile = errors.New("unknown profile")

// Config holds the CLI configuration.
type Config struct {
	// LocalesDir is the directory holding one sub-directory per locale.
	LocalesDir string `yaml:"locales_dir"`

	// InputName is the word-list file name inside a locale directory.
	InputName string `yaml:"input_name"`

	// OutputName is the generated file name inside a locale directory.
	OutputName string `yaml:"output_name"`

	// Concurrency bounds how many locales are processed at once.
	Concurrency int `yaml:"concurrency"`

	Profiles map[string]Profile `yaml:"profiles"`
	Locales  map[string]Locale  `yaml:"locales"`

	// path is where the config was read from; empty for defaults.
	path string
}

// Profile describes the character classes of one alphabet.
type Profile struct {
	Consonants string `yaml:"consonants"`
	Vowels     string `yaml:"vowels"`
	Language   string `yaml:"language"`
	MaxLen     int    `yaml:"max_len"`
	Strategy   string `yaml:"strategy"`
	Normalize  *bool  `yaml:"normalize"`
}

// Locale binds a locale directory to a profile, with optional overrides.
type Locale struct {
	Profile  string `yaml:"profile"`
	Language string `yaml:"language"`
	Strategy string `yaml:"strategy"`
	Skip     bool   `yaml:"skip"`
}

// Settings is the resolved derivation setup for one locale.
type Settings struct {
	Alphabet  affix.Alphabet
	Strategy  affix.Strategy
	Normalize bool
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LocalesDir:  filepath.Join("src", "locales"),
		InputName:   "pokemon.ts",
		OutputName:  emitter.DefaultFileName,
		Concurrency: 4,
	}
}

// Load reads the config file at path. When path is empty, DefaultFileName is
// tried and a missing file yields Default(). An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.path = path
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) validate() error {
	for name, p := range c.Profiles {
		if _, err := affix.ParseStrategy(p.Strategy); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
		if p.Language != "" {
			if _, err := language.Parse(p.Language); err != nil {
				return fmt.Errorf("profile %q: invalid language %q: %w", name, p.Language, err)
			}
		}
	}
	for _, name := range c.LocaleNames() {
		l := c.Locales[name]
		if l.Profile != "" && !c.hasProfile(l.Profile) {
			return fmt.Errorf("locale %q: %w %q", name, ErrUnknownProfile, l.Profile)
		}
		if _, err := affix.ParseStrategy(l.Strategy); err != nil {
			return fmt.Errorf("locale %q: %w", name, err)
		}
	}
	return nil
}

func (c *Config) hasProfile(name string) bool {
	if name == DefaultProfile {
		return true
	}
	_, ok := c.Profiles[name]
	return ok
}

// LocaleNames returns the configured locale names, sorted.
func (c *Config) LocaleNames() []string {
	names := make([]string, 0, len(c.Locales))
	for name := range c.Locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skipped reports whether locale is marked skip in the config.
func (c *Config) Skipped(locale string) bool {
	return c.Locales[locale].Skip
}

// Resolve builds the derivation settings for locale. profile and strategy are
// command-line overrides; empty values defer to the locale entry, then to the
// profile, then to built-in defaults.
func (c *Config) Resolve(locale, profile, strategy string) (Settings, error) {
	loc := c.Locales[locale]

	name := firstNonEmpty(profile, loc.Profile, DefaultProfile)
	a := affix.Latin()
	normalize := true
	profileStrategy := ""

	if p, ok := c.Profiles[name]; ok {
		a.Name = name
		if p.Consonants != "" {
			a.Consonants = affix.NewRuneSet(p.Consonants)
		}
		if p.Vowels != "" {
			a.Vowels = affix.NewRuneSet(p.Vowels)
		}
		if p.MaxLen > 0 {
			a.MaxLen = p.MaxLen
		}
		if p.Language != "" {
			a.Language = language.Make(p.Language)
		}
		if p.Normalize != nil {
			normalize = *p.Normalize
		}
		profileStrategy = p.Strategy
	} else if name != DefaultProfile {
		return Settings{}, fmt.Errorf("%w %q", ErrUnknownProfile, name)
	}

	if loc.Language != "" {
		tag, err := language.Parse(loc.Language)
		if err != nil {
			return Settings{}, fmt.Errorf("locale %q: invalid language %q: %w", locale, loc.Language, err)
		}
		a.Language = tag
	} else if a.Language == language.Und && locale != "" {
		// Locale directory names such as "pt_BR" double as language tags.
		if tag, err := language.Parse(locale); err == nil {
			a.Language = tag
		}
	}

	s, err := affix.ParseStrategy(firstNonEmpty(strategy, loc.Strategy, profileStrategy))
	if err != nil {
		return Settings{}, err
	}

	return Settings{Alphabet: a, Strategy: s, Normalize: normalize}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
