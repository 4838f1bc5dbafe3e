package project

import (
	"fmt"
	"slices"
	"strings"

	"jsfmt/internal/format"

	"github.com/BurntSushi/toml"
)

// Config is the decoded .jsfmt.toml. Pointer fields are nil when the key
// is absent so that only keys present in the file override defaults.
type Config struct {
	Path   string        `toml:"-"`
	Format FormatSection `toml:"format"`
	Files  Files         `toml:"files"`
}

// FormatSection mirrors format.Options.
type FormatSection struct {
	IndentSize           *int    `toml:"indent_size"`
	IndentChar           *string `toml:"indent_char"`
	PreserveNewlines     *bool   `toml:"preserve_newlines"`
	MaxPreserveNewlines  *int    `toml:"max_preserve_newlines"`
	JSLintHappy          *bool   `toml:"jslint_happy"`
	BraceStyle           *string `toml:"brace_style"`
	KeepArrayIndentation *bool   `toml:"keep_array_indentation"`
	IndentLevel          *int    `toml:"indent_level"`
}

// LoadConfig parses a .jsfmt.toml file. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if _, err := cfg.Apply(format.DefaultOptions()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Apply overlays the keys present in the file onto opts and validates
// the result.
func (c *Config) Apply(opts format.Options) (format.Options, error) {
	if c == nil {
		return opts, opts.Validate()
	}
	s := c.Format
	if s.IndentSize != nil {
		opts.IndentSize = *s.IndentSize
	}
	if s.IndentChar != nil {
		opts.IndentChar = *s.IndentChar
	}
	if s.PreserveNewlines != nil {
		opts.PreserveNewlines = *s.PreserveNewlines
	}
	if s.MaxPreserveNewlines != nil {
		opts.MaxPreserveNewlines = *s.MaxPreserveNewlines
	}
	if s.JSLintHappy != nil {
		opts.JSLintHappy = *s.JSLintHappy
	}
	if s.BraceStyle != nil {
		bs, err := format.ParseBraceStyle(*s.BraceStyle)
		if err != nil {
			return opts, err
		}
		opts.BraceStyle = bs
	}
	if s.KeepArrayIndentation != nil {
		opts.KeepArrayIndentation = *s.KeepArrayIndentation
	}
	if s.IndentLevel != nil {
		opts.IndentLevel = *s.IndentLevel
	}
	return opts, opts.Validate()
}
