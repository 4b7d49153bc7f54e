package datetok

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/jamesainslie/go-datetok/locale"
	"github.com/jamesainslie/go-datetok/pattern"
	"github.com/jamesainslie/go-datetok/settings"
	"github.com/jamesainslie/go-datetok/table"
	"github.com/jamesainslie/go-datetok/tokenizer"
)

// Config is the configuration profile a Dictionary is built under.
// settings.Settings implements it.
type Config interface {
	// RegistryKey identifies the profile in the pattern cache.
	RegistryKey() string
	// SkipTokens lists extra strings treated as recognized, valueless tokens.
	SkipTokens() []string
}

// Dictionary recognizes the date vocabulary of one locale and splits text
// into known tokens and literal runs. It is safe for concurrent use.
type Dictionary struct {
	info     *locale.Info
	table    *table.Table
	relative *table.Relative
	form     table.Form
	key      pattern.Key
	cache    *pattern.Cache
	logger   *slog.Logger
}

// New builds the dictionary for info under cfg. A nil cfg selects
// settings.Default.
func New(info *locale.Info, cfg Config, opts ...Option) (*Dictionary, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	if info == nil {
		return nil, ErrNilLocale
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("invalid locale: %w", err)
	}
	if cfg == nil {
		cfg = settings.Default()
	}

	key := pattern.Key{
		Profile: cfg.RegistryKey(),
		Locale:  info.Name,
		Variant: string(c.form),
	}

	tbl := table.Build(info, cfg.SkipTokens())
	if c.form != table.FormNone {
		var dropped []string
		tbl, dropped = table.Normalize(tbl, info, c.form)
		for _, k := range dropped {
			c.logger.Debug("normalization dropped entry",
				"key", key.String(),
				"entry", k,
				"normalized", c.form.Apply(k),
			)
		}
	}

	return &Dictionary{
		info:     info,
		table:    tbl,
		relative: table.BuildRelative(info),
		form:     c.form,
		key:      key,
		cache:    c.cache,
		logger:   c.logger,
	}, nil
}

// NewNormalized is New with table keys normalized by table.FormNFKC. An
// explicit WithNormalizationForm in opts takes precedence; pass
// table.FormFoldMarks to also strip accents.
func NewNormalized(info *locale.Info, cfg Config, opts ...Option) (*Dictionary, error) {
	return New(info, cfg, append([]Option{WithNormalizationForm(table.FormNFKC)}, opts...)...)
}

// Contains reports whether key is a recognized surface string.
func (d *Dictionary) Contains(key string) bool {
	return d.table.Contains(key)
}

// Lookup returns the token value for key.
func (d *Dictionary) Lookup(key string) (table.Value, bool) {
	return d.table.Lookup(key)
}

// Get is Lookup that reports a miss as ErrUnknownToken.
func (d *Dictionary) Get(key string) (table.Value, error) {
	v, ok := d.table.Lookup(key)
	if !ok {
		return table.Value{}, fmt.Errorf("%w: %q", ErrUnknownToken, key)
	}
	return v, nil
}

// All yields every recognized surface string, settings skip tokens first.
func (d *Dictionary) All() iter.Seq[string] {
	return d.table.All()
}

// Split partitions input into recognized tokens and the literal runs between
// them. With keepFormatting the result concatenates back to input.
func (d *Dictionary) Split(input string, keepFormatting bool) []string {
	return tokenizer.Split(d.patterns(), input, keepFormatting)
}

// SplitRelative splits input around relative expressions such as
// "yesterday", keeping both the expressions and the text between them.
func (d *Dictionary) SplitRelative(input string, keepFormatting bool) []string {
	return tokenizer.SplitRelative(d.patterns(), input, keepFormatting)
}

// AreTokensValid reports whether every token is a relative expression, a
// recognized word, or a run of digits.
func (d *Dictionary) AreTokensValid(tokens []string) bool {
	return tokenizer.AreTokensValid(d.patterns(), d.table, tokens)
}

// Words returns the recognized surface strings in match order: longest
// first, ties lexicographic.
func (d *Dictionary) Words() []string {
	if c := d.patterns(); c != nil {
		return slices.Clone(c.Words())
	}
	return pattern.SortByLength(slices.Collect(d.table.All()))
}

// Normalize applies the dictionary's normalization form to text.
func (d *Dictionary) Normalize(text string) string {
	return d.form.Apply(text)
}

// Locale returns the locale the dictionary was built from.
func (d *Dictionary) Locale() *locale.Info {
	return d.info
}

// Relative returns the relative-expression table.
func (d *Dictionary) Relative() *table.Relative {
	return d.relative
}

// Key returns the pattern cache key of the dictionary.
func (d *Dictionary) Key() pattern.Key {
	return d.key
}

// patterns returns the compiled patterns, or nil when they cannot be built.
// Callers then fall back to literal splitting and table-only validation.
func (d *Dictionary) patterns() *pattern.Compiled {
	c, err := d.cache.Get(d.key, d.source)
	if err != nil {
		d.logger.Debug("patterns unavailable", "key", d.key.String(), "error", err)
		return nil
	}
	return c
}

func (d *Dictionary) source() pattern.Source {
	return pattern.Source{
		Words:         slices.Collect(d.table.All()),
		Relative:      d.relative.Keys(),
		NoWordSpacing: d.info.NoWordSpacing,
	}
}
