package datetok

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-datetok/locale"
	"github.com/jamesainslie/go-datetok/pattern"
	"github.com/jamesainslie/go-datetok/settings"
	"github.com/jamesainslie/go-datetok/table"
)

// newTestDictionary isolates each test from the process-wide cache.
func newTestDictionary(t *testing.T, info *locale.Info, cfg Config, opts ...Option) *Dictionary {
	t.Helper()
	opts = append([]Option{WithCache(pattern.NewCache())}, opts...)
	d, err := New(info, cfg, opts...)
	require.NoError(t, err)
	return d
}

func loadEnglish(t *testing.T) *locale.Info {
	t.Helper()
	info, err := locale.LoadYAML("testdata/locales/en.yaml")
	require.NoError(t, err)
	return info
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, nil)
	if !errors.Is(err, ErrNilLocale) {
		t.Errorf("New(nil) error = %v, want ErrNilLocale", err)
	}

	_, err = New(&locale.Info{}, nil)
	if !errors.Is(err, locale.ErrMissingName) {
		t.Errorf("New(nameless) error = %v, want ErrMissingName", err)
	}
}

func TestDictionary_SplitMeeting(t *testing.T) {
	info := &locale.Info{
		Name:  "min",
		Skip:  []string{"the"},
		Words: map[locale.Class][]string{locale.Monday: {"monday"}},
	}
	d := newTestDictionary(t, info, nil)

	assert.Equal(t, []string{"the", " ", "monday", " ", "meeting"}, d.Split("the monday meeting", true))
	assert.Equal(t, []string{"the", " ", "monday", " ", "meeting"}, d.Split("the monday meeting", false))
	assert.Equal(t, []string{"monday", "meeting"}, d.Split("monday--meeting", false))
}

func TestDictionary_SettingsSkipTokens(t *testing.T) {
	cfg, err := settings.Parse([]byte(`skip_tokens = ["foo"]`))
	require.NoError(t, err)
	d := newTestDictionary(t, loadEnglish(t), cfg)

	assert.True(t, d.Contains("foo"))
	v, ok := d.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, table.Skip, v.Kind)
	assert.True(t, v.Valueless())

	v, err = d.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, table.Skip, v.Kind)

	assert.False(t, d.Contains("t"), "custom profile replaces the default skip tokens")
	assert.Equal(t, []string{"foo", " ", "mon"}, d.Split("foo mon", false))
}

func TestDictionary_DefaultConfig(t *testing.T) {
	d := newTestDictionary(t, loadEnglish(t), nil)

	assert.True(t, d.Contains("t"))
	assert.Equal(t, settings.Default().RegistryKey(), d.Key().Profile)
	assert.Equal(t, "en", d.Key().Locale)
	assert.Empty(t, d.Key().Variant)

	first, ok := firstOf(d)
	require.True(t, ok)
	assert.Equal(t, "t", first)
}

func firstOf(d *Dictionary) (string, bool) {
	for s := range d.All() {
		return s, true
	}
	return "", false
}

func TestDictionary_Lookup(t *testing.T) {
	d := newTestDictionary(t, loadEnglish(t), nil)

	tests := []struct {
		key  string
		want table.Value
	}{
		{"monday", table.Value{Kind: table.Semantic, Text: "monday"}},
		{"sept", table.Value{Kind: table.Semantic, Text: "september"}},
		{"the", table.Value{Kind: table.Skip}},
		{"of", table.Value{Kind: table.Pertain}},
		{"utc", table.Value{Kind: table.Literal, Text: "UTC"}},
		{":", table.Value{Kind: table.Literal, Text: ":"}},
		{"m", table.Value{Kind: table.Skip}},
		{"am", table.Value{Kind: table.Literal, Text: "am"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := d.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionary_GetUnknown(t *testing.T) {
	d := newTestDictionary(t, loadEnglish(t), nil)

	_, err := d.Get("zzqx")
	require.ErrorIs(t, err, ErrUnknownToken)
	assert.Contains(t, err.Error(), `"zzqx"`)

	_, ok := d.Lookup("Monday")
	assert.False(t, ok, "lookups are case-sensitive")
}

func TestDictionary_AreTokensValid(t *testing.T) {
	d := newTestDictionary(t, loadEnglish(t), nil)

	tests := []struct {
		tokens []string
		want   bool
	}{
		{nil, true},
		{[]string{"3"}, true},
		{[]string{"zzqx"}, false},
		{[]string{"till date"}, true},
		{[]string{"Last Year"}, true},
		{[]string{"3", " ", "days", " ", "ago"}, true},
		{[]string{"3", "fortnights"}, false},
		{[]string{"t"}, true},
	}

	for _, tt := range tests {
		if got := d.AreTokensValid(tt.tokens); got != tt.want {
			t.Errorf("AreTokensValid(%q) = %v, want %v", tt.tokens, got, tt.want)
		}
	}
}

func TestDictionary_SplitRelative(t *testing.T) {
	d := newTestDictionary(t, loadEnglish(t), nil)

	got := d.SplitRelative("meet me tomorrow at noon", false)
	assert.Equal(t, []string{"meet me ", "tomorrow", " at noon"}, got)
	assert.Equal(t, "meet me tomorrow at noon", strings.Join(got, ""))

	unit, ok := d.Relative().Lookup("till date")
	require.True(t, ok)
	assert.Equal(t, "0 day ago", unit)
}

func TestDictionary_Words(t *testing.T) {
	d := newTestDictionary(t, loadEnglish(t), nil)

	words := d.Words()
	require.NotEmpty(t, words)
	assert.Equal(t, "september", words[0])
	assert.True(t, slices.Contains(words, "t"))

	words[0] = "mutated"
	assert.Equal(t, "september", d.Words()[0])
}

func TestNewNormalized(t *testing.T) {
	info := &locale.Info{
		Name: "fr",
		Skip: []string{"le"},
		Words: map[locale.Class][]string{
			locale.February: {"février", "févr"},
			locale.March:    {"ｍａｒｓ"},
		},
	}
	raw := newTestDictionary(t, info, nil)

	cache := pattern.NewCache()
	d, err := NewNormalized(info, nil, WithCache(cache))
	require.NoError(t, err)

	assert.Equal(t, string(table.FormNFKC), d.Key().Variant)
	assert.NotEqual(t, raw.Key(), d.Key())
	assert.True(t, d.Contains("mars"))
	assert.False(t, d.Contains("ｍａｒｓ"))
	assert.True(t, raw.Contains("ｍａｒｓ"))
	assert.True(t, d.Contains("février"), "NFKC keeps accents")

	input := d.Normalize("le 3 ｍａｒｓ")
	assert.Equal(t, "le 3 mars", input)
	assert.Equal(t, []string{"le", " ", "3", " ", "mars"}, d.Split(input, false))

	fold, err := NewNormalized(info, nil, WithCache(cache), WithNormalizationForm(table.FormFoldMarks))
	require.NoError(t, err)
	assert.Equal(t, string(table.FormFoldMarks), fold.Key().Variant)
	assert.True(t, fold.Contains("fevrier"))
	assert.False(t, fold.Contains("février"))

	input = fold.Normalize("le 15 février")
	assert.Equal(t, "le 15 fevrier", input)
	assert.Equal(t, []string{"le", " ", "15", " ", "fevrier"}, fold.Split(input, false))

	assert.Equal(t, 2, cache.Len())
}

func TestNewNormalized_LogsDrops(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	info := &locale.Info{
		Name: "x",
		Words: map[locale.Class][]string{
			locale.Monday: {"monday", "ｍｏｎｄａｙ"},
		},
	}
	d, err := NewNormalized(info, nil, WithCache(pattern.NewCache()), WithLogger(logger))
	require.NoError(t, err)

	assert.True(t, d.Contains("monday"))
	assert.Contains(t, buf.String(), "normalization dropped entry")
	assert.Contains(t, buf.String(), "entry=ｍｏｎｄａｙ")
}

func TestDictionary_SharesCacheEntries(t *testing.T) {
	cache := pattern.NewCache()
	info := loadEnglish(t)

	a := newTestDictionary(t, info, nil, WithCache(cache))
	b := newTestDictionary(t, info, nil, WithCache(cache))
	strict, err := settings.Load("testdata/settings/strict.toml")
	require.NoError(t, err)
	c := newTestDictionary(t, info, strict, WithCache(cache))

	a.Split("monday", false)
	b.Split("monday", false)
	assert.Equal(t, 1, cache.Len())

	c.Split("monday", false)
	assert.Equal(t, 2, cache.Len())
	assert.True(t, c.Contains("foo"))
}

func TestDictionary_ConcurrentUse(t *testing.T) {
	d := newTestDictionary(t, loadEnglish(t), nil)
	want := []string{"3", " ", "days", " ", "ago"}

	var wg sync.WaitGroup
	results := make([][]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.Split("3 days ago", true)
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}
