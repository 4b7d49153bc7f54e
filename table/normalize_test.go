package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-datetok/locale"
)

func TestForm_Apply(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		input string
		want  string
	}{
		{"none", FormNone, "ｍａｙ", "ｍａｙ"},
		{"nfkc fullwidth", FormNFKC, "ｍａｙ", "may"},
		{"nfkc keeps case", FormNFKC, "ＭＡＹ", "MAY"},
		{"nfkc composes", FormNFKC, "février", "février"},
		{"fold strips marks", FormFoldMarks, "février", "fevrier"},
		{"fold compatibility", FormFoldMarks, "ｍａｙ", "may"},
		{"ascii untouched", FormNFKC, "monday", "monday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Apply(tt.input)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseForm(t *testing.T) {
	for name, want := range map[string]Form{"": FormNone, "none": FormNone, "nfkc": FormNFKC, "fold": FormFoldMarks} {
		got, err := ParseForm(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseForm("nfd")
	require.ErrorIs(t, err, ErrUnknownForm)
}

func TestNormalize_RewritesNonColliding(t *testing.T) {
	info := &locale.Info{
		Name:  "x",
		Words: map[locale.Class][]string{locale.March: {"ｍａｒｃｈ"}},
	}

	out, dropped := Normalize(Build(info, nil), info, FormNFKC)

	assert.Empty(t, dropped)
	got, ok := out.Lookup("march")
	require.True(t, ok)
	assert.Equal(t, Value{Kind: Semantic, Text: "march"}, got)
	assert.False(t, out.Contains("ｍａｒｃｈ"))
}

func TestNormalize_SkipSurvivesCollision(t *testing.T) {
	info := &locale.Info{
		Name:    "x",
		Skip:    []string{"ｍａｙ"},
		Pertain: []string{"ｏｆ"},
		Words: map[locale.Class][]string{
			locale.May:   {"may"},
			locale.Month: {"of"},
		},
	}

	out, dropped := Normalize(Build(info, nil), info, FormNFKC)

	assert.Empty(t, dropped)
	got, ok := out.Lookup("may")
	require.True(t, ok)
	assert.Equal(t, Skip, got.Kind)

	got, ok = out.Lookup("of")
	require.True(t, ok)
	assert.Equal(t, Pertain, got.Kind)
}

func TestNormalize_DropsSemanticCollision(t *testing.T) {
	info := &locale.Info{
		Name: "x",
		Words: map[locale.Class][]string{
			locale.Monday:  {"monday", "ｍｏｎｄａｙ"},
			locale.Tuesday: {"ｍon"},
			locale.Month:   {"ｍｏｎ"},
		},
	}

	out, dropped := Normalize(Build(info, nil), info, FormNFKC)

	assert.ElementsMatch(t, []string{"ｍｏｎｄａｙ", "ｍｏｎ"}, dropped)
	assert.False(t, out.Contains("ｍｏｎｄａｙ"))

	got, ok := out.Lookup("monday")
	require.True(t, ok)
	assert.Equal(t, "monday", got.Text)

	// "ｍon" sorts before "ｍｏｎ", so it claims the shared slot.
	got, ok = out.Lookup("mon")
	require.True(t, ok)
	assert.Equal(t, "tuesday", got.Text)
}

func TestNormalize_Idempotent(t *testing.T) {
	info := &locale.Info{
		Name: "x",
		Skip: []string{"ｔｈｅ", "at"},
		Words: map[locale.Class][]string{
			locale.Monday:   {"monday", "ｍｏｎ"},
			locale.February: {"février"},
		},
	}

	for _, form := range []Form{FormNFKC, FormFoldMarks} {
		t.Run(string(form), func(t *testing.T) {
			once, _ := Normalize(Build(info, nil), info, form)
			twice, dropped := Normalize(once, info, form)

			assert.Empty(t, dropped)
			assert.Equal(t, once.Entries(), twice.Entries())
		})
	}
}

func TestNormalize_KeepsOverlay(t *testing.T) {
	info := &locale.Info{Name: "x"}
	out, _ := Normalize(Build(info, []string{"ｆｏｏ"}), info, FormNFKC)

	assert.True(t, out.Contains("ｆｏｏ"))
	assert.Equal(t, []string{"ｆｏｏ"}, out.Overlay())
}

func TestNormalize_FormNoneCopies(t *testing.T) {
	info := englishInfo()
	src := Build(info, nil)

	out, dropped := Normalize(src, info, FormNone)

	assert.Nil(t, dropped)
	assert.Equal(t, src.Entries(), out.Entries())
}

func TestNormalize_FoldMarks(t *testing.T) {
	info := &locale.Info{
		Name: "fr",
		Words: map[locale.Class][]string{
			locale.February: {"février", "févr"},
			locale.August:   {"août"},
		},
	}

	out, dropped := Normalize(Build(info, nil), info, FormFoldMarks)

	assert.Empty(t, dropped)
	for key, class := range map[string]string{"fevrier": "february", "fevr": "february", "aout": "august"} {
		got, ok := out.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, class, got.Text)
	}
}
