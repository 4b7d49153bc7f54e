package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesainslie/go-datetok/locale"
)

func TestSplitRelative(t *testing.T) {
	c, _ := compileFor(t, englishInfo(), nil)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"no relative", "monday", []string{"monday"}},
		{"delimiters kept", "see you tomorrow now", []string{"see you ", "tomorrow", " ", "now", ""}},
		{"whole input", "Yesterday", []string{"", "Yesterday", ""}},
		{"inside a word", "snow", []string{"snow"}},
		{"invalid utf-8 kept", "\xfftomorrow\xfe", []string{"\xff", "tomorrow", "\xfe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRelative(c, tt.input, false))
		})
	}
}

func TestSplitRelative_KeepFormattingIsInert(t *testing.T) {
	c, _ := compileFor(t, englishInfo(), nil)

	for _, input := range []string{"see you tomorrow, now!", "  today  "} {
		kept := SplitRelative(c, input, true)
		assert.Equal(t, kept, SplitRelative(c, input, false))
		assert.Equal(t, input, strings.Join(kept, ""))
	}
}

func TestSplitRelative_NoWordSpacing(t *testing.T) {
	c, _ := compileFor(t, japaneseInfo(), nil)

	assert.Equal(t, []string{"", "昨日", "の朝"}, SplitRelative(c, "昨日の朝", false))
	assert.Equal(t, []string{"", "今日", "は"}, SplitRelative(c, "今日は", false))
}

func TestSplitRelative_NoRelativeStrings(t *testing.T) {
	c, _ := compileFor(t, &locale.Info{Name: "bare"}, nil)

	assert.Equal(t, []string{"tomorrow"}, SplitRelative(c, "tomorrow", false))
	assert.Equal(t, []string{"x"}, SplitRelative(nil, "x", false))
}
