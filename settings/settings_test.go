package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, DefaultProfile, s.Profile)
	assert.Equal(t, []string{"t"}, s.SkipTokens())
	require.NoError(t, s.Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSkip  []string
		wantLevel slog.Level
		profile   string
	}{
		{
			name:      "empty keeps defaults",
			input:     "",
			wantSkip:  []string{"t"},
			wantLevel: slog.LevelInfo,
			profile:   DefaultProfile,
		},
		{
			name:      "full profile",
			input:     "profile = \"strict\"\nskip_tokens = [\"t\", \"foo\"]\nlog_level = \"DEBUG\"\n",
			wantSkip:  []string{"t", "foo"},
			wantLevel: slog.LevelDebug,
			profile:   "strict",
		},
		{
			name:      "duplicates and blanks dropped",
			input:     "skip_tokens = [\"foo\", \"\", \"foo\", \"bar\"]\n",
			wantSkip:  []string{"foo", "bar"},
			wantLevel: slog.LevelInfo,
			profile:   DefaultProfile,
		},
		{
			name:      "blank profile falls back",
			input:     "profile = \"  \"\n",
			wantSkip:  []string{"t"},
			wantLevel: slog.LevelInfo,
			profile:   DefaultProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.profile, s.Profile)
			assert.Equal(t, tt.wantSkip, s.SkipTokens())

			level, err := s.Level()
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("log_level = \"loud\"\n"))
	require.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = Parse([]byte("unknown_field = 1\n"))
	require.Error(t, err)

	_, err = Parse([]byte("profile = \n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	s, err := Load("../testdata/settings/strict.toml")
	require.NoError(t, err)
	assert.Equal(t, "strict", s.Profile)
	assert.Equal(t, []string{"t", "foo"}, s.SkipTokens())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistryKey(t *testing.T) {
	base := Settings{Profile: "p", Skip: []string{"a", "b"}}

	assert.Equal(t, base.RegistryKey(), Settings{Profile: "p", Skip: []string{"b", "a"}}.RegistryKey(),
		"skip order must not matter")
	assert.Equal(t, base.RegistryKey(), Settings{Profile: "p", Skip: []string{"a", "b", "a"}}.RegistryKey(),
		"duplicates must not matter")
	assert.NotEqual(t, base.RegistryKey(), Settings{Profile: "p", Skip: []string{"a"}}.RegistryKey())
	assert.NotEqual(t, base.RegistryKey(), Settings{Profile: "q", Skip: []string{"a", "b"}}.RegistryKey())
	assert.Equal(t, Settings{Skip: []string{"t"}}.RegistryKey(), Default().RegistryKey())
	assert.Contains(t, base.RegistryKey(), "p:")
}

func TestSkipTokens_ReturnsCopy(t *testing.T) {
	s := Settings{Skip: []string{"foo"}}
	got := s.SkipTokens()
	got[0] = "bar"
	assert.Equal(t, []string{"foo"}, s.Skip)
}
