// Package settings holds the configuration profile that partitions the
// compiled pattern cache and supplies the extra always-skip tokens.
package settings

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultProfile names the profile used when none is configured.
const DefaultProfile = "default"

// ErrInvalidLogLevel indicates a log_level value slog cannot parse.
var ErrInvalidLogLevel = errors.New("settings: invalid log level")

// Settings is a configuration profile.
type Settings struct {
	// Profile is a human-readable profile name; it prefixes the registry key.
	Profile string `toml:"profile"`
	// Skip lists strings always treated as recognized, valueless tokens.
	Skip []string `toml:"skip_tokens"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the stock profile. Its only skip token is "t", the ISO 8601
// date/time separator.
func Default() Settings {
	return Settings{
		Profile:  DefaultProfile,
		Skip:     []string{"t"},
		LogLevel: "info",
	}
}

// Parse decodes a TOML profile on top of Default.
func Parse(data []byte) (*Settings, error) {
	s := Default()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a TOML profile from path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// Validate checks fields that cannot be normalized away.
func (s Settings) Validate() error {
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (s Settings) Level() (slog.Level, error) {
	var level slog.Level
	if s.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
	}
	return level, nil
}

// SkipTokens returns the extra always-skip strings.
func (s Settings) SkipTokens() []string {
	return slices.Clone(s.Skip)
}

// RegistryKey identifies everything in the profile that changes a token
// table: the profile name plus a digest of the skip tokens. Profiles that
// share a name but differ in skip tokens never share compiled patterns.
func (s Settings) RegistryKey() string {
	tokens := slices.Clone(s.Skip)
	slices.Sort(tokens)
	tokens = slices.Compact(tokens)

	sum := sha256.Sum256([]byte(strings.Join(tokens, "\x00")))
	profile := s.Profile
	if profile == "" {
		profile = DefaultProfile
	}
	return profile + ":" + hex.EncodeToString(sum[:6])
}

func (s *Settings) normalize() {
	s.Profile = strings.TrimSpace(s.Profile)
	if s.Profile == "" {
		s.Profile = DefaultProfile
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))

	seen := make(map[string]struct{}, len(s.Skip))
	skip := s.Skip[:0]
	for _, token := range s.Skip {
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		skip = append(skip, token)
	}
	s.Skip = skip
}
