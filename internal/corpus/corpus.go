// Package corpus loads golden tokenization cases and checks a dictionary
// against them.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects the operation a corpus exercises.
type Mode string

const (
	// ModeSplit checks Split without formatting.
	ModeSplit Mode = "split"
	// ModeSplitKeep checks Split with formatting kept.
	ModeSplitKeep Mode = "split-keep"
	// ModeRelative checks SplitRelative.
	ModeRelative Mode = "relative"
)

// NoTokens marks a case whose expected output is empty.
const NoTokens = "!"

var (
	// ErrMissingLocale indicates a corpus header without a Locale line.
	ErrMissingLocale = errors.New("corpus: missing Locale in header")
	// ErrUnknownMode indicates an unsupported Mode header value.
	ErrUnknownMode = errors.New("corpus: unknown mode")
	// ErrMalformedCase indicates a case line without a tab separator.
	ErrMalformedCase = errors.New("corpus: malformed case")
)

// Header contains metadata parsed from the corpus file header.
type Header struct {
	Locale   string
	Settings string
	Mode     Mode
}

// Case is one input and its expected tokens.
type Case struct {
	Line  int
	Input string
	Want  []string
}

// Corpus is a parsed corpus file.
type Corpus struct {
	Path   string
	Header Header
	Cases  []Case
}

// ParseHeader extracts metadata from the leading comment block.
// Returns the header, the line number where the body starts, and any error.
func ParseHeader(text string) (Header, int, error) {
	h := Header{Mode: ModeSplit}
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	bodyStart := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNo++

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineNo
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Locale:"); ok {
			h.Locale = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Settings:"); ok {
			h.Settings = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Mode:"); ok {
			h.Mode = Mode(strings.TrimSpace(value))
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, 0, fmt.Errorf("scan header: %w", err)
	}

	if h.Locale == "" {
		return Header{}, 0, ErrMissingLocale
	}
	switch h.Mode {
	case ModeSplit, ModeSplitKeep, ModeRelative:
	default:
		return Header{}, 0, fmt.Errorf("%w: %q", ErrUnknownMode, h.Mode)
	}

	return h, bodyStart, nil
}

// Parse reads a corpus from text. Case lines are "input<TAB>tok|tok|...";
// NoTokens in place of the token list expects no tokens. Blank lines and
// lines starting with '#' are ignored.
func Parse(text string) (*Corpus, error) {
	header, bodyStart, err := ParseHeader(text)
	if err != nil {
		return nil, err
	}

	c := &Corpus{Header: header}
	if bodyStart == 0 {
		return c, nil
	}

	lines := strings.Split(text, "\n")
	for i := bodyStart - 1; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		input, expected, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedCase, i+1)
		}

		var want []string
		if expected != NoTokens {
			want = strings.Split(expected, "|")
		}
		c.Cases = append(c.Cases, Case{Line: i + 1, Input: input, Want: want})
	}

	return c, nil
}

// Load reads and parses a corpus file. Locale and Settings paths in the
// header are resolved relative to the file's directory.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	c.Path = path
	c.Header.Locale = resolve(dir, c.Header.Locale)
	c.Header.Settings = resolve(dir, c.Header.Settings)
	return c, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
