package locale

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a locale document in the date parser's YAML layout.
func ParseYAML(data []byte) (*Info, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrMissingName
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing locale: %w", err)
	}

	info, err := FromMap(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing locale: %w", err)
	}
	return info, nil
}

// LoadYAML reads and decodes a YAML locale file.
func LoadYAML(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading locale file: %w", err)
	}
	return ParseYAML(data)
}
