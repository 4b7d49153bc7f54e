package locale

import (
	"path/filepath"
	"strings"
)

// Load picks a decoder from the file extension: .pb and .binpb are protobuf
// snapshots, anything else is treated as YAML.
func Load(path string) (*Info, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".binpb":
		return LoadProto(path)
	default:
		return LoadYAML(path)
	}
}
