package locale

import (
	"fmt"
	"os"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// UnmarshalProto decodes a locale stored as a binary google.protobuf.Struct.
func UnmarshalProto(data []byte) (*Info, error) {
	var doc structpb.Struct
	if err := proto.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing protobuf: %w", err)
	}

	info, err := FromMap(doc.AsMap())
	if err != nil {
		return nil, fmt.Errorf("parsing locale: %w", err)
	}
	return info, nil
}

// LoadProto reads a locale snapshot written by MarshalProto.
func LoadProto(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading locale file: %w", err)
	}
	return UnmarshalProto(data)
}

// MarshalProto encodes info as a binary google.protobuf.Struct. Snapshots
// load without a YAML parser and keep the same document layout.
func MarshalProto(info *Info) ([]byte, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	doc, err := structpb.NewStruct(ToMap(info))
	if err != nil {
		return nil, fmt.Errorf("building struct: %w", err)
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding protobuf: %w", err)
	}
	return data, nil
}
