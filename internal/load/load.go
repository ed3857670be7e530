// Package load reads FileDescriptorSets and links them into descriptors.
package load

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

var (
	ErrUnknownFile       = errors.New("file not found in descriptor set")
	ErrUnsupportedFormat = errors.New("unsupported descriptor set format")
)

// DescriptorSet is a linked FileDescriptorSet. Paths keeps the order in
// which files appear in the set.
type DescriptorSet struct {
	Files *protoregistry.Files
	Paths []string
}

// Load reads the descriptor set at path. Binary sets use the .pb, .binpb,
// .desc or .protoset extension; text sets use .textproto or .txtpb.
func Load(path string) (*DescriptorSet, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve descriptor set path %s", path)
	}

	// #nosec G304 - the path is supplied by the user on the command line
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor set %s", abs)
	}

	set := &descriptorpb.FileDescriptorSet{}
	switch filepath.Ext(abs) {
	case ".pb", ".binpb", ".desc", ".protoset":
		err = proto.Unmarshal(data, set)
	case ".textproto", ".txtpb":
		err = prototext.Unmarshal(data, set)
	default:
		return nil, errors.WithHintf(
			errors.Wrapf(ErrUnsupportedFormat, "%s", abs),
			"use a binary (.pb, .binpb, .desc, .protoset) or text (.textproto, .txtpb) FileDescriptorSet")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode descriptor set %s", abs)
	}

	return FromSet(set)
}

// FromSet links set. Every import must be present in the set.
func FromSet(set *descriptorpb.FileDescriptorSet) (*DescriptorSet, error) {
	files, err := protodesc.NewFiles(set)
	if err != nil {
		return nil, errors.Wrap(err, "failed to link descriptor set")
	}

	paths := make([]string, 0, len(set.GetFile()))
	for _, f := range set.GetFile() {
		paths = append(paths, f.GetName())
	}
	return &DescriptorSet{Files: files, Paths: paths}, nil
}

// Lookup returns the named files in the given order. With no names it
// returns every file of the set in set order.
func (s *DescriptorSet) Lookup(names ...string) ([]protoreflect.FileDescriptor, error) {
	if len(names) == 0 {
		names = s.Paths
	}

	files := make([]protoreflect.FileDescriptor, 0, len(names))
	for _, name := range names {
		fd, err := s.Files.FindFileByPath(name)
		if err != nil {
			return nil, errors.Wrapf(ErrUnknownFile, "%s", name)
		}
		files = append(files, fd)
	}
	return files, nil
}
