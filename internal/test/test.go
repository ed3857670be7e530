package test

import (
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/tools/txtar"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

func FixtureDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

// ReadArchive parses a txtar fixture from testdata.
func ReadArchive(t *testing.T, name string) *txtar.Archive {
	t.Helper()
	path := filepath.Join(FixtureDir(t), name)
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read archive %s: %v", path, err)
	}
	return ar
}

// ArchiveFile returns the contents of the named member of ar.
func ArchiveFile(t *testing.T, ar *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("archive has no member %s", name)
	return ""
}

// DescriptorSet parses a FileDescriptorSet written in protobuf text format.
func DescriptorSet(t *testing.T, textproto string) *descriptorpb.FileDescriptorSet {
	t.Helper()
	set := &descriptorpb.FileDescriptorSet{}
	if err := prototext.Unmarshal([]byte(textproto), set); err != nil {
		t.Fatalf("failed to parse descriptor set: %v", err)
	}
	return set
}

// Files links a FileDescriptorSet written in protobuf text format.
func Files(t *testing.T, textproto string) *protoregistry.Files {
	t.Helper()
	files, err := protodesc.NewFiles(DescriptorSet(t, textproto))
	if err != nil {
		t.Fatalf("failed to link descriptor set: %v", err)
	}
	return files
}

// File links textproto and returns the file registered under path.
func File(t *testing.T, textproto, path string) protoreflect.FileDescriptor {
	t.Helper()
	fd, err := Files(t, textproto).FindFileByPath(path)
	if err != nil {
		t.Fatalf("failed to find %s: %v", path, err)
	}
	return fd
}
