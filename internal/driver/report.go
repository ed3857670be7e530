package driver

import (
	"bytes"
	"slices"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/reflect/protoreflect"
	"gopkg.in/yaml.v3"

	"github.com/goatx/protoc-gen-objc/objc"
)

// Dependencies returns the sorted class names that the messages of file
// and of everything it imports refer to.
func Dependencies(file protoreflect.FileDescriptor, opts objc.Options) []string {
	deps := make(map[string]struct{})
	objc.NewFileGenerator(file, opts).DetermineDependencies(deps)

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type FieldsReport struct {
	File      string          `yaml:"file"`
	RootClass string          `yaml:"root_class"`
	Messages  []MessageReport `yaml:"messages"`
}

type MessageReport struct {
	Class  string        `yaml:"class"`
	Fields []FieldReport `yaml:"fields,omitempty"`
}

type FieldReport struct {
	Name      string            `yaml:"name"`
	Number    int32             `yaml:"number"`
	Variables map[string]string `yaml:"variables"`
}

// Fields lists the generator variables of every field of every message in
// file, nested messages after their parent.
func Fields(file protoreflect.FileDescriptor, opts objc.Options) *FieldsReport {
	g := objc.NewFileGenerator(file, opts)
	report := &FieldsReport{File: file.Path(), RootClass: g.RootClassName()}

	var walk func(mg *objc.MessageGenerator)
	walk = func(mg *objc.MessageGenerator) {
		mr := MessageReport{Class: mg.ClassName()}
		for _, fg := range mg.FieldGenerators() {
			mr.Fields = append(mr.Fields, FieldReport{
				Name:      string(fg.Descriptor().Name()),
				Number:    int32(fg.Descriptor().Number()),
				Variables: fg.Variables(),
			})
		}
		report.Messages = append(report.Messages, mr)
		for _, nested := range mg.MessageGenerators() {
			walk(nested)
		}
	}
	for _, mg := range g.MessageGenerators() {
		walk(mg)
	}
	return report
}

// YAML encodes r with two-space indentation.
func (r *FieldsReport) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, errors.Wrap(err, "failed to encode fields report")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode fields report")
	}
	return buf.Bytes(), nil
}
