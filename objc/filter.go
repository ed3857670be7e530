package objc

import (
	"path"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Filter decides which declarations are kept. Patterns use path.Match
// syntax against full names; full names hold no '/', so "demo.*" keeps every
// declaration of package demo, nested ones included. A Filter without
// patterns keeps everything.
type Filter struct {
	patterns []string
}

func NewFilter(patterns ...string) *Filter {
	return &Filter{patterns: patterns}
}

func (f *Filter) Keep(name protoreflect.FullName) bool {
	if f == nil || len(f.patterns) == 0 {
		return true
	}
	for _, pattern := range f.patterns {
		if ok, err := path.Match(pattern, string(name)); err == nil && ok {
			return true
		}
	}
	return false
}

// Options configures a generation pass.
type Options struct {
	Filter *Filter
}
