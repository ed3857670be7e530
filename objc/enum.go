package objc

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goatx/protoc-gen-objc/internal/naming"
)

type EnumGenerator struct {
	descriptor protoreflect.EnumDescriptor
	name       string
	isFiltered bool
}

func NewEnumGenerator(enum protoreflect.EnumDescriptor, opts Options) *EnumGenerator {
	return &EnumGenerator{
		descriptor: enum,
		name:       naming.ClassName(enum),
		isFiltered: !opts.Filter.Keep(enum.FullName()),
	}
}

func (g *EnumGenerator) Name() string {
	return g.name
}

func (g *EnumGenerator) IsFiltered() bool {
	return g.isFiltered
}

// GenerateSource emits the enum descriptor accessor and the value validator.
func (g *EnumGenerator) GenerateSource(p *Printer) {
	vars := map[string]string{"name": g.name}

	p.Print(vars,
		"#pragma mark - Enum $name$\n"+
			"\n"+
			"GPBEnumDescriptor *$name$_EnumDescriptor(void) {\n"+
			"  static GPBEnumDescriptor *descriptor = NULL;\n"+
			"  if (!descriptor) {\n")
	p.Indent()
	p.Indent()

	values := g.descriptor.Values()
	p.Write("static GPBMessageEnumValueDescription values[] = {\n")
	p.Indent()
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		p.Print(map[string]string{
			"short_name": naming.EnumValueShortName(v),
			"value_name": naming.EnumValueName(v),
		}, "{ .name = \"$short_name$\", .number = $value_name$ },\n")
	}
	p.Outdent()
	p.Write("};\n")
	p.Print(vars,
		"descriptor = [GPBEnumDescriptor allocDescriptorForName:GPBNSStringifySymbol($name$)\n"+
			"                                               values:values\n"+
			"                                           valueCount:sizeof(values) / sizeof(GPBMessageEnumValueDescription)\n"+
			"                                         enumVerifier:$name$_IsValidValue];\n")

	p.Outdent()
	p.Outdent()
	p.Print(vars,
		"  }\n"+
			"  return descriptor;\n"+
			"}\n"+
			"\n"+
			"BOOL $name$_IsValidValue(int32_t value__) {\n"+
			"  switch (value__) {\n")

	p.Indent()
	p.Indent()
	seen := make(map[protoreflect.EnumNumber]struct{}, values.Len())
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		// Aliases share a number and would repeat a case label.
		if _, ok := seen[v.Number()]; ok {
			continue
		}
		seen[v.Number()] = struct{}{}
		p.Print(map[string]string{"value_name": naming.EnumValueName(v)}, "case $value_name$:\n")
	}
	p.Outdent()
	p.Outdent()

	p.Write(
		"      return YES;\n" +
			"    default:\n" +
			"      return NO;\n" +
			"  }\n" +
			"}\n" +
			"\n")
}
