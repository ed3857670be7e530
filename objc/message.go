package objc

import (
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goatx/protoc-gen-objc/internal/naming"
)

type MessageGenerator struct {
	descriptor    protoreflect.MessageDescriptor
	rootClassName string
	className     string
	isFiltered    bool

	fieldGenerators     []FieldGenerator
	enumGenerators      []*EnumGenerator
	extensionGenerators []*ExtensionGenerator
	messageGenerators   []*MessageGenerator
}

// NewMessageGenerator builds the generators of msg and, recursively, of its
// nested declarations. Map entry types are represented by dictionaries and
// get no class of their own.
func NewMessageGenerator(rootClassName string, msg protoreflect.MessageDescriptor, opts Options) *MessageGenerator {
	g := &MessageGenerator{
		descriptor:    msg,
		rootClassName: rootClassName,
		className:     naming.ClassName(msg),
		isFiltered:    !opts.Filter.Keep(msg.FullName()),
	}

	fields := msg.Fields()
	for i := 0; i < fields.Len(); i++ {
		g.fieldGenerators = append(g.fieldGenerators, NewFieldGenerator(fields.Get(i)))
	}
	enums := msg.Enums()
	for i := 0; i < enums.Len(); i++ {
		g.enumGenerators = append(g.enumGenerators, NewEnumGenerator(enums.Get(i), opts))
	}
	extensions := msg.Extensions()
	for i := 0; i < extensions.Len(); i++ {
		g.extensionGenerators = append(g.extensionGenerators, NewExtensionGenerator(extensions.Get(i), opts))
	}
	messages := msg.Messages()
	for i := 0; i < messages.Len(); i++ {
		nested := messages.Get(i)
		if nested.IsMapEntry() {
			continue
		}
		g.messageGenerators = append(g.messageGenerators, NewMessageGenerator(rootClassName, nested, opts))
	}
	return g
}

func (g *MessageGenerator) ClassName() string {
	return g.className
}

func (g *MessageGenerator) FieldGenerators() []FieldGenerator {
	return g.fieldGenerators
}

// MessageGenerators returns the generators of nested messages.
func (g *MessageGenerator) MessageGenerators() []*MessageGenerator {
	return g.messageGenerators
}

func (g *MessageGenerator) IsFiltered() bool {
	return g.isFiltered
}

// IsSubContentFiltered reports whether every nested message and extension
// is filtered out as well.
func (g *MessageGenerator) IsSubContentFiltered() bool {
	for _, ext := range g.extensionGenerators {
		if !ext.IsFiltered() {
			return false
		}
	}
	for _, msg := range g.messageGenerators {
		if !msg.IsFiltered() || !msg.IsSubContentFiltered() {
			return false
		}
	}
	return true
}

// DetermineDependencies adds the class names of message and enum types
// referenced by this message's fields, and by those of nested messages.
func (g *MessageGenerator) DetermineDependencies(deps map[string]struct{}) {
	for _, fg := range g.fieldGenerators {
		element := elementDescriptor(fg.Descriptor())
		var name string
		switch objcTypeOf(element) {
		case objcTypeMessage:
			name = naming.ClassName(element.Message())
		case objcTypeEnum:
			name = naming.ClassName(element.Enum())
		default:
			continue
		}
		if name != g.className {
			deps[name] = struct{}{}
		}
	}
	for _, msg := range g.messageGenerators {
		msg.DetermineDependencies(deps)
	}
}

// GenerateStaticVariablesInitialization emits registry entries for the
// extensions declared inside this message and its nested messages.
func (g *MessageGenerator) GenerateStaticVariablesInitialization(p *Printer) bool {
	generated := false
	for _, ext := range g.extensionGenerators {
		if ext.GenerateStaticVariablesInitialization(p) {
			generated = true
		}
	}
	for _, msg := range g.messageGenerators {
		if msg.GenerateStaticVariablesInitialization(p) {
			generated = true
		}
	}
	return generated
}

// GenerateSource emits the class implementation followed by nested enums
// and nested messages.
func (g *MessageGenerator) GenerateSource(p *Printer) {
	if !g.isFiltered {
		g.generateClass(p)
	}
	for _, enum := range g.enumGenerators {
		if !enum.IsFiltered() {
			enum.GenerateSource(p)
		}
	}
	for _, msg := range g.messageGenerators {
		msg.GenerateSource(p)
	}
}

func (g *MessageGenerator) generateClass(p *Printer) {
	vars := map[string]string{
		"classname":       g.className,
		"root_class_name": g.rootClassName,
		"has_storage":     strconv.Itoa((len(g.fieldGenerators) + 31) / 32),
	}

	p.Print(vars,
		"#pragma mark - $classname$\n"+
			"\n"+
			"@implementation $classname$\n"+
			"\n")

	if len(g.fieldGenerators) > 0 {
		for _, fg := range g.fieldGenerators {
			p.Print(map[string]string{"name": fg.Variable("name")}, "@dynamic $name$;\n")
		}
		p.Write("\n")
	}

	p.Print(vars,
		"typedef struct $classname$__storage_ {\n"+
			"  uint32_t _has_storage_[$has_storage$];\n")
	p.Indent()
	for _, fg := range g.fieldGenerators {
		fg.GenerateFieldStorageDeclaration(p)
	}
	p.Outdent()
	p.Print(vars,
		"} $classname$__storage_;\n"+
			"\n"+
			"// This method is threadsafe because it is initially called\n"+
			"// in +initialize for each subclass.\n"+
			"+ (GPBDescriptor *)descriptor {\n"+
			"  static GPBDescriptor *descriptor = nil;\n"+
			"  if (!descriptor) {\n")

	p.Indent()
	p.Indent()
	if len(g.fieldGenerators) > 0 {
		vars["fields"] = "fields"
		vars["field_count"] = "(uint32_t)(sizeof(fields) / sizeof(GPBMessageFieldDescription))"
		p.Write("static GPBMessageFieldDescription fields[] = {\n")
		p.Indent()
		for _, fg := range g.fieldGenerators {
			fg.GenerateFieldDescription(p)
		}
		p.Outdent()
		p.Write("};\n")
	} else {
		vars["fields"] = "NULL"
		vars["field_count"] = "0"
	}
	p.Print(vars,
		"GPBDescriptor *localDescriptor =\n"+
			"    [GPBDescriptor allocDescriptorForClass:[$classname$ class]\n"+
			"                                 rootClass:[$root_class_name$ class]\n"+
			"                                      file:$root_class_name$_FileDescriptor()\n"+
			"                                    fields:$fields$\n"+
			"                                fieldCount:$field_count$\n"+
			"                               storageSize:sizeof($classname$__storage_)\n"+
			"                                     flags:0];\n"+
			"descriptor = localDescriptor;\n")
	p.Outdent()
	p.Outdent()

	p.Write(
		"  }\n" +
			"  return descriptor;\n" +
			"}\n" +
			"\n" +
			"@end\n" +
			"\n")
}
