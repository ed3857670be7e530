// Package objc generates Objective-C protocol buffer sources from linked
// protobuf descriptors.
package objc

import (
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goatx/protoc-gen-objc/internal/naming"
)

// GenVersion must match GOOGLE_PROTOBUF_OBJC_GEN_VERSION in the runtime's
// GPBBootstrap.h. Generated sources refuse to compile against another version.
const GenVersion = 30000

// SourceSuffix is appended to naming.FilePath to name a generated source.
const SourceSuffix = ".pbobjc.m"

// FileGenerator generates the source of one .proto file. Child generators
// for the file's own declarations are built eagerly; generators for imported
// files are built on first use and cached.
type FileGenerator struct {
	file          protoreflect.FileDescriptor
	opts          Options
	rootClassName string

	isFiltered            bool
	allExtensionsFiltered bool

	enumGenerators      []*EnumGenerator
	messageGenerators   []*MessageGenerator
	extensionGenerators []*ExtensionGenerator

	dependenciesBuilt    bool
	dependencyGenerators []*FileGenerator
	dependencyByPath     map[string]*FileGenerator
}

func NewFileGenerator(file protoreflect.FileDescriptor, opts Options) *FileGenerator {
	g := &FileGenerator{
		file:                  file,
		opts:                  opts,
		rootClassName:         naming.RootClassName(file),
		isFiltered:            true,
		allExtensionsFiltered: true,
	}

	// Enums do not take part in the filtering decision.
	enums := file.Enums()
	for i := 0; i < enums.Len(); i++ {
		g.enumGenerators = append(g.enumGenerators, NewEnumGenerator(enums.Get(i), opts))
	}

	messages := file.Messages()
	for i := 0; i < messages.Len(); i++ {
		mg := NewMessageGenerator(g.rootClassName, messages.Get(i), opts)
		g.isFiltered = g.isFiltered && mg.IsFiltered() && mg.IsSubContentFiltered()
		g.messageGenerators = append(g.messageGenerators, mg)
	}

	extensions := file.Extensions()
	for i := 0; i < extensions.Len(); i++ {
		eg := NewExtensionGenerator(extensions.Get(i), opts)
		g.isFiltered = g.isFiltered && eg.IsFiltered()
		g.allExtensionsFiltered = g.allExtensionsFiltered && eg.IsFiltered()
		g.extensionGenerators = append(g.extensionGenerators, eg)
	}

	return g
}

func (g *FileGenerator) File() protoreflect.FileDescriptor {
	return g.file
}

func (g *FileGenerator) RootClassName() string {
	return g.rootClassName
}

// Path is the output base path of the file, without suffix.
func (g *FileGenerator) Path() string {
	return naming.FilePath(g.file)
}

// IsFiltered reports whether the file generates nothing beyond its header comment.
func (g *FileGenerator) IsFiltered() bool {
	return g.isFiltered
}

func (g *FileGenerator) AllExtensionsFiltered() bool {
	return g.allExtensionsFiltered
}

func (g *FileGenerator) EnumGenerators() []*EnumGenerator {
	return g.enumGenerators
}

func (g *FileGenerator) MessageGenerators() []*MessageGenerator {
	return g.messageGenerators
}

func (g *FileGenerator) ExtensionGenerators() []*ExtensionGenerator {
	return g.extensionGenerators
}

// DetermineDependencies walks the import graph depth-first and adds the
// type dependencies of every message in every reachable file to deps. Each
// file is visited once no matter how often it is imported. It returns the
// number of distinct files visited, this file included.
func (g *FileGenerator) DetermineDependencies(deps map[string]struct{}) int {
	seen := make(map[string]struct{})
	g.determineDependencies(deps, seen, g.file)
	return len(seen)
}

func (g *FileGenerator) determineDependencies(deps, seen map[string]struct{}, file protoreflect.FileDescriptor) {
	if _, ok := seen[file.Path()]; ok {
		return
	}
	seen[file.Path()] = struct{}{}

	imports := file.Imports()
	for i := 0; i < imports.Len(); i++ {
		g.determineDependencies(deps, seen, imports.Get(i).FileDescriptor)
	}

	messages := file.Messages()
	if messages.Len() == 0 {
		return
	}
	rootClassName := naming.RootClassName(file)
	for i := 0; i < messages.Len(); i++ {
		NewMessageGenerator(rootClassName, messages.Get(i), g.opts).DetermineDependencies(deps)
	}
}

// DependencyGenerators returns one generator per direct import, in import
// order. They are built on the first call and reused afterwards; their own
// imports are left alone until asked for.
func (g *FileGenerator) DependencyGenerators() []*FileGenerator {
	if g.dependenciesBuilt {
		return g.dependencyGenerators
	}
	g.dependenciesBuilt = true

	imports := g.file.Imports()
	g.dependencyByPath = make(map[string]*FileGenerator, imports.Len())
	for i := 0; i < imports.Len(); i++ {
		dep := imports.Get(i).FileDescriptor
		if _, ok := g.dependencyByPath[dep.Path()]; ok {
			continue
		}
		dg := NewFileGenerator(dep, g.opts)
		g.dependencyByPath[dep.Path()] = dg
		g.dependencyGenerators = append(g.dependencyGenerators, dg)
	}
	return g.dependencyGenerators
}

// GenerateSource writes the whole .pbobjc.m unit to p.
func (g *FileGenerator) GenerateSource(p *Printer) {
	p.Print(map[string]string{"filename": g.file.Path()},
		"// Generated by the protocol buffer compiler.  DO NOT EDIT!\n"+
			"// source: $filename$\n"+
			"\n")

	if g.isFiltered {
		return
	}

	p.Print(map[string]string{"version": strconv.Itoa(GenVersion)},
		"#import \"GPBProtocolBuffers_RuntimeSupport.h\"\n"+
			"\n"+
			"#if GOOGLE_PROTOBUF_OBJC_GEN_VERSION != $version$\n"+
			"#error This file was generated by a different version of protoc which is incompatible with your Protocol Buffer library sources.\n"+
			"#endif\n"+
			"\n")

	vars := map[string]string{
		"header_file":     g.Path() + ".pbobjc.h",
		"root_class_name": g.rootClassName,
		"package":         string(g.file.Package()),
		"syntax":          syntaxTag(g.file.Syntax()),
	}
	p.Print(vars,
		"#import \"$header_file$\"\n"+
			"\n"+
			"#pragma mark - $root_class_name$\n"+
			"\n"+
			"@implementation $root_class_name$\n"+
			"\n")

	if registry, ok := g.extensionRegistryInitialization(); ok {
		p.Write(
			"+ (GPBExtensionRegistry*)extensionRegistry {\n" +
				"  // This is called by +initialize so there is no need to worry\n" +
				"  // about thread safety and initialization of registry.\n" +
				"  static GPBExtensionRegistry* registry = nil;\n" +
				"  if (!registry) {\n" +
				"    registry = [[GPBExtensionRegistry alloc] init];\n")
		p.Indent()
		p.Indent()
		p.Write(registry)
		p.Outdent()
		p.Outdent()
		p.Write(
			"  }\n" +
				"  return registry;\n" +
				"}\n" +
				"\n" +
				"+ (void)load {\n" +
				"  @autoreleasepool {\n" +
				"    [self extensionRegistry]; // Construct extension registry.\n" +
				"  }\n" +
				"}\n" +
				"\n")
	} else {
		p.Write(
			"// No extensions in the file and none of the imports (direct or indirect)\n" +
				"// defined extensions, so no need to generate +extensionRegistry.\n" +
				"\n")
	}

	p.Write("@end\n\n")

	p.Print(vars,
		"static GPBFileDescriptor *$root_class_name$_FileDescriptor(void) {\n"+
			"  // This is called by +initialize so there is no need to worry\n"+
			"  // about thread safety of the singleton.\n"+
			"  static GPBFileDescriptor *descriptor = NULL;\n"+
			"  if (!descriptor) {\n"+
			"    descriptor = [[GPBFileDescriptor alloc] initWithPackage:@\"$package$\"\n"+
			"                                                     syntax:$syntax$];\n"+
			"  }\n"+
			"  return descriptor;\n"+
			"}\n"+
			"\n")

	for _, enum := range g.enumGenerators {
		if !enum.IsFiltered() {
			enum.GenerateSource(p)
		}
	}
	for _, msg := range g.messageGenerators {
		msg.GenerateSource(p)
	}
}

// extensionRegistryInitialization renders the body of +extensionRegistry
// into a side buffer. ok reports whether anything was registered: an own
// extension, a nested extension, or a non-filtered direct import.
func (g *FileGenerator) extensionRegistryInitialization() (body string, ok bool) {
	if len(g.extensionGenerators)+len(g.messageGenerators)+g.file.Imports().Len() == 0 {
		return "", false
	}

	descriptions := NewPrinter()
	descriptions.Indent()
	registered := false
	for _, ext := range g.extensionGenerators {
		if ext.GenerateStaticVariablesInitialization(descriptions) {
			registered = true
		}
	}
	for _, msg := range g.messageGenerators {
		if msg.GenerateStaticVariablesInitialization(descriptions) {
			registered = true
		}
	}

	buf := NewPrinter()
	if registered {
		buf.Write("static GPBExtensionDescription descriptions[] = {\n")
		buf.Write(descriptions.String())
		buf.Write(
			"};\n" +
				"for (size_t i = 0; i < sizeof(descriptions) / sizeof(descriptions[0]); ++i) {\n" +
				"  GPBExtensionDescriptor *extension =\n" +
				"      [[GPBExtensionDescriptor alloc] initWithExtensionDescription:&descriptions[i]];\n" +
				"  [registry addExtension:extension];\n" +
				"  [self globallyRegisterExtension:extension];\n" +
				"  [extension release];\n" +
				"}\n")
	}

	for _, dep := range g.DependencyGenerators() {
		if dep.IsFiltered() {
			continue
		}
		buf.Print(map[string]string{"dependency": dep.RootClassName()},
			"[registry addExtensions:[$dependency$ extensionRegistry]];\n")
		registered = true
	}

	return buf.String(), registered
}

func syntaxTag(syntax protoreflect.Syntax) string {
	switch syntax {
	case protoreflect.Proto2:
		return "GPBFileSyntaxProto2"
	case protoreflect.Proto3:
		return "GPBFileSyntaxProto3"
	default:
		return "GPBFileSyntaxUnknown"
	}
}
