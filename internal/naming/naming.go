// Package naming derives Objective-C identifiers and output paths from
// protobuf descriptors.
package naming

import (
	"path"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/goatx/protoc-gen-objc/internal/strcase"
)

// ClassPrefix returns the file's objc_class_prefix option, or "" when unset.
func ClassPrefix(file protoreflect.FileDescriptor) string {
	opts, ok := file.Options().(*descriptorpb.FileOptions)
	if !ok || opts == nil {
		return ""
	}
	return opts.GetObjcClassPrefix()
}

// FileBaseName is the camel-cased file name without directory or extension.
func FileBaseName(file protoreflect.FileDescriptor) string {
	base := strings.TrimSuffix(path.Base(file.Path()), ".proto")
	return strcase.UnderscoresToCamelCase(base, true)
}

// FilePath is the output base path: the file's directory joined with FileBaseName.
func FilePath(file protoreflect.FileDescriptor) string {
	dir := path.Dir(file.Path())
	if dir == "." {
		return FileBaseName(file)
	}
	return dir + "/" + FileBaseName(file)
}

// RootClassName names the synthetic class hosting file-scoped accessors.
func RootClassName(file protoreflect.FileDescriptor) string {
	return ClassPrefix(file) + FileBaseName(file) + "Root"
}

// ClassName names a message or enum. Nested declarations are joined to their
// parents with underscores.
func ClassName(desc protoreflect.Descriptor) string {
	file := desc.ParentFile()
	name := string(desc.FullName())
	if pkg := string(file.Package()); pkg != "" {
		name = strings.TrimPrefix(name, pkg+".")
	}
	return ClassPrefix(file) + strings.ReplaceAll(name, ".", "_")
}

// ExtensionName names the singleton accessor of an extension. Top-level
// extensions hang off the root class, nested ones off their message.
func ExtensionName(ext protoreflect.ExtensionDescriptor) string {
	var scope string
	if msg, ok := ext.Parent().(protoreflect.MessageDescriptor); ok {
		scope = ClassName(msg)
	} else {
		scope = RootClassName(ext.ParentFile())
	}
	return scope + "_" + strcase.UnderscoresToCamelCase(string(ext.Name()), false)
}

// FieldName is the property name of a field. Repeated fields get an "Array"
// suffix and map fields a "Dictionary" suffix.
func FieldName(field protoreflect.FieldDescriptor) string {
	name := strcase.UnderscoresToCamelCase(string(field.Name()), false)
	switch {
	case field.IsMap():
		name += "Dictionary"
	case field.IsList():
		name += "Array"
	}
	return name
}

func CapitalizedFieldName(field protoreflect.FieldDescriptor) string {
	return strcase.UnderscoresToCamelCase(FieldName(field), true)
}

// EnumValueName names an enum constant, e.g. Color_Red.
func EnumValueName(value protoreflect.EnumValueDescriptor) string {
	return ClassName(value.Parent()) + "_" + EnumValueShortName(value)
}

// EnumValueShortName camel-cases a value name after dropping a leading copy
// of the enum's own name in SCREAMING_SNAKE form, so COLOR_RED in Color
// becomes Red.
func EnumValueShortName(value protoreflect.EnumValueDescriptor) string {
	raw := string(value.Name())
	if enum, ok := value.Parent().(protoreflect.EnumDescriptor); ok {
		prefix := strings.ToUpper(strcase.ToSnakeCase(string(enum.Name()))) + "_"
		if trimmed := strings.TrimPrefix(raw, prefix); trimmed != "" {
			raw = trimmed
		}
	}
	return strcase.UnderscoresToCamelCase(strings.ToLower(raw), true)
}
