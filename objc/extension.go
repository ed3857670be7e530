package objc

import (
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goatx/protoc-gen-objc/internal/naming"
)

type ExtensionGenerator struct {
	descriptor    protoreflect.ExtensionDescriptor
	singletonName string
	isFiltered    bool
}

func NewExtensionGenerator(ext protoreflect.ExtensionDescriptor, opts Options) *ExtensionGenerator {
	return &ExtensionGenerator{
		descriptor:    ext,
		singletonName: naming.ExtensionName(ext),
		isFiltered:    !opts.Filter.Keep(ext.FullName()),
	}
}

func (g *ExtensionGenerator) SingletonName() string {
	return g.singletonName
}

func (g *ExtensionGenerator) IsFiltered() bool {
	return g.isFiltered
}

// GenerateStaticVariablesInitialization emits the extension's entry of the
// registry description table. It reports whether an entry was written.
func (g *ExtensionGenerator) GenerateStaticVariablesInitialization(p *Printer) bool {
	if g.isFiltered {
		return false
	}

	ext := g.descriptor
	vars := map[string]string{
		"singleton_name":  g.singletonName,
		"extended_type":   naming.ClassName(ext.ContainingMessage()),
		"number":          strconv.Itoa(int(ext.Number())),
		"extension_type":  dataTypeName(ext.Kind()),
		"type":            "Nil",
		"enum_descriptor": "NULL",
		"options":         extensionOptions(ext),
	}
	switch objcTypeOf(ext) {
	case objcTypeMessage:
		vars["type"] = "GPBStringifySymbol(" + naming.ClassName(ext.Message()) + ")"
	case objcTypeEnum:
		vars["enum_descriptor"] = naming.ClassName(ext.Enum()) + "_EnumDescriptor"
	}
	vars["default_name"], vars["default"] = extensionDefault(ext)

	p.Print(vars,
		"{\n"+
			"  .defaultValue.$default_name$ = $default$,\n"+
			"  .singletonName = GPBStringifySymbol($singleton_name$),\n"+
			"  .extendedClass.clazz = GPBStringifySymbol($extended_type$),\n"+
			"  .messageOrGroupClass.clazz = $type$,\n"+
			"  .enumDescriptorFunc = $enum_descriptor$,\n"+
			"  .fieldNumber = $number$,\n"+
			"  .dataType = GPBDataType$extension_type$,\n"+
			"  .options = $options$,\n"+
			"},\n")
	return true
}

func extensionOptions(ext protoreflect.ExtensionDescriptor) string {
	var opts []string
	if ext.IsList() {
		opts = append(opts, "GPBExtensionRepeated")
		if ext.IsPacked() {
			opts = append(opts, "GPBExtensionPacked")
		}
	}
	if len(opts) == 0 {
		return "GPBExtensionNone"
	}
	return strings.Join(opts, " | ")
}

// extensionDefault returns the union member and literal of the default value.
func extensionDefault(ext protoreflect.ExtensionDescriptor) (string, string) {
	if ext.IsList() {
		return "valueMessage", "nil"
	}

	def := ext.Default()
	switch t := objcTypeOf(ext); t {
	case objcTypeInt32:
		return "valueInt32", strconv.FormatInt(def.Int(), 10)
	case objcTypeUInt32:
		return "valueUInt32", strconv.FormatUint(def.Uint(), 10) + "U"
	case objcTypeInt64:
		return "valueInt64", strconv.FormatInt(def.Int(), 10) + "LL"
	case objcTypeUInt64:
		return "valueUInt64", strconv.FormatUint(def.Uint(), 10) + "ULL"
	case objcTypeFloat:
		return "valueFloat", floatLiteral(def.Float(), 32)
	case objcTypeDouble:
		return "valueDouble", floatLiteral(def.Float(), 64)
	case objcTypeBoolean:
		if def.Bool() {
			return "valueBool", "YES"
		}
		return "valueBool", "NO"
	case objcTypeString:
		return "valueString", "nil"
	case objcTypeData:
		return "valueData", "nil"
	case objcTypeEnum:
		return "valueEnum", naming.EnumValueName(ext.DefaultEnumValue())
	default:
		return "valueMessage", "nil"
	}
}

func floatLiteral(v float64, bits int) string {
	switch {
	case math.IsInf(v, 1):
		return "INFINITY"
	case math.IsInf(v, -1):
		return "-INFINITY"
	case math.IsNaN(v):
		return "NAN"
	}
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	if bits == 32 {
		s += "f"
	}
	return s
}
