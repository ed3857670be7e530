package objc

import (
	"fmt"
	"maps"
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goatx/protoc-gen-objc/internal/naming"
)

// objcType is the closed set of storage kinds a field can map to.
type objcType int

const (
	objcTypeInt32 objcType = iota
	objcTypeUInt32
	objcTypeInt64
	objcTypeUInt64
	objcTypeFloat
	objcTypeDouble
	objcTypeBoolean
	objcTypeString
	objcTypeData
	objcTypeEnum
	objcTypeMessage
)

func objcTypeOf(field protoreflect.FieldDescriptor) objcType {
	return objcTypeForKind(field.Kind())
}

func objcTypeForKind(kind protoreflect.Kind) objcType {
	switch kind {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return objcTypeInt32
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return objcTypeUInt32
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return objcTypeInt64
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return objcTypeUInt64
	case protoreflect.FloatKind:
		return objcTypeFloat
	case protoreflect.DoubleKind:
		return objcTypeDouble
	case protoreflect.BoolKind:
		return objcTypeBoolean
	case protoreflect.StringKind:
		return objcTypeString
	case protoreflect.BytesKind:
		return objcTypeData
	case protoreflect.EnumKind:
		return objcTypeEnum
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return objcTypeMessage
	}
	panic(fmt.Sprintf("INVALID FIELD KIND: %v", kind))
}

// isPrimitive reports whether t is a pure scalar with a packed array type.
func (t objcType) isPrimitive() bool {
	switch t {
	case objcTypeInt32, objcTypeUInt32, objcTypeInt64, objcTypeUInt64,
		objcTypeFloat, objcTypeDouble, objcTypeBoolean:
		return true
	}
	return false
}

// dataTypeName is the GPBDataType suffix for kind.
func dataTypeName(kind protoreflect.Kind) string {
	switch kind {
	case protoreflect.Int32Kind:
		return "Int32"
	case protoreflect.Sint32Kind:
		return "SInt32"
	case protoreflect.Sfixed32Kind:
		return "SFixed32"
	case protoreflect.Uint32Kind:
		return "UInt32"
	case protoreflect.Fixed32Kind:
		return "Fixed32"
	case protoreflect.Int64Kind:
		return "Int64"
	case protoreflect.Sint64Kind:
		return "SInt64"
	case protoreflect.Sfixed64Kind:
		return "SFixed64"
	case protoreflect.Uint64Kind:
		return "UInt64"
	case protoreflect.Fixed64Kind:
		return "Fixed64"
	case protoreflect.FloatKind:
		return "Float"
	case protoreflect.DoubleKind:
		return "Double"
	case protoreflect.BoolKind:
		return "Bool"
	case protoreflect.StringKind:
		return "String"
	case protoreflect.BytesKind:
		return "Bytes"
	case protoreflect.EnumKind:
		return "Enum"
	case protoreflect.MessageKind:
		return "Message"
	case protoreflect.GroupKind:
		return "Group"
	}
	panic(fmt.Sprintf("INVALID FIELD KIND: %v", kind))
}

// elementDescriptor is the descriptor whose kind decides storage: the value
// of a map field, the field itself otherwise.
func elementDescriptor(field protoreflect.FieldDescriptor) protoreflect.FieldDescriptor {
	if field.IsMap() {
		return field.MapValue()
	}
	return field
}

// FieldGenerator emits the per-field pieces of a message body. Its variables
// are fixed once construction and FinishInitialization are done.
type FieldGenerator interface {
	Descriptor() protoreflect.FieldDescriptor
	Variable(name string) string
	Variables() map[string]string
	FinishInitialization()
	GenerateFieldStorageDeclaration(p *Printer)
	GenerateFieldDescription(p *Printer)
}

// NewFieldGenerator picks the generator variant for field.
func NewFieldGenerator(field protoreflect.FieldDescriptor) FieldGenerator {
	var g FieldGenerator
	if field.IsList() || field.IsMap() {
		g = NewRepeatedPrimitiveFieldGenerator(field)
	} else {
		switch t := objcTypeOf(field); t {
		case objcTypeInt32, objcTypeUInt32, objcTypeInt64, objcTypeUInt64,
			objcTypeFloat, objcTypeDouble, objcTypeBoolean:
			g = NewPrimitiveFieldGenerator(field)
		case objcTypeString, objcTypeData:
			g = NewPrimitiveObjFieldGenerator(field)
		case objcTypeEnum:
			g = NewEnumFieldGenerator(field)
		case objcTypeMessage:
			g = NewMessageFieldGenerator(field)
		default:
			panic(fmt.Sprintf("INVALID FIELD KIND: %v", t))
		}
	}
	g.FinishInitialization()
	return g
}

type fieldGenerator struct {
	descriptor protoreflect.FieldDescriptor
	variables  map[string]string
}

func newFieldGenerator(field protoreflect.FieldDescriptor) fieldGenerator {
	g := fieldGenerator{
		descriptor: field,
		variables:  make(map[string]string),
	}
	setCommonFieldVariables(field, g.variables)
	return g
}

func setCommonFieldVariables(field protoreflect.FieldDescriptor, vars map[string]string) {
	className := naming.ClassName(field.ContainingMessage())
	capitalized := naming.CapitalizedFieldName(field)
	element := elementDescriptor(field)

	vars["classname"] = className
	vars["name"] = naming.FieldName(field)
	vars["capitalized_name"] = capitalized
	vars["raw_field_name"] = string(field.Name())
	vars["number"] = strconv.Itoa(int(field.Number()))
	vars["field_number_name"] = className + "_FieldNumber_" + capitalized
	vars["field_type"] = dataTypeName(element.Kind())

	switch {
	case field.IsMap():
		vars["has_index"] = "GPBNoHasBit"
		vars["fieldflags"] = "GPBFieldMapKey" + dataTypeName(field.MapKey().Kind())
	case field.IsList():
		vars["has_index"] = "GPBNoHasBit"
		vars["fieldflags"] = "GPBFieldRepeated"
		if field.IsPacked() {
			vars["fieldflags"] += " | GPBFieldPacked"
		}
	case field.Cardinality() == protoreflect.Required:
		vars["has_index"] = strconv.Itoa(field.Index())
		vars["fieldflags"] = "GPBFieldRequired"
	default:
		vars["has_index"] = strconv.Itoa(field.Index())
		vars["fieldflags"] = "GPBFieldOptional"
	}

	switch objcTypeOf(element) {
	case objcTypeMessage:
		vars["dataTypeSpecific_name"] = "className"
		vars["dataTypeSpecific_value"] = "GPBStringifySymbol(" + naming.ClassName(element.Message()) + ")"
	case objcTypeEnum:
		vars["dataTypeSpecific_name"] = "enumDescFunc"
		vars["dataTypeSpecific_value"] = naming.ClassName(element.Enum()) + "_EnumDescriptor"
	default:
		vars["dataTypeSpecific_name"] = "className"
		vars["dataTypeSpecific_value"] = "NULL"
	}
}

func (g *fieldGenerator) Descriptor() protoreflect.FieldDescriptor {
	return g.descriptor
}

func (g *fieldGenerator) Variable(name string) string {
	return g.variables[name]
}

func (g *fieldGenerator) Variables() map[string]string {
	return maps.Clone(g.variables)
}

func (*fieldGenerator) FinishInitialization() {}

func (g *fieldGenerator) GenerateFieldDescription(p *Printer) {
	p.Print(g.variables,
		"{\n"+
			"  .name = \"$name$\",\n"+
			"  .dataTypeSpecific.$dataTypeSpecific_name$ = $dataTypeSpecific_value$,\n"+
			"  .number = $field_number_name$,\n"+
			"  .hasIndex = $has_index$,\n"+
			"  .offset = (uint32_t)offsetof($classname$__storage_, $name$),\n"+
			"  .flags = $fieldflags$,\n"+
			"  .dataType = GPBDataType$field_type$,\n"+
			"},\n")
}

// singleFieldGenerator stores an unboxed value.
type singleFieldGenerator struct {
	fieldGenerator
}

func newSingleFieldGenerator(field protoreflect.FieldDescriptor) singleFieldGenerator {
	return singleFieldGenerator{fieldGenerator: newFieldGenerator(field)}
}

func (g *singleFieldGenerator) GenerateFieldStorageDeclaration(p *Printer) {
	p.Print(g.variables, "$storage_type$ $name$;\n")
}

// objCObjFieldGenerator stores a singular value as an object reference.
type objCObjFieldGenerator struct {
	singleFieldGenerator
}

func newObjCObjFieldGenerator(field protoreflect.FieldDescriptor) objCObjFieldGenerator {
	g := objCObjFieldGenerator{singleFieldGenerator: newSingleFieldGenerator(field)}
	g.variables["property_storage_attribute"] = "strong"
	return g
}

func (g *objCObjFieldGenerator) GenerateFieldStorageDeclaration(p *Printer) {
	p.Print(g.variables, "$storage_type$ *$name$;\n")
}

// repeatedFieldGenerator stores a collection object.
type repeatedFieldGenerator struct {
	fieldGenerator
}

func newRepeatedFieldGenerator(field protoreflect.FieldDescriptor) repeatedFieldGenerator {
	return repeatedFieldGenerator{fieldGenerator: newFieldGenerator(field)}
}

func (g *repeatedFieldGenerator) FinishInitialization() {
	g.variables["array_comment"] = substitute(g.variables, "// |$name$| contains |$type$|\n")
}

func (g *repeatedFieldGenerator) GenerateFieldStorageDeclaration(p *Printer) {
	p.Print(g.variables, "$array_comment$$array_storage_type$ *$name$;\n")
}

// EnumFieldGenerator handles singular enum fields.
type EnumFieldGenerator struct {
	singleFieldGenerator
}

func NewEnumFieldGenerator(field protoreflect.FieldDescriptor) *EnumFieldGenerator {
	g := &EnumFieldGenerator{singleFieldGenerator: newSingleFieldGenerator(field)}
	name := naming.ClassName(field.Enum())
	g.variables["type"] = name
	g.variables["storage_type"] = name
	return g
}

// MessageFieldGenerator handles singular message and group fields.
type MessageFieldGenerator struct {
	objCObjFieldGenerator
}

func NewMessageFieldGenerator(field protoreflect.FieldDescriptor) *MessageFieldGenerator {
	g := &MessageFieldGenerator{objCObjFieldGenerator: newObjCObjFieldGenerator(field)}
	name := naming.ClassName(field.Message())
	g.variables["type"] = name
	g.variables["storage_type"] = name
	return g
}
