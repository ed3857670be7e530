package objc

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goatx/protoc-gen-objc/internal/naming"
)

// primitiveTypeName is the Objective-C type of a scalar, string or bytes
// value. Messages have no primitive name.
func primitiveTypeName(field protoreflect.FieldDescriptor) string {
	switch t := objcTypeOf(field); t {
	case objcTypeInt32:
		return "int32_t"
	case objcTypeUInt32:
		return "uint32_t"
	case objcTypeInt64:
		return "int64_t"
	case objcTypeUInt64:
		return "uint64_t"
	case objcTypeFloat:
		return "float"
	case objcTypeDouble:
		return "double"
	case objcTypeBoolean:
		return "BOOL"
	case objcTypeString:
		return "NSString"
	case objcTypeData:
		return "NSData"
	case objcTypeEnum:
		return "int32_t"
	case objcTypeMessage:
		return ""
	default:
		panic(fmt.Sprintf("INVALID FIELD KIND: %v", t))
	}
}

// primitiveArrayTypeName is the packed array specialization for a repeated
// element, or "" when the element lives in a plain NSMutableArray.
func primitiveArrayTypeName(field protoreflect.FieldDescriptor) string {
	switch t := objcTypeOf(field); t {
	case objcTypeInt32:
		return "Int32"
	case objcTypeUInt32:
		return "UInt32"
	case objcTypeInt64:
		return "Int64"
	case objcTypeUInt64:
		return "UInt64"
	case objcTypeFloat:
		return "Float"
	case objcTypeDouble:
		return "Double"
	case objcTypeBoolean:
		return "Bool"
	case objcTypeString, objcTypeData, objcTypeMessage:
		return ""
	case objcTypeEnum:
		return "Enum"
	default:
		panic(fmt.Sprintf("INVALID FIELD KIND: %v", t))
	}
}

func setPrimitiveVariables(field protoreflect.FieldDescriptor, vars map[string]string) {
	name := primitiveTypeName(field)
	vars["type"] = name
	vars["storage_type"] = name
}

// PrimitiveFieldGenerator handles singular numeric and bool fields.
type PrimitiveFieldGenerator struct {
	singleFieldGenerator
}

func NewPrimitiveFieldGenerator(field protoreflect.FieldDescriptor) *PrimitiveFieldGenerator {
	g := &PrimitiveFieldGenerator{singleFieldGenerator: newSingleFieldGenerator(field)}
	setPrimitiveVariables(field, g.variables)
	return g
}

// PrimitiveObjFieldGenerator handles singular string and bytes fields, which
// are held as immutable objects and copied on assignment.
type PrimitiveObjFieldGenerator struct {
	objCObjFieldGenerator
}

func NewPrimitiveObjFieldGenerator(field protoreflect.FieldDescriptor) *PrimitiveObjFieldGenerator {
	g := &PrimitiveObjFieldGenerator{objCObjFieldGenerator: newObjCObjFieldGenerator(field)}
	setPrimitiveVariables(field, g.variables)
	g.variables["property_storage_attribute"] = "copy"
	return g
}

// RepeatedPrimitiveFieldGenerator handles repeated and map fields of every kind.
type RepeatedPrimitiveFieldGenerator struct {
	repeatedFieldGenerator
}

func NewRepeatedPrimitiveFieldGenerator(field protoreflect.FieldDescriptor) *RepeatedPrimitiveFieldGenerator {
	g := &RepeatedPrimitiveFieldGenerator{repeatedFieldGenerator: newRepeatedFieldGenerator(field)}
	element := elementDescriptor(field)
	setPrimitiveVariables(element, g.variables)

	switch objcTypeOf(element) {
	case objcTypeEnum:
		g.variables["type"] = naming.ClassName(element.Enum())
	case objcTypeMessage:
		name := naming.ClassName(element.Message())
		g.variables["type"] = name
		g.variables["storage_type"] = name
	}

	switch base := primitiveArrayTypeName(element); {
	case field.IsMap():
		g.variables["array_storage_type"] = "NSMutableDictionary"
	case base != "":
		g.variables["array_storage_type"] = "GPB" + base + "Array"
	default:
		g.variables["array_storage_type"] = "NSMutableArray"
	}
	return g
}

func (g *RepeatedPrimitiveFieldGenerator) FinishInitialization() {
	g.repeatedFieldGenerator.FinishInitialization()
	if objcTypeOf(elementDescriptor(g.descriptor)).isPrimitive() {
		// The array type already names the element.
		g.variables["array_comment"] = ""
	}
}
