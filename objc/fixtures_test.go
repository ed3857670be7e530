package objc

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

const extensionSet = `
file {
  name: "base.proto"
  package: "demo"
  message_type {
    name: "Base"
    extension_range { start: 100 end: 200 }
  }
}
file {
  name: "empty.proto"
  package: "demo"
}
file {
  name: "ext.proto"
  package: "demo"
  dependency: "base.proto"
  extension {
    name: "tag"
    number: 100
    label: LABEL_OPTIONAL
    type: TYPE_STRING
    extendee: ".demo.Base"
  }
}
file {
  name: "nested_ext.proto"
  package: "demo"
  dependency: "base.proto"
  message_type {
    name: "Holder"
    extension {
      name: "nested_count"
      number: 101
      label: LABEL_OPTIONAL
      type: TYPE_INT32
      extendee: ".demo.Base"
      default_value: "7"
    }
  }
}
file {
  name: "user.proto"
  package: "demo"
  dependency: "base.proto"
  message_type {
    name: "User"
  }
}
file {
  name: "lonely.proto"
  package: "demo"
  dependency: "empty.proto"
  message_type {
    name: "Lonely"
  }
}
`

const diamondSet = `
file {
  name: "d.proto"
  package: "demo"
  message_type { name: "D" }
}
file {
  name: "b.proto"
  package: "demo"
  dependency: "d.proto"
  message_type {
    name: "B"
    field { name: "d" number: 1 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".demo.D" }
  }
}
file {
  name: "c.proto"
  package: "demo"
  dependency: "d.proto"
  message_type {
    name: "C"
    field { name: "d" number: 1 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".demo.D" }
  }
}
file {
  name: "a.proto"
  package: "demo"
  dependency: "b.proto"
  dependency: "c.proto"
  message_type {
    name: "A"
    field { name: "b" number: 1 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".demo.B" }
    field { name: "c" number: 2 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".demo.C" }
  }
}
`

const kindsSet = `
file {
  name: "kinds.proto"
  package: "demo"
  syntax: "proto3"
  enum_type {
    name: "Color"
    value { name: "COLOR_UNSPECIFIED" number: 0 }
    value { name: "COLOR_RED" number: 1 }
  }
  message_type { name: "Other" }
  message_type {
    name: "Holder"
    field { name: "i32" number: 1 label: LABEL_OPTIONAL type: TYPE_INT32 }
    field { name: "u32" number: 2 label: LABEL_OPTIONAL type: TYPE_UINT32 }
    field { name: "i64" number: 3 label: LABEL_OPTIONAL type: TYPE_INT64 }
    field { name: "u64" number: 4 label: LABEL_OPTIONAL type: TYPE_UINT64 }
    field { name: "f" number: 5 label: LABEL_OPTIONAL type: TYPE_FLOAT }
    field { name: "d" number: 6 label: LABEL_OPTIONAL type: TYPE_DOUBLE }
    field { name: "b" number: 7 label: LABEL_OPTIONAL type: TYPE_BOOL }
    field { name: "s" number: 8 label: LABEL_OPTIONAL type: TYPE_STRING }
    field { name: "y" number: 9 label: LABEL_OPTIONAL type: TYPE_BYTES }
    field { name: "e" number: 10 label: LABEL_OPTIONAL type: TYPE_ENUM type_name: ".demo.Color" }
    field { name: "m" number: 11 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".demo.Other" }
    field { name: "ri32" number: 21 label: LABEL_REPEATED type: TYPE_SINT32 }
    field { name: "ru32" number: 22 label: LABEL_REPEATED type: TYPE_FIXED32 }
    field { name: "ri64" number: 23 label: LABEL_REPEATED type: TYPE_SFIXED64 }
    field { name: "ru64" number: 24 label: LABEL_REPEATED type: TYPE_UINT64 }
    field { name: "rf" number: 25 label: LABEL_REPEATED type: TYPE_FLOAT }
    field { name: "rd" number: 26 label: LABEL_REPEATED type: TYPE_DOUBLE }
    field { name: "rb" number: 27 label: LABEL_REPEATED type: TYPE_BOOL }
    field { name: "rs" number: 28 label: LABEL_REPEATED type: TYPE_STRING }
    field { name: "ry" number: 29 label: LABEL_REPEATED type: TYPE_BYTES }
    field { name: "re" number: 30 label: LABEL_REPEATED type: TYPE_ENUM type_name: ".demo.Color" }
    field { name: "rm" number: 31 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".demo.Other" }
    field { name: "labels" number: 40 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".demo.Holder.LabelsEntry" }
    nested_type {
      name: "LabelsEntry"
      field { name: "key" number: 1 label: LABEL_OPTIONAL type: TYPE_STRING }
      field { name: "value" number: 2 label: LABEL_OPTIONAL type: TYPE_INT32 }
      options { map_entry: true }
    }
  }
}
`

// fakeFile stands in for descriptors protodesc refuses to link, such as
// import cycles. Only the methods used by FileGenerator are provided.
type fakeFile struct {
	protoreflect.FileDescriptor
	path    string
	imports []protoreflect.FileDescriptor
}

func (f *fakeFile) Path() string { return f.path }

func (*fakeFile) Options() protoreflect.ProtoMessage { return nil }

func (f *fakeFile) Imports() protoreflect.FileImports { return fakeImports{files: f.imports} }

func (*fakeFile) Enums() protoreflect.EnumDescriptors { return emptyEnums{} }

func (*fakeFile) Messages() protoreflect.MessageDescriptors { return emptyMessages{} }

func (*fakeFile) Extensions() protoreflect.ExtensionDescriptors { return emptyExtensions{} }

type fakeImports struct {
	protoreflect.FileImports
	files []protoreflect.FileDescriptor
}

func (i fakeImports) Len() int { return len(i.files) }
func (i fakeImports) Get(n int) protoreflect.FileImport {
	return protoreflect.FileImport{FileDescriptor: i.files[n]}
}

type emptyEnums struct{ protoreflect.EnumDescriptors }

func (emptyEnums) Len() int { return 0 }

type emptyMessages struct{ protoreflect.MessageDescriptors }

func (emptyMessages) Len() int { return 0 }

type emptyExtensions struct{ protoreflect.ExtensionDescriptors }

func (emptyExtensions) Len() int { return 0 }
