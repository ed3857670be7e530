package objc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goatx/protoc-gen-objc/internal/test"
)

func TestMessageGenerator(t *testing.T) {
	t.Parallel()

	file := test.File(t, `file {
		name: "tree.proto"
		package: "demo"
		message_type {
			name: "Node"
			field { name: "parent" number: 1 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".demo.Node" }
			field { name: "kind" number: 2 label: LABEL_OPTIONAL type: TYPE_ENUM type_name: ".demo.Node.Kind" }
			field { name: "leaves" number: 3 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".demo.Node.Leaf" }
			enum_type { name: "Kind" value { name: "KIND_BRANCH" number: 0 } value { name: "KIND_LEAF" number: 1 } }
			nested_type {
				name: "Leaf"
				field { name: "label" number: 1 label: LABEL_OPTIONAL type: TYPE_STRING }
				field { name: "weight" number: 2 label: LABEL_REQUIRED type: TYPE_DOUBLE }
			}
		}
	}`, "tree.proto")

	g := NewMessageGenerator("TreeRoot", file.Messages().ByName("Node"), Options{})

	t.Run("dependencies skip self references", func(t *testing.T) {
		t.Parallel()

		deps := make(map[string]struct{})
		g.DetermineDependencies(deps)
		want := map[string]struct{}{"Node_Kind": {}, "Node_Leaf": {}}
		if diff := cmp.Diff(want, deps); diff != "" {
			t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("source", func(t *testing.T) {
		t.Parallel()

		p := NewPrinter()
		g.GenerateSource(p)
		got := p.String()

		for _, s := range []string{
			"@implementation Node\n\n@dynamic parent;\n@dynamic kind;\n@dynamic leavesArray;\n",
			"typedef struct Node__storage_ {\n  uint32_t _has_storage_[1];\n  Node *parent;\n  Node_Kind kind;\n" +
				"  // |leavesArray| contains |Node_Leaf|\n  NSMutableArray *leavesArray;\n} Node__storage_;\n",
			"        .dataTypeSpecific.enumDescFunc = Node_Kind_EnumDescriptor,\n",
			"                                     rootClass:[TreeRoot class]\n",
			"#pragma mark - Enum Node_Kind\n",
			"      { .name = \"Branch\", .number = Node_Kind_Branch },\n",
			"@implementation Node_Leaf\n",
			"        .flags = GPBFieldRequired,\n",
		} {
			if !strings.Contains(got, s) {
				t.Errorf("output does not contain %q:\n%s", s, got)
			}
		}

		order := []string{"@implementation Node\n", "Enum Node_Kind", "@implementation Node_Leaf\n"}
		last := -1
		for _, s := range order {
			i := strings.Index(got, s)
			if i < last {
				t.Errorf("%q is out of order", s)
			}
			last = i
		}
	})

	t.Run("empty message has no field table", func(t *testing.T) {
		t.Parallel()

		leafless := test.File(t, `file { name: "e.proto" message_type { name: "Empty" } }`, "e.proto")
		p := NewPrinter()
		NewMessageGenerator("ERoot", leafless.Messages().Get(0), Options{}).GenerateSource(p)
		got := p.String()

		if strings.Contains(got, "GPBMessageFieldDescription fields[]") {
			t.Error("empty message declared a field table")
		}
		if !strings.Contains(got, "fields:NULL\n") || !strings.Contains(got, "fieldCount:0\n") {
			t.Errorf("empty message does not pass a NULL field table:\n%s", got)
		}
	})
}

func TestEnumGenerator_GenerateSource(t *testing.T) {
	t.Parallel()

	file := test.File(t, `file {
		name: "color.proto"
		package: "demo"
		enum_type {
			name: "Color"
			options { allow_alias: true }
			value { name: "COLOR_RED" number: 0 }
			value { name: "COLOR_CRIMSON" number: 0 }
			value { name: "DARK_BLUE" number: 2 }
		}
	}`, "color.proto")

	p := NewPrinter()
	NewEnumGenerator(file.Enums().Get(0), Options{}).GenerateSource(p)

	want := `#pragma mark - Enum Color

GPBEnumDescriptor *Color_EnumDescriptor(void) {
  static GPBEnumDescriptor *descriptor = NULL;
  if (!descriptor) {
    static GPBMessageEnumValueDescription values[] = {
      { .name = "Red", .number = Color_Red },
      { .name = "Crimson", .number = Color_Crimson },
      { .name = "DarkBlue", .number = Color_DarkBlue },
    };
    descriptor = [GPBEnumDescriptor allocDescriptorForName:GPBNSStringifySymbol(Color)
                                                   values:values
                                               valueCount:sizeof(values) / sizeof(GPBMessageEnumValueDescription)
                                             enumVerifier:Color_IsValidValue];
  }
  return descriptor;
}

BOOL Color_IsValidValue(int32_t value__) {
  switch (value__) {
    case Color_Red:
    case Color_DarkBlue:
      return YES;
    default:
      return NO;
  }
}

`
	if diff := cmp.Diff(want, p.String()); diff != "" {
		t.Errorf("enum source mismatch (-want +got):\n%s", diff)
	}
}

func TestFloatLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    float64
		bits int
		want string
	}{
		{0, 32, "0.0f"},
		{1.5, 64, "1.5"},
		{3, 64, "3.0"},
		{1e21, 64, "1e+21"},
	}
	for _, tt := range tests {
		if got := floatLiteral(tt.v, tt.bits); got != tt.want {
			t.Errorf("floatLiteral(%v, %d) = %q, want %q", tt.v, tt.bits, got, tt.want)
		}
	}
}
