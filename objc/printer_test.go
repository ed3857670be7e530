package objc

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{
			name: "substitutes variables",
			print: func(p *Printer) {
				p.Print(map[string]string{"name": "Foo", "kind": "class"}, "@$kind$ $name$;\n")
			},
			want: "@class Foo;\n",
		},
		{
			name: "double dollar is literal",
			print: func(p *Printer) {
				p.Print(nil, "cost: $$5\n")
			},
			want: "cost: $5\n",
		},
		{
			name: "indents non-empty lines only",
			print: func(p *Printer) {
				p.Write("{\n")
				p.Indent()
				p.Write("a;\n\nb;\n")
				p.Outdent()
				p.Write("}\n")
			},
			want: "{\n  a;\n\n  b;\n}\n",
		},
		{
			name: "continues a partial line without indenting again",
			print: func(p *Printer) {
				p.Indent()
				p.Write("int32_t ")
				p.Write("value;\n")
			},
			want: "  int32_t value;\n",
		},
		{
			name: "indents substituted multi-line values",
			print: func(p *Printer) {
				p.Indent()
				p.Print(map[string]string{"comment": "// note\n"}, "$comment$int x;\n")
			},
			want: "  // note\n  int x;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPrinter()
			tt.print(p)
			if diff := cmp.Diff(tt.want, p.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrinter_WriteTo(t *testing.T) {
	t.Parallel()

	p := NewPrinter()
	p.Write("hello\n")

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != 6 || buf.String() != "hello\n" {
		t.Errorf("WriteTo() wrote %d bytes %q", n, buf.String())
	}
}

func TestPrinter_Panics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(p *Printer)
	}{
		{"missing variable", func(p *Printer) { p.Print(map[string]string{}, "$missing$") }},
		{"unterminated variable", func(p *Printer) { p.Print(map[string]string{}, "$open") }},
		{"outdent below zero", func(p *Printer) { p.Outdent() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.fn(NewPrinter())
		})
	}
}
