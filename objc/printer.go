package objc

import (
	"fmt"
	"io"
	"strings"
)

const indentStep = "  "

// Printer accumulates generated text. Print substitutes $name$ variables and
// every non-empty line starts at the current indentation.
type Printer struct {
	buf         strings.Builder
	indent      string
	atLineStart bool
}

func NewPrinter() *Printer {
	return &Printer{atLineStart: true}
}

func (p *Printer) Indent() {
	p.indent += indentStep
}

func (p *Printer) Outdent() {
	if len(p.indent) < len(indentStep) {
		panic("INVALID PRINTER STATE: Outdent without matching Indent")
	}
	p.indent = p.indent[len(indentStep):]
}

// Print writes text after replacing each $name$ with vars[name]. "$$" emits a
// literal dollar sign. A variable missing from vars panics.
func (p *Printer) Print(vars map[string]string, text string) {
	p.Write(substitute(vars, text))
}

// Write emits text verbatim apart from indentation.
func (p *Printer) Write(text string) {
	for text != "" {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i+1]
		}
		if p.atLineStart && line != "\n" {
			p.buf.WriteString(p.indent)
		}
		p.buf.WriteString(line)
		p.atLineStart = strings.HasSuffix(line, "\n")
		text = text[len(line):]
	}
}

func (p *Printer) String() string {
	return p.buf.String()
}

func (p *Printer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.buf.String())
	return int64(n), err
}

func substitute(vars map[string]string, text string) string {
	if !strings.Contains(text, "$") {
		return text
	}

	var b strings.Builder
	for {
		start := strings.IndexByte(text, '$')
		if start < 0 {
			b.WriteString(text)
			return b.String()
		}
		end := strings.IndexByte(text[start+1:], '$')
		if end < 0 {
			panic(fmt.Sprintf("INVALID PRINTER TEMPLATE: unterminated variable in %q", text))
		}
		end += start + 1

		b.WriteString(text[:start])
		name := text[start+1 : end]
		if name == "" {
			b.WriteByte('$')
		} else {
			value, ok := vars[name]
			if !ok {
				panic(fmt.Sprintf("INVALID PRINTER VARIABLE: %s", name))
			}
			b.WriteString(value)
		}
		text = text[end+1:]
	}
}
