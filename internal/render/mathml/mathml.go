// Package mathml builds the MathML fragments that represent a single problem.
package mathml

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/aalvaropc/mathsheets/internal/domain"
)

// MinusSign is the negation marker placed in front of a negative magnitude.
const MinusSign = "−"

type Attr struct {
	Name  string
	Value string
}

// Node is a MathML element. It renders itself as a templ.Component.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Node
}

var _ templ.Component = Node{}

func El(tag string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

func Text(tag string, text string, attrs ...Attr) Node {
	return Node{Tag: tag, Attrs: attrs, Text: text}
}

func (n Node) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ew := &errWriter{w: w}
	ew.write("<" + n.Tag)
	for _, a := range n.Attrs {
		ew.write(" " + a.Name + `="` + templ.EscapeString(a.Value) + `"`)
	}
	ew.write(">")
	if n.Text != "" {
		ew.write(templ.EscapeString(n.Text))
	}
	if ew.err != nil {
		return ew.err
	}
	for _, c := range n.Children {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	ew.write("</" + n.Tag + ">")
	return ew.err
}

// Operand renders x as <mn>, preceded by a prefix minus when x is negative.
func Operand(x int) []Node {
	if x < 0 {
		return []Node{
			Text("mo", MinusSign, Attr{Name: "form", Value: "prefix"}),
			Text("mn", magnitude(x)),
		}
	}
	return []Node{Text("mn", strconv.Itoa(x))}
}

// Operator renders the infix glyph of op.
func Operator(op domain.Operator) Node {
	return Text("mo", op.Glyph(), Attr{Name: "form", Value: "infix"})
}

// Equation returns the display-style fragment for "A op B".
func Equation(p domain.Problem) Node {
	row := make([]Node, 0, 5)
	row = append(row, Operand(p.A)...)
	row = append(row, Operator(p.Op))
	row = append(row, Operand(p.B)...)

	return El("div", nil,
		El("math", nil,
			El("mstyle", []Attr{{Name: "displaystyle", Value: "true"}},
				El("mrow", nil, row...),
			),
		),
	)
}

// magnitude formats |x| without overflowing on math.MinInt.
func magnitude(x int) string {
	return strconv.FormatUint(uint64(-int64(x)), 10)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
