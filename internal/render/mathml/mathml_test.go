package mathml

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/mathsheets/internal/domain"
)

func render(t *testing.T, n Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	return b.String()
}

func TestEquation_NegativeFirstOperand(t *testing.T) {
	got := render(t, Equation(domain.Problem{A: -5, B: 3, Op: domain.Add, Answer: -2}))
	want := `<div><math><mstyle displaystyle="true"><mrow>` +
		`<mo form="prefix">−</mo><mn>5</mn>` +
		`<mo form="infix">+</mo>` +
		`<mn>3</mn>` +
		`</mrow></mstyle></math></div>`
	if got != want {
		t.Fatalf("unexpected markup\n got: %s\nwant: %s", got, want)
	}
}

func TestEquation_BothNegativeSubtract(t *testing.T) {
	got := render(t, Equation(domain.Problem{A: -20, B: -7, Op: domain.Subtract, Answer: -13}))
	want := `<mrow><mo form="prefix">−</mo><mn>20</mn><mo form="infix">−</mo><mo form="prefix">−</mo><mn>7</mn></mrow>`
	if !strings.Contains(got, want) {
		t.Fatalf("expected %s in %s", want, got)
	}
}

func TestEquation_IsDeterministic(t *testing.T) {
	p := domain.Problem{A: 4, B: -9, Op: domain.Multiply, Answer: -36}
	if render(t, Equation(p)) != render(t, Equation(p)) {
		t.Fatalf("expected identical output")
	}
}

func TestOperatorGlyphs(t *testing.T) {
	cases := map[domain.Operator]string{
		domain.Add:      `<mo form="infix">+</mo>`,
		domain.Subtract: `<mo form="infix">−</mo>`,
		domain.Multiply: `<mo form="infix">×</mo>`,
		domain.Divide:   `<mo form="infix">/</mo>`,
	}
	for op, want := range cases {
		if got := render(t, Operator(op)); got != want {
			t.Errorf("Operator(%s) = %s, want %s", op, got, want)
		}
	}
}

func TestOperand(t *testing.T) {
	if got := len(Operand(7)); got != 1 {
		t.Fatalf("expected single node for positive operand, got %d", got)
	}
	neg := Operand(-7)
	if len(neg) != 2 || neg[0].Text != MinusSign || neg[1].Text != "7" {
		t.Fatalf("unexpected negative operand %+v", neg)
	}
}

func TestRender_EscapesTextAndAttributes(t *testing.T) {
	got := render(t, Text("mi", "a<b", Attr{Name: "title", Value: `"x"&`}))
	if got != `<mi title="&#34;x&#34;&amp;">a&lt;b</mi>` {
		t.Fatalf("unexpected escaping: %s", got)
	}
}

func TestRender_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b strings.Builder
	err := Equation(domain.Problem{A: 1, B: -1}).Render(ctx, &b)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
