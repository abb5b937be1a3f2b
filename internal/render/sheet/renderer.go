// Package sheet assembles complete worksheet documents.
package sheet

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/a-h/templ"

	"github.com/aalvaropc/mathsheets/internal/domain"
	"github.com/aalvaropc/mathsheets/internal/ports"
	"github.com/aalvaropc/mathsheets/internal/render/mathml"
)

type Options struct {
	Columns      int
	Stylesheet   string
	NegTitle     string
	CubeTitle    string
	HeadTemplate string // defaults to DefaultHeadTemplate
}

// OptionsFromConfig maps the layout section of the configuration.
func OptionsFromConfig(cfg domain.LayoutConfig, headTemplate string) Options {
	return Options{
		Columns:      cfg.Columns,
		Stylesheet:   cfg.Stylesheet,
		NegTitle:     cfg.NegTitle,
		CubeTitle:    cfg.CubeTitle,
		HeadTemplate: headTemplate,
	}
}

type Renderer struct {
	opts Options
}

var _ ports.SheetRenderer = (*Renderer)(nil)

func New(opts Options) (*Renderer, error) {
	if opts.Columns < 1 {
		return nil, &domain.OpError{
			Op:   "sheet.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("columns must be at least 1, got %d: %w", opts.Columns, domain.ErrInvalidConfig),
		}
	}
	if opts.HeadTemplate == "" {
		opts.HeadTemplate = DefaultHeadTemplate
	}
	return &Renderer{opts: opts}, nil
}

// RenderNegSheet writes the negative-number sheet: one equation per cell,
// Columns cells per row.
func (r *Renderer) RenderNegSheet(ctx context.Context, w io.Writer, problems []domain.Problem) error {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &lines{w: w}
		out.println(`<body><table class="gcdtable">`)

		cols := r.opts.Columns
		for i, p := range problems {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i%cols == 0 {
				out.println("<tr>")
			}
			out.println("<td>")
			if out.err != nil {
				return out.err
			}
			if err := mathml.Equation(p).Render(ctx, w); err != nil {
				return err
			}
			out.println("")
			out.println("</td>")
			if i%cols == cols-1 {
				out.println("</tr>")
			}
		}
		if len(problems)%cols != 0 {
			out.println("</tr>")
		}

		out.println("</table>")
		return out.err
	})

	return document(head(r.opts.HeadTemplate, r.opts.NegTitle, r.opts.Stylesheet), body).Render(ctx, w)
}

var cubeHeaders = map[domain.CubeGiven]string{
	domain.GiveSide:      "Side",
	domain.GiveFaceArea:  "Face area",
	domain.GiveTotalArea: "Total area",
	domain.GiveVolume:    "Volume",
}

// RenderCubeSheet writes the cube sheet: a header row followed by one row per
// problem with only the given measurement filled in.
func (r *Renderer) RenderCubeSheet(ctx context.Context, w io.Writer, problems []domain.CubeProblem) error {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &lines{w: w}
		out.println(`<body><table class="cubetable">`)

		out.println("<tr>")
		out.println("<th>#</th>")
		for _, g := range domain.CubeGivens {
			out.println("<th>" + templ.EscapeString(cubeHeaders[g]) + "</th>")
		}
		out.println("</tr>")

		for i, c := range problems {
			if err := ctx.Err(); err != nil {
				return err
			}
			out.println("<tr>")
			out.println("<td>" + strconv.Itoa(i+1) + "</td>")
			for _, g := range domain.CubeGivens {
				if g == c.Given() {
					out.println(`<td class="given">` + FormatMeasure(c.GivenValue()) + "</td>")
				} else {
					out.println(`<td class="blank"></td>`)
				}
			}
			out.println("</tr>")
		}

		out.println("</table>")
		return out.err
	})

	return document(head(r.opts.HeadTemplate, r.opts.CubeTitle, r.opts.Stylesheet), body).Render(ctx, w)
}

// document wraps head and body and closes every top-level element.
func document(head, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := head.Render(ctx, w); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		out := &lines{w: w}
		out.println("</body>")
		out.println("</html>")
		return out.err
	})
}

// FormatMeasure prints v with at most two decimals and no trailing zeros.
func FormatMeasure(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
