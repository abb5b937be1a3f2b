package sheet

import (
	"context"
	"io"

	"github.com/a-h/templ"

	apptemplate "github.com/aalvaropc/mathsheets/internal/app/template"
)

// DefaultHeadTemplate opens the document up to and including </head>.
// Placeholders: {{title}}, {{stylesheet}}.
const DefaultHeadTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<link rel="stylesheet" type="text/css" href="{{stylesheet}}">
<title>{{title}}</title>
</head>
`

// HeadVars are the placeholders a head template may use.
var HeadVars = []string{"title", "stylesheet"}

// head renders tmpl with HTML-escaped values.
func head(tmpl, title, stylesheet string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out, err := apptemplate.RenderString(tmpl, map[string]string{
			"title":      templ.EscapeString(title),
			"stylesheet": templ.EscapeString(stylesheet),
		})
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
