package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aalvaropc/mathsheets/internal/domain"
)

type theme struct {
	Title lipgloss.Style
	Path  lipgloss.Style
	Faint lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title: r.NewStyle().Bold(true),
		Path:  r.NewStyle().Foreground(lipgloss.Color("63")),
		Faint: r.NewStyle().Faint(true),
	}
}

var sheetTitles = map[domain.SheetKind]string{
	domain.SheetNegative: "Negative numbers",
	domain.SheetCube:     "Cubes",
}

// printSummary writes one line per sheet, e.g.
// "Negative numbers  2,491 problems  ./neg-add-sheet.html  (key 20261019T...)".
func printSummary(w io.Writer, results []domain.SheetResult) {
	t := newTheme(w)
	p := message.NewPrinter(language.English)

	for _, r := range results {
		line := fmt.Sprintf("%s  %s  %s",
			t.Title.Render(sheetTitles[r.Kind]),
			p.Sprintf("%d problems", r.Problems),
			t.Path.Render(r.Path),
		)
		if r.KeyID != "" {
			line += "  " + t.Faint.Render("(key "+r.KeyID+")")
		}
		fmt.Fprintln(w, line)
	}
}
