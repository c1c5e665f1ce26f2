package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Makepad-fr/eggventory/internal/model"
)

// Markdown renders the stock list as a markdown document, one table per
// stock type.
func Markdown(l *model.StockList) string {
	var b strings.Builder
	b.WriteString("# Inventory\n\n")
	fmt.Fprintf(&b, "%d stock types, %d stocks, total quantity %d.\n",
		l.StockTypeCount(), l.StockCount(), l.TotalQuantity())
	for _, st := range l.StockTypes() {
		fmt.Fprintf(&b, "\n## %s\n\n", mdEscape(st.Name()))
		stocks := st.Stocks()
		if len(stocks) == 0 {
			b.WriteString("_No stocks._\n")
			continue
		}
		b.WriteString("| Code | Quantity | Description |\n")
		b.WriteString("|---|---:|---|\n")
		for _, s := range stocks {
			fmt.Fprintf(&b, "| %s | %d | %s |\n", mdEscape(s.Code()), s.Quantity(), mdEscape(s.Description()))
		}
		fmt.Fprintf(&b, "| **Total** | **%d** | |\n", st.TotalQuantity())
	}
	return b.String()
}

var mdEscaper = strings.NewReplacer(
	`|`, `\|`,
	"\r", " ",
	"\n", " ",
)

func mdEscape(s string) string { return mdEscaper.Replace(s) }

// RenderMarkdown renders md for the terminal. Width 0 disables word wrap.
func RenderMarkdown(md string, width int) (string, error) {
	style := "dark"
	if disableColor {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("glamour: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}
