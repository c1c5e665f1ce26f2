package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/eggventory/internal/model"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := lipgloss.Width(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := lipgloss.Width(s); vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(Out, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(Out, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(Out, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Display prints the stock list display string, colouring the header and
// rule lines.
func Display(l *model.StockList) {
	t := Current()
	raw := strings.Split(strings.TrimRight(l.String(), "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for i, ln := range raw {
		switch {
		case i == 0:
			lines = append(lines, C(t.Title, ln))
		case strings.HasPrefix(ln, "---"):
			lines = append(lines, C(t.Muted, ln))
		default:
			lines = append(lines, ln)
		}
	}
	Panel(lines)
}

// StockTypeLines renders one stock type for a grouped listing.
func StockTypeLines(st *model.StockType) []string {
	t := Current()
	lines := []string{fmt.Sprintf("%s  %s",
		C(t.Accent, st.Name()),
		C(t.Muted, fmt.Sprintf("%d stocks, qty %d", st.Len(), st.TotalQuantity())),
	)}
	stocks := st.Stocks()
	if len(stocks) == 0 {
		return append(lines, C(t.Muted, t.Empty))
	}
	for _, s := range stocks {
		desc := ansi.Truncate(s.Description(), 60, "...")
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			C(t.Muted, t.Bullet), s.Code(), C(t.Pending, fmt.Sprintf("x%d", s.Quantity())), desc))
	}
	return lines
}

// Totals renders the aggregate counts with each stock type's share of the
// total quantity.
func Totals(l *model.StockList) []string {
	t := Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			C(t.Title, "Inventory"),
			C(t.Accent, "types"), l.StockTypeCount(),
			C(t.Accent, "stocks"), l.StockCount(),
			C(t.Accent, "quantity"), l.TotalQuantity(),
		),
		"",
	}
	total := l.TotalQuantity()
	for _, st := range l.StockTypes() {
		lines = append(lines, fmt.Sprintf("%-16s %s", st.Name(),
			C(t.Muted, ProgressBar(st.TotalQuantity(), total, 20))))
	}
	return lines
}
