// Package tui is an interactive browser over a stock list.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/eggventory/internal/model"
	"github.com/Makepad-fr/eggventory/internal/ui"
)

// stockItem adapts a stock to bubbles/list.Item.
type stockItem struct {
	st    *model.StockType
	index int
	stock model.Stock
}

func (i stockItem) Title() string       { return i.stock.Code() }
func (i stockItem) Description() string { return i.stock.Description() }
func (i stockItem) FilterValue() string {
	return i.st.Name() + " " + i.stock.Code() + " " + i.stock.Description()
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(stockItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("%s %s %s %s",
		ui.AccentStyle.Render(it.st.Name()+" ›"),
		it.stock.Code(),
		ui.PendingStyle.Render(fmt.Sprintf("x%d", it.stock.Quantity())),
		ui.MutedStyle.Render(it.stock.Description()),
	)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

type removed struct {
	st    *model.StockType
	index int
	stock model.Stock
}

// Model is the Bubble Tea model of the browser. It edits the stock list in place.
type Model struct {
	stocks  *model.StockList
	list    list.Model
	changed bool

	width, height int

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	// Undo support (single-level)
	undo *removed
}

var (
	addBind  = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
)

// New builds the browser model over l.
func New(l *model.StockList) Model {
	li := list.New(nil, itemDelegate{}, 80, 20)
	li.SetShowHelp(true)
	li.SetShowPagination(true)
	li.SetShowStatusBar(true)
	li.SetFilteringEnabled(true)
	li.Styles.Title = ui.TitleStyle
	li.Styles.HelpStyle = ui.HelpStyle
	li.Styles.PaginationStyle = ui.HelpStyle
	li.FilterInput.Prompt = "/ "
	li.SetStatusBarItemName("stock", "stocks")
	li.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind, undoBind} }
	li.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind, undoBind} }

	m := Model{stocks: l, list: li, width: 80, height: 24}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "<code> <quantity> <description...>"
	m.ti.CharLimit = 200
	m.refresh()
	return m
}

// Changed reports whether the stock list was modified.
func (m Model) Changed() bool { return m.changed }

// refresh rebuilds the list items and title from the stock list.
func (m *Model) refresh() {
	var items []list.Item
	for _, st := range m.stocks.StockTypes() {
		for i, s := range st.Stocks() {
			items = append(items, stockItem{st: st, index: i, stock: s})
		}
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Inventory"),
		ui.AccentStyle.Render("types"), m.stocks.StockTypeCount(),
		ui.AccentStyle.Render("stocks"), m.stocks.StockCount(),
		ui.SuccessStyle.Render("qty"), m.stocks.TotalQuantity(),
	)
}

// targetType is where inline adds go: the selected stock's type, or the default.
func (m Model) targetType() *model.StockType {
	if it, ok := m.list.SelectedItem().(stockItem); ok {
		return it.st
	}
	types := m.stocks.StockTypes()
	if len(types) == 0 {
		return nil
	}
	return types[0]
}

func parseAdd(s string) (code string, qty int, desc string, err error) {
	f := strings.Fields(s)
	if len(f) < 2 {
		return "", 0, "", fmt.Errorf("need <code> <quantity> [description]")
	}
	qty, err = strconv.Atoi(f[1])
	if err != nil || qty < 0 {
		return "", 0, "", fmt.Errorf("quantity must be a non-negative integer")
	}
	return f[0], qty, strings.Join(f[2:], " "), nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				code, qty, desc, err := parseAdd(m.ti.Value())
				if err != nil {
					m.addErr = err.Error()
					return m, nil
				}
				st := m.targetType()
				if st == nil {
					m.addErr = "no stock type to add to"
					return m, nil
				}
				st.AddStock(code, qty, desc)
				m.changed = true
				m.refresh()
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding, m.addErr = false, ""
				return m, nil
			case "esc":
				m.adding, m.addErr = false, ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch x.String() {
		case "q", "esc":
			if m.list.FilterState() == list.FilterApplied && x.String() == "esc" {
				break
			}
			return m, tea.Quit
		case "d":
			if it, ok := m.list.SelectedItem().(stockItem); ok {
				if s, ok := it.st.RemoveStock(it.index); ok {
					m.undo = &removed{st: it.st, index: it.index, stock: s}
					m.changed = true
					m.refresh()
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			return m, m.ti.Focus()
		case "u":
			if m.undo != nil {
				m.undo.st.InsertStock(m.undo.index, m.undo.stock)
				m.undo = nil
				m.changed = true
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 8
	}
	m.list.SetSize(m.width-4, max(listHeight, 3))

	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add stock"
		if st := m.targetType(); st != nil {
			title += " to " + st.Name()
		}
		if m.addErr != "" {
			title += ": " + ui.ErrorStyle.Render(m.addErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.PanelString(content)
}

// Run starts the browser on l and reports whether l was modified.
func Run(l *model.StockList) (bool, error) {
	p := tea.NewProgram(New(l), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.Changed(), nil
}
