package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/eggventory/internal/model"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func sample() *model.StockList {
	l := model.NewStockList()
	l.AddStockType("Bolts")
	l.AddStock("Bolts", "B1", 3, "m4")
	l.AddStock("Bolts", "B2", 4, "m5")
	return l
}

func stockCodes(st *model.StockType) []string {
	var out []string
	for _, s := range st.Stocks() {
		out = append(out, s.Code())
	}
	return out
}

func TestDeleteAndUndo(t *testing.T) {
	l := sample()
	m := New(l)
	require.Len(t, m.list.Items(), 2)

	m = press(t, m, keyRunes("d"))
	bolts, _ := l.FindStockType("Bolts")
	assert.Equal(t, []string{"B2"}, stockCodes(bolts))
	assert.True(t, m.Changed())

	m = press(t, m, keyRunes("u"))
	assert.Equal(t, []string{"B1", "B2"}, stockCodes(bolts))
	assert.Len(t, m.list.Items(), 2)
}

func TestInlineAdd(t *testing.T) {
	l := sample()
	m := New(l)

	m = press(t, m, keyRunes("a"))
	require.True(t, m.adding)
	m.ti.SetValue("B3 7 m6 hex")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.adding)
	bolts, _ := l.FindStockType("Bolts")
	s, ok := bolts.FindStock("B3")
	require.True(t, ok)
	assert.Equal(t, 7, s.Quantity())
	assert.Equal(t, "m6 hex", s.Description())
}

func TestInlineAdd_RejectsBadQuantity(t *testing.T) {
	l := sample()
	m := New(l)

	m = press(t, m, keyRunes("a"))
	m.ti.SetValue("B3 many")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.adding)
	assert.NotEmpty(t, m.addErr)
	assert.Equal(t, 2, l.StockCount())
	assert.False(t, m.Changed())
}

func TestInlineAdd_EmptyListGoesToDefault(t *testing.T) {
	l := model.NewStockList()
	m := New(l)

	m = press(t, m, keyRunes("a"))
	m.ti.SetValue("K1 1")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	def, _ := l.FindStockType(model.DefaultStockType)
	assert.Equal(t, []string{"K1"}, stockCodes(def))
}

func TestQuit(t *testing.T) {
	m := New(sample())
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
