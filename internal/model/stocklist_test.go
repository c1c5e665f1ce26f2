package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *StockType) []string {
	var out []string
	for _, s := range t.Stocks() {
		out = append(out, s.Code())
	}
	return out
}

func names(l *StockList) []string {
	var out []string
	for _, t := range l.StockTypes() {
		out = append(out, t.Name())
	}
	return out
}

func TestNewStockList_HasOnlyDefault(t *testing.T) {
	l := NewStockList()

	require.Equal(t, 1, l.StockTypeCount())
	def, ok := l.FindStockType(DefaultStockType)
	require.True(t, ok)
	assert.Equal(t, 0, def.Len())
	assert.Equal(t, 0, l.StockCount())
}

func TestAddStock_UnknownTypeFallsBackToDefault(t *testing.T) {
	l := NewStockList()

	got, ok := l.AddStock("NoSuchCategory", "K1", 5, "widget")
	require.True(t, ok)
	assert.Equal(t, DefaultStockType, got.Name())

	def, _ := l.FindStockType(DefaultStockType)
	s, found := def.FindStock("K1")
	require.True(t, found)
	assert.Equal(t, 5, s.Quantity())
	assert.Equal(t, "widget", s.Description())
}

func TestAddStock_KnownType(t *testing.T) {
	l := NewStockList()
	l.AddStockType("Bolts")

	got, ok := l.AddStock("Bolts", "B1", 3, "m4")
	require.True(t, ok)
	assert.Equal(t, "Bolts", got.Name())

	def, _ := l.FindStockType(DefaultStockType)
	assert.Equal(t, 0, def.Len())
}

func TestAddStock_EmptyListIsNoop(t *testing.T) {
	l := NewStockListOf()

	_, ok := l.AddStock("Bolts", "B1", 3, "m4")
	assert.False(t, ok)
	assert.Equal(t, 0, l.StockCount())
}

func TestDeleteStockType_Cascades(t *testing.T) {
	l := NewStockList()
	l.AddStockType("Bolts")
	l.AddStock("Bolts", "B1", 3, "m4")

	deleted, ok := l.DeleteStockType("Bolts")
	require.True(t, ok)
	assert.Equal(t, []string{"B1"}, codes(deleted))
	assert.Equal(t, []string{DefaultStockType}, names(l))

	_, ok = l.DeleteStock("B1")
	assert.False(t, ok)
}

func TestAggregates(t *testing.T) {
	l := NewStockList()
	l.AddStockType("Bolts")
	l.AddStock(DefaultStockType, "A", 3, "")
	l.AddStock(DefaultStockType, "B", 5, "")
	l.AddStock("Bolts", "C", 2, "")

	assert.Equal(t, 2, l.StockTypeCount())
	assert.Equal(t, 3, l.StockCount())
	assert.Equal(t, 10, l.TotalQuantity())

	empty := NewStockType("Empty")
	assert.Equal(t, 0, empty.TotalQuantity())
}

func TestNotFoundIsNonFatal(t *testing.T) {
	l := NewStockList()

	s, ok := l.DeleteStock("unknown-key")
	assert.False(t, ok)
	assert.Equal(t, Stock{}, s)

	st, ok := l.FindStockType("unknown-name")
	assert.False(t, ok)
	assert.Nil(t, st)

	st, ok = l.DeleteStockType("unknown-name")
	assert.False(t, ok)
	assert.Nil(t, st)
}

// Duplicate names and codes are accepted; lookups resolve to the first match.
func TestDuplicatesResolveToFirstMatch(t *testing.T) {
	l := NewStockList()
	first := l.AddStockType("Bolts")
	second := l.AddStockType("Bolts")
	assert.Equal(t, 3, l.StockTypeCount())

	got, _ := l.FindStockType("Bolts")
	assert.Same(t, first, got)

	l.AddStock("Bolts", "B1", 1, "one")
	l.AddStock("Bolts", "B1", 2, "two")
	assert.Equal(t, 2, first.Len())
	assert.Equal(t, 0, second.Len())

	s, ok := l.DeleteStock("B1")
	require.True(t, ok)
	assert.Equal(t, "one", s.Description())
	assert.Equal(t, []string{"B1"}, codes(first))
}

func TestDeleteStock_FirstMatchAcrossTypes(t *testing.T) {
	l := NewStockList()
	l.AddStockType("Bolts")
	l.AddStock(DefaultStockType, "X", 1, "default")
	l.AddStock("Bolts", "X", 2, "bolts")

	s, ok := l.DeleteStock("X")
	require.True(t, ok)
	assert.Equal(t, "default", s.Description())

	s, ok = l.DeleteStock("X")
	require.True(t, ok)
	assert.Equal(t, "bolts", s.Description())
}

func TestOrderPreservedAcrossDeletions(t *testing.T) {
	l := NewStockList()
	l.AddStockType("A")
	l.AddStockType("B")
	l.AddStockType("C")
	l.AddStock("B", "b1", 1, "")
	l.AddStock("B", "b2", 1, "")
	l.AddStock("B", "b3", 1, "")

	l.DeleteStockType("A")
	l.DeleteStock("b2")

	assert.Equal(t, []string{DefaultStockType, "B", "C"}, names(l))
	b, _ := l.FindStockType("B")
	assert.Equal(t, []string{"b1", "b3"}, codes(b))
}

func TestStockTypes_ReturnsCopy(t *testing.T) {
	l := NewStockList()
	types := l.StockTypes()
	types[0] = NewStockType("Hijacked")

	assert.Equal(t, []string{DefaultStockType}, names(l))
}

func TestString(t *testing.T) {
	l := NewStockList()
	l.AddStockType("Bolts")
	l.AddStock("Bolts", "B1", 3, "m4 bolt")

	want := "CURRENT INVENTORY\n" +
		"------------------------\n" +
		"Uncategorised\n  (no stocks)\n" +
		"------------------------\n" +
		"Bolts\n1. B1  x3  m4 bolt\n"
	assert.Equal(t, want, l.String())
}

func TestPersistString(t *testing.T) {
	l := NewStockList()
	l.AddStockType("Bolts|Nuts")
	l.AddStock(DefaultStockType, "K1", 5, "widget")
	l.AddStock("Bolts|Nuts", "@B1", 3, "m4\nbolt \\ 10|pack")

	want := "@Uncategorised\n" +
		"K1|5|widget\n" +
		"@Bolts\\|Nuts\n" +
		"\\@B1|3|m4\\nbolt \\\\ 10\\|pack\n"
	assert.Equal(t, want, l.PersistString())
}

func TestStockType_RemoveInsert(t *testing.T) {
	st := NewStockType("Bolts")
	st.AddStock("a", 1, "")
	st.AddStock("b", 2, "")
	st.AddStock("c", 3, "")

	s, ok := st.RemoveStock(1)
	require.True(t, ok)
	assert.Equal(t, "b", s.Code())
	assert.Equal(t, []string{"a", "c"}, codes(st))

	st.InsertStock(1, s)
	assert.Equal(t, []string{"a", "b", "c"}, codes(st))

	st.InsertStock(99, NewStock("z", 0, ""))
	assert.Equal(t, []string{"a", "b", "c", "z"}, codes(st))

	_, ok = st.RemoveStock(-1)
	assert.False(t, ok)
}
