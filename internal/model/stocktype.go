package model

import (
	"fmt"
	"strconv"
	"strings"
)

// StockType is a named category owning an ordered set of stocks.
type StockType struct {
	name   string
	stocks []Stock
}

func NewStockType(name string) *StockType {
	return &StockType{name: name}
}

func (t *StockType) Name() string { return t.name }

// AddStock appends a stock. Codes are not checked for duplicates here;
// lookups resolve to the first match.
func (t *StockType) AddStock(code string, quantity int, description string) {
	t.stocks = append(t.stocks, NewStock(code, quantity, description))
}

// DeleteStock removes the first stock with the given code.
func (t *StockType) DeleteStock(code string) (Stock, bool) {
	for i, s := range t.stocks {
		if s.code == code {
			t.stocks = append(t.stocks[:i], t.stocks[i+1:]...)
			return s, true
		}
	}
	return Stock{}, false
}

// RemoveStock removes the stock at position i.
func (t *StockType) RemoveStock(i int) (Stock, bool) {
	if i < 0 || i >= len(t.stocks) {
		return Stock{}, false
	}
	s := t.stocks[i]
	t.stocks = append(t.stocks[:i], t.stocks[i+1:]...)
	return s, true
}

// InsertStock puts s back at position i, clamped to the valid range.
func (t *StockType) InsertStock(i int, s Stock) {
	if i < 0 {
		i = 0
	}
	if i > len(t.stocks) {
		i = len(t.stocks)
	}
	t.stocks = append(t.stocks, Stock{})
	copy(t.stocks[i+1:], t.stocks[i:])
	t.stocks[i] = s
}

func (t *StockType) FindStock(code string) (Stock, bool) {
	for _, s := range t.stocks {
		if s.code == code {
			return s, true
		}
	}
	return Stock{}, false
}

// Stocks returns a copy of the stocks in insertion order.
func (t *StockType) Stocks() []Stock {
	out := make([]Stock, len(t.stocks))
	copy(out, t.stocks)
	return out
}

// Len is the number of stocks, not their quantity.
func (t *StockType) Len() int { return len(t.stocks) }

func (t *StockType) TotalQuantity() int {
	total := 0
	for _, s := range t.stocks {
		total += s.quantity
	}
	return total
}

// String renders the stock type header followed by one line per stock.
func (t *StockType) String() string {
	var b strings.Builder
	b.WriteString(t.name)
	if len(t.stocks) == 0 {
		b.WriteString("\n  (no stocks)")
	}
	for i, s := range t.stocks {
		fmt.Fprintf(&b, "\n%d. %s  x%d  %s", i+1, s.code, s.quantity, s.description)
	}
	return b.String()
}

// PersistString renders the header line and the item lines of this stock type.
func (t *StockType) PersistString() string {
	lines := make([]string, 0, len(t.stocks)+1)
	lines = append(lines, string(HeaderPrefix)+EscapeField(t.name))
	for _, s := range t.stocks {
		lines = append(lines, strings.Join([]string{
			EscapeField(s.code),
			strconv.Itoa(s.quantity),
			EscapeField(s.description),
		}, string(FieldSeparator)))
	}
	return strings.Join(lines, "\n")
}
