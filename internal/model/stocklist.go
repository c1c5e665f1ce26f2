package model

import "strings"

// DefaultStockType is the fallback bucket that a fresh StockList starts with.
const DefaultStockType = "Uncategorised"

const (
	inventoryHeader = "CURRENT INVENTORY"
	ruleLine        = "------------------------"
)

// StockList owns the ordered stock types. The first one is the fallback
// for stocks filed under an unknown stock type.
type StockList struct {
	types []*StockType
}

// NewStockList returns a list holding only the default stock type.
func NewStockList() *StockList {
	return &StockList{types: []*StockType{NewStockType(DefaultStockType)}}
}

// NewStockListOf builds a list from existing stock types, in order.
// It does not add a default stock type; callers that need one must provide it.
func NewStockListOf(types ...*StockType) *StockList {
	l := &StockList{types: make([]*StockType, 0, len(types))}
	for _, t := range types {
		if t != nil {
			l.types = append(l.types, t)
		}
	}
	return l
}

// AddStockType appends an empty stock type. Names are not checked for
// duplicates; lookups resolve to the first match.
func (l *StockList) AddStockType(name string) *StockType {
	t := NewStockType(name)
	l.types = append(l.types, t)
	return t
}

// PrependStockType inserts a stock type at the front of the list.
func (l *StockList) PrependStockType(t *StockType) {
	l.types = append([]*StockType{t}, l.types...)
}

func (l *StockList) FindStockType(name string) (*StockType, bool) {
	for _, t := range l.types {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// AddStock files the stock under the named stock type, falling back to the
// first stock type when the name is unknown. It returns the stock type that
// received the stock, or false if the list has no stock types at all.
func (l *StockList) AddStock(typeName, code string, quantity int, description string) (*StockType, bool) {
	t, ok := l.FindStockType(typeName)
	if !ok {
		if len(l.types) == 0 {
			return nil, false
		}
		t = l.types[0]
	}
	t.AddStock(code, quantity, description)
	return t, true
}

// DeleteStock removes the first stock with the given code, scanning stock
// types in order.
func (l *StockList) DeleteStock(code string) (Stock, bool) {
	for _, t := range l.types {
		if s, ok := t.DeleteStock(code); ok {
			return s, true
		}
	}
	return Stock{}, false
}

// FindStock returns the first stock with the given code and the stock type holding it.
func (l *StockList) FindStock(code string) (Stock, *StockType, bool) {
	for _, t := range l.types {
		if s, ok := t.FindStock(code); ok {
			return s, t, true
		}
	}
	return Stock{}, nil, false
}

// DeleteStockType removes the first stock type with the given name together
// with all its stocks.
func (l *StockList) DeleteStockType(name string) (*StockType, bool) {
	for i, t := range l.types {
		if t.name == name {
			l.types = append(l.types[:i], l.types[i+1:]...)
			return t, true
		}
	}
	return nil, false
}

// StockTypes returns the stock types in order. The returned slice is a copy.
func (l *StockList) StockTypes() []*StockType {
	out := make([]*StockType, len(l.types))
	copy(out, l.types)
	return out
}

func (l *StockList) StockTypeCount() int { return len(l.types) }

// StockCount is the number of stocks across all stock types.
func (l *StockList) StockCount() int {
	n := 0
	for _, t := range l.types {
		n += t.Len()
	}
	return n
}

// TotalQuantity sums the quantity of every stock.
func (l *StockList) TotalQuantity() int {
	total := 0
	for _, t := range l.types {
		total += t.TotalQuantity()
	}
	return total
}

func (l *StockList) String() string {
	var b strings.Builder
	b.WriteString(inventoryHeader + "\n")
	for _, t := range l.types {
		b.WriteString(ruleLine + "\n")
		b.WriteString(t.String() + "\n")
	}
	return b.String()
}

// PersistString is the text saved to disk: every stock type block, each
// terminated by a newline.
func (l *StockList) PersistString() string {
	var b strings.Builder
	for _, t := range l.types {
		b.WriteString(t.PersistString())
		b.WriteByte('\n')
	}
	return b.String()
}
