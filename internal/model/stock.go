package model

// Stock is a single keyed inventory record.
// Its code is fixed at creation; all changes go through the owning StockType.
type Stock struct {
	code        string
	quantity    int
	description string
}

// NewStock does not validate quantity; callers reject negative quantities
// before they reach the model. A negative value is kept and persisted as is.
func NewStock(code string, quantity int, description string) Stock {
	return Stock{code: code, quantity: quantity, description: description}
}

// Code is the key of the stock, unique within its stock type.
func (s Stock) Code() string        { return s.code }
func (s Stock) Quantity() int       { return s.quantity }
func (s Stock) Description() string { return s.description }
