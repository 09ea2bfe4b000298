package models

import "github.com/shopspring/decimal"

// ModifierSelection is the normalized choice of one group on a priced line.
// Options are sorted so that equal selections compare equal.
type ModifierSelection struct {
	Group   string
	Options []string
}

// OrderLine is one priced entry of an order.
type OrderLine struct {
	// ID is the instance identifier (UUID format). It addresses the line from
	// clients and is not part of the merge identity.
	ID string

	MenuItemID string

	// Name is the menu item name at the time the line was priced.
	Name string

	// VariantName is the resolved variant ("" for items without variants).
	VariantName string

	// Modifiers are the non-empty group selections, in the item's group order.
	Modifiers []ModifierSelection

	Notes string

	// UnitPrice is base + variant + modifiers, rounded half-up to 2 places.
	UnitPrice decimal.Decimal

	// Quantity is at least 1.
	Quantity int

	// LineTotal is UnitPrice × Quantity.
	LineTotal decimal.Decimal
}

// WithQuantity returns a copy of the line with the quantity replaced and the total recomputed.
func (l OrderLine) WithQuantity(q int) OrderLine {
	l.Quantity = q
	l.LineTotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(q)))
	return l
}

// Order is the list of lines built during one ordering session.
// Lines keep insertion order; that is the display order.
type Order struct {
	ID    string
	Lines []OrderLine
}

// Totals is the pricing summary of an order.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// SubmittedOrder is the snapshot handed to the order sink at checkout.
type SubmittedOrder struct {
	// ID is the unique identifier of the submitted order (UUID format).
	ID string

	// SessionID is the ordering session the order came from.
	SessionID string

	// TableID is set for dine-in orders taken by waiters.
	TableID string

	Type   OrderType
	Status OrderStatus

	// GuestCount is the number of guests at the table (at least 1).
	GuestCount int

	// Notes is an order-level note for the kitchen.
	Notes string

	Lines  []OrderLine
	Totals Totals

	// TaxRate is the fraction the tax was computed with (e.g., 0.085).
	TaxRate decimal.Decimal

	// Currency is the ISO code of the amounts (e.g., "USD").
	Currency string

	// SubmittedAt is the Unix timestamp of the checkout.
	SubmittedAt int64

	// UpdatedAt is the Unix timestamp of the last status change.
	UpdatedAt int64
}
