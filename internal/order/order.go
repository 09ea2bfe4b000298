// Package order maintains the lines of an in-progress order.
//
// Every function takes an Order value and returns a new one. The input is never
// modified, so a failed operation leaves the caller's order exactly as it was.
package order

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/pricing"
)

// ErrLineNotFound is returned when no line has the requested identity.
var ErrLineNotFound = errors.New("order line not found")

// Key is the merge identity of a line: menu item, variant, normalized modifier
// choices and notes. Two lines with the same Key are the same line.
type Key string

// KeyOf computes the merge identity of line. Groups are compared by name and
// options as sorted sets, independent of the order they were picked in.
func KeyOf(line models.OrderLine) Key {
	groups := make([]models.ModifierSelection, len(line.Modifiers))
	copy(groups, line.Modifiers)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Group < groups[j].Group })

	var b strings.Builder
	b.WriteString(strconv.Quote(line.MenuItemID))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(line.VariantName))
	b.WriteByte('|')
	for _, g := range groups {
		if len(g.Options) == 0 {
			continue
		}
		options := append([]string(nil), g.Options...)
		sort.Strings(options)
		b.WriteString(strconv.Quote(g.Group))
		b.WriteByte('=')
		for i, o := range options {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(o))
		}
		b.WriteByte(';')
	}
	b.WriteByte('|')
	b.WriteString(strconv.Quote(line.Notes))
	return Key(b.String())
}

func clone(o models.Order) models.Order {
	lines := make([]models.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	return models.Order{ID: o.ID, Lines: lines}
}

func indexOf(o models.Order, key Key) int {
	for i, l := range o.Lines {
		if KeyOf(l) == key {
			return i
		}
	}
	return -1
}

// AddOrUpdate merges line into o. If a line with the same Key exists its quantity
// grows by line.Quantity and it keeps its position and ID; otherwise line is appended.
// A merged quantity above pricing.MaxQuantity is rejected and o is returned unchanged.
func AddOrUpdate(o models.Order, line models.OrderLine) (models.Order, error) {
	if line.Quantity < 1 || line.Quantity > pricing.MaxQuantity {
		return o, pricing.RejectQuantity(line.Quantity)
	}
	out := clone(o)
	if i := indexOf(out, KeyOf(line)); i >= 0 {
		existing := out.Lines[i]
		// Both operands are bounded by MaxQuantity, so the sum cannot wrap.
		merged := existing.Quantity + line.Quantity
		if merged > pricing.MaxQuantity {
			return o, pricing.RejectQuantity(merged)
		}
		out.Lines[i] = existing.WithQuantity(merged)
		return out, nil
	}
	out.Lines = append(out.Lines, line.WithQuantity(line.Quantity))
	return out, nil
}

// SetQuantity replaces the quantity of the line with the given key.
// A quantity below 1 removes the line.
func SetQuantity(o models.Order, key Key, quantity int) (models.Order, error) {
	i := indexOf(o, key)
	if i < 0 {
		return o, ErrLineNotFound
	}
	if quantity < 1 {
		return Remove(o, key)
	}
	if quantity > pricing.MaxQuantity {
		return o, pricing.RejectQuantity(quantity)
	}
	out := clone(o)
	out.Lines[i] = out.Lines[i].WithQuantity(quantity)
	return out, nil
}

// Remove deletes the line with the given key.
func Remove(o models.Order, key Key) (models.Order, error) {
	i := indexOf(o, key)
	if i < 0 {
		return o, ErrLineNotFound
	}
	out := clone(o)
	out.Lines = append(out.Lines[:i], out.Lines[i+1:]...)
	return out, nil
}

// Clear drops every line, keeping the order ID.
func Clear(o models.Order) models.Order {
	return models.Order{ID: o.ID}
}

// FindLine returns the line with the given instance ID.
func FindLine(o models.Order, lineID string) (models.OrderLine, bool) {
	for _, l := range o.Lines {
		if l.ID == lineID {
			return l, true
		}
	}
	return models.OrderLine{}, false
}

// ItemCount is the number of units across all lines.
func ItemCount(o models.Order) int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of all line totals.
func Subtotal(o models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.LineTotal)
	}
	return sum
}

// Totals computes subtotal, tax and total for o at taxRate (a fraction, e.g. 0.085).
func Totals(o models.Order, taxRate decimal.Decimal) (models.Totals, error) {
	return pricing.CalculateTotals(Subtotal(o), taxRate)
}
