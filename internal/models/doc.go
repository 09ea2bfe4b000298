// Package models defines the core domain models for Restauflow ordering.
//
// # Catalog
//
// The catalog describes what can be ordered:
//   - MenuItem: a purchasable item with a base price
//   - Variant: a mutually exclusive size/type choice adjusting the base price
//   - ModifierGroup: a named set of add-ons, single- or multi-select, optionally required
//   - Modifier: one option inside a group
//
// Catalog records are read-only to the ordering code. They are validated with
// MenuItem.Validate before a provider hands them out.
//
// # Ordering
//
//   - Selection: what a guest or waiter picked for one item (transient input)
//   - OrderLine: a priced, quantity-bearing entry resolved from a Selection
//   - Order: the ordered list of lines of one ordering session
//   - SubmittedOrder: the snapshot handed to the order sink at checkout
//
// # Money
//
// All amounts are decimal.Decimal values. Unit prices and tax are rounded
// half-up to two places; nothing is computed in floating point.
package models
