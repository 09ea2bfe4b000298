package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// SelectionMode says how many options of a modifier group may be chosen.
type SelectionMode int

const (
	// SelectOne accepts at most one option (radio buttons).
	SelectOne SelectionMode = iota + 1
	// SelectMany accepts any subset of the options (checkboxes).
	SelectMany
)

// String returns the wire name of the mode.
func (m SelectionMode) String() string {
	switch m {
	case SelectOne:
		return "one"
	case SelectMany:
		return "many"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// ParseSelectionMode converts a wire name into a SelectionMode.
// The admin aliases "single" and "multiple" are accepted too.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch s {
	case "one", "single", "select_one":
		return SelectOne, nil
	case "many", "multiple", "select_many":
		return SelectMany, nil
	default:
		return 0, fmt.Errorf("unknown selection mode %q", s)
	}
}

// MarshalJSON encodes the mode as its wire name.
func (m SelectionMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a wire name.
func (m *SelectionMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSelectionMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MenuItem is a purchasable entry of the catalog.
type MenuItem struct {
	// ID is the catalog identifier (e.g., "item_pizza_margherita").
	ID string

	// Name is the display name.
	Name string

	// Category groups items on the menu (e.g., "Pizzas", "Drinks").
	Category string

	// Description is free text shown on the menu card.
	Description string

	// BasePrice is the price before any variant or modifier adjustments. Never negative.
	BasePrice decimal.Decimal

	// Available is false for items that are temporarily off the menu.
	Available bool

	// Variants are mutually exclusive size/type choices, in display order.
	Variants []Variant

	// ModifierGroups are the add-on groups, in display order.
	ModifierGroups []ModifierGroup
}

// Variant is a size or type choice of a menu item.
type Variant struct {
	Name       string
	PriceDelta decimal.Decimal
	IsDefault  bool
}

// ModifierGroup is a named set of add-on options.
type ModifierGroup struct {
	Name     string
	Mode     SelectionMode
	Required bool
	Options  []Modifier
}

// Modifier is one option inside a ModifierGroup.
type Modifier struct {
	Name       string
	PriceDelta decimal.Decimal
}

// ErrInvalidMenuItem is wrapped by every error returned from MenuItem.Validate.
var ErrInvalidMenuItem = errors.New("invalid menu item")

// Validate checks the structural rules of a catalog record.
func (m *MenuItem) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidMenuItem)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidMenuItem, m.ID)
	}
	if m.BasePrice.IsNegative() {
		return fmt.Errorf("%w: %s: base price cannot be negative", ErrInvalidMenuItem, m.ID)
	}

	variants := make(map[string]bool, len(m.Variants))
	defaults := 0
	for _, v := range m.Variants {
		if v.Name == "" {
			return fmt.Errorf("%w: %s: variant name is required", ErrInvalidMenuItem, m.ID)
		}
		if variants[v.Name] {
			return fmt.Errorf("%w: %s: duplicate variant %q", ErrInvalidMenuItem, m.ID, v.Name)
		}
		variants[v.Name] = true
		if v.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("%w: %s: at most one default variant allowed, got %d", ErrInvalidMenuItem, m.ID, defaults)
	}

	groups := make(map[string]bool, len(m.ModifierGroups))
	for _, g := range m.ModifierGroups {
		if g.Name == "" {
			return fmt.Errorf("%w: %s: modifier group name is required", ErrInvalidMenuItem, m.ID)
		}
		if groups[g.Name] {
			return fmt.Errorf("%w: %s: duplicate modifier group %q", ErrInvalidMenuItem, m.ID, g.Name)
		}
		groups[g.Name] = true
		if g.Mode != SelectOne && g.Mode != SelectMany {
			return fmt.Errorf("%w: %s: group %q has unknown selection mode", ErrInvalidMenuItem, m.ID, g.Name)
		}

		options := make(map[string]bool, len(g.Options))
		for _, o := range g.Options {
			if o.Name == "" {
				return fmt.Errorf("%w: %s: group %q has an unnamed option", ErrInvalidMenuItem, m.ID, g.Name)
			}
			if options[o.Name] {
				return fmt.Errorf("%w: %s: group %q has duplicate option %q", ErrInvalidMenuItem, m.ID, g.Name, o.Name)
			}
			options[o.Name] = true
		}
	}
	return nil
}

// Variant returns the variant with the given name.
func (m *MenuItem) Variant(name string) (Variant, bool) {
	for _, v := range m.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// DefaultVariant returns the variant flagged as default, if any.
func (m *MenuItem) DefaultVariant() (Variant, bool) {
	for _, v := range m.Variants {
		if v.IsDefault {
			return v, true
		}
	}
	return Variant{}, false
}

// Group returns the modifier group with the given name.
func (m *MenuItem) Group(name string) (ModifierGroup, bool) {
	for _, g := range m.ModifierGroups {
		if g.Name == name {
			return g, true
		}
	}
	return ModifierGroup{}, false
}

// Option returns the option with the given name.
func (g *ModifierGroup) Option(name string) (Modifier, bool) {
	for _, o := range g.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Modifier{}, false
}
