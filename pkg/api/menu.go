// Package api defines the request and response messages of the restauflow.v1
// services. Messages travel as JSON; amounts are decimal strings with two places.
package api

import "encoding/json"

// MenuItem is a dish or drink as shown to guests.
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category,omitempty"`
	Description    string          `json:"description,omitempty"`
	BasePrice      string          `json:"base_price"`
	Available      bool            `json:"available"`
	Variants       []Variant       `json:"variants,omitempty"`
	ModifierGroups []ModifierGroup `json:"modifier_groups,omitempty"`
}

type Variant struct {
	Name       string `json:"name"`
	PriceDelta string `json:"price_delta"`
	IsDefault  bool   `json:"is_default,omitempty"`
}

// ModifierGroup is a set of options; Mode is "one" or "many".
type ModifierGroup struct {
	Name     string     `json:"name"`
	Mode     string     `json:"mode"`
	Required bool       `json:"required,omitempty"`
	Options  []Modifier `json:"options"`
}

type Modifier struct {
	Name       string `json:"name"`
	PriceDelta string `json:"price_delta"`
}

// Selection is what a guest picked for one menu item.
// Each Modifiers value is a string for "one" groups or an array of strings
// for "many" groups.
type Selection struct {
	MenuItemID string                     `json:"menu_item_id"`
	Variant    string                     `json:"variant,omitempty"`
	Modifiers  map[string]json.RawMessage `json:"modifiers,omitempty"`
	Quantity   int                        `json:"quantity"`
	Notes      string                     `json:"notes,omitempty"`
}

type ListMenuRequest struct {
	Category      string `json:"category,omitempty"`
	Search        string `json:"search,omitempty"`
	AvailableOnly bool   `json:"available_only,omitempty"`
}

type ListMenuResponse struct {
	Items      []*MenuItem `json:"items"`
	Categories []string    `json:"categories"`
}

type GetMenuItemRequest struct {
	ID string `json:"id"`
}

type GetMenuItemResponse struct {
	Item *MenuItem `json:"item"`
}

// QuotePriceRequest prices a selection without adding it to an order.
// A zero quantity quotes a single unit.
type QuotePriceRequest struct {
	Selection Selection `json:"selection"`
}

type QuotePriceResponse struct {
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	Currency  string `json:"currency"`
}
