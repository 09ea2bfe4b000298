package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ModifierChoice is what was picked in one modifier group.
// It is either a single option name (SelectOne) or a set of names (SelectMany),
// mirroring the group's SelectionMode. The zero value means nothing was picked.
type ModifierChoice struct {
	mode  SelectionMode
	names []string
}

// Single picks one option. An empty name means no option.
func Single(name string) ModifierChoice {
	c := ModifierChoice{mode: SelectOne}
	if name != "" {
		c.names = []string{name}
	}
	return c
}

// Multiple picks a set of options. Duplicates are kept so the resolver can reject them.
func Multiple(names ...string) ModifierChoice {
	return ModifierChoice{mode: SelectMany, names: append([]string(nil), names...)}
}

// Mode reports which form the choice was made in.
func (c ModifierChoice) Mode() SelectionMode { return c.mode }

// Names returns the chosen option names in the order they were given.
func (c ModifierChoice) Names() []string { return append([]string(nil), c.names...) }

// Len is the number of chosen names.
func (c ModifierChoice) Len() int { return len(c.names) }

// IsEmpty reports whether nothing was picked.
func (c ModifierChoice) IsEmpty() bool { return len(c.names) == 0 }

// MarshalJSON writes a string for single choices and an array for sets.
func (c ModifierChoice) MarshalJSON() ([]byte, error) {
	switch c.mode {
	case SelectOne:
		if len(c.names) == 0 {
			return []byte(`""`), nil
		}
		return json.Marshal(c.names[0])
	case SelectMany:
		if c.names == nil {
			return []byte(`[]`), nil
		}
		return json.Marshal(c.names)
	default:
		return []byte(`null`), nil
	}
}

// UnmarshalJSON accepts a string (single choice) or an array of strings (set).
func (c *ModifierChoice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ModifierChoice{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = Single(name)
		return nil
	case len(data) > 0 && data[0] == '[':
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return err
		}
		*c = Multiple(names...)
		return nil
	default:
		return fmt.Errorf("modifier choice must be a string or an array of strings, got %s", data)
	}
}

// Selection is the user's configuration of one menu item before it is priced.
type Selection struct {
	// MenuItemID names the catalog item.
	MenuItemID string `json:"menu_item_id"`

	// VariantName is the chosen variant. Empty means "use the default variant".
	VariantName string `json:"variant,omitempty"`

	// Modifiers maps group name to the choice made in that group.
	Modifiers map[string]ModifierChoice `json:"modifiers,omitempty"`

	// Quantity must be at least 1.
	Quantity int `json:"quantity"`

	// Notes is free text for the kitchen (e.g., "no basil"). Part of the line identity.
	Notes string `json:"notes,omitempty"`
}
