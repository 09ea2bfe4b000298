// Package catalog provides read access to the menu.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/mmynk/restauflow/internal/models"
)

// ErrNotFound is returned when a menu item id is unknown.
var ErrNotFound = errors.New("menu item not found")

// Provider supplies validated menu items.
// Implementations return ErrNotFound (possibly wrapped) for unknown ids and never
// return partially populated records.
type Provider interface {
	GetItem(ctx context.Context, id string) (*models.MenuItem, error)
	ListItems(ctx context.Context, filter Filter) ([]*models.MenuItem, error)
}

// Filter narrows a menu listing. Zero fields match everything.
type Filter struct {
	// Category must equal the item's category.
	Category string

	// Search must appear in the item's name, case-insensitively.
	Search string

	// AvailableOnly hides items that are off the menu.
	AvailableOnly bool
}

// Match reports whether item passes the filter.
func (f Filter) Match(item *models.MenuItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.AvailableOnly && !item.Available {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(strings.TrimSpace(f.Search))) {
		return false
	}
	return true
}

// Categories lists the distinct categories of items in first-seen order.
func Categories(items []*models.MenuItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}
