package catalog

import (
	"context"
	"fmt"

	"github.com/mmynk/restauflow/internal/models"
)

// Ensure Memory implements Provider
var _ Provider = (*Memory)(nil)

// Memory is a read-only catalog held in memory. Items keep the order they were given in.
type Memory struct {
	items []*models.MenuItem
	byID  map[string]*models.MenuItem
}

// NewMemory validates items and builds a catalog from them.
func NewMemory(items []*models.MenuItem) (*Memory, error) {
	m := &Memory{byID: make(map[string]*models.MenuItem, len(items))}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := m.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", models.ErrInvalidMenuItem, item.ID)
		}
		m.byID[item.ID] = item
		m.items = append(m.items, item)
	}
	return m, nil
}

// GetItem returns the item with the given id.
func (m *Memory) GetItem(_ context.Context, id string) (*models.MenuItem, error) {
	item, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return item, nil
}

// ListItems returns the items matching filter in catalog order.
func (m *Memory) ListItems(_ context.Context, filter Filter) ([]*models.MenuItem, error) {
	var out []*models.MenuItem
	for _, item := range m.items {
		if filter.Match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}
