// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/restauflow/internal/models"
)

// ErrOrderNotFound is returned when a submitted order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing. Zero fields match everything.
type OrderFilter struct {
	SessionID string
	TableID   string
	Status    models.OrderStatus
	Type      models.OrderType

	// Limit caps the number of orders returned; zero means no limit.
	Limit int
}

// Store defines the interface for menu and order storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// SaveMenuItem inserts or replaces a menu item with its variants and modifier groups.
	// The item is validated first; an existing item keeps its position in the menu.
	SaveMenuItem(ctx context.Context, item *models.MenuItem) error

	// GetMenuItem retrieves a menu item by its ID.
	// Returns an error wrapping catalog.ErrNotFound if the item does not exist.
	GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error)

	// ListMenuItems returns all menu items in menu order.
	ListMenuItems(ctx context.Context) ([]*models.MenuItem, error)

	// DeleteMenuItem removes a menu item. Submitted orders keep their copy of it.
	DeleteMenuItem(ctx context.Context, itemID string) error

	// SetMenuItemAvailability puts an item on or takes it off the menu.
	SetMenuItemAvailability(ctx context.Context, itemID string, available bool) error

	// CreateOrder persists a submitted order with its lines.
	CreateOrder(ctx context.Context, order *models.SubmittedOrder) error

	// GetOrder retrieves a submitted order by its ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetOrder(ctx context.Context, orderID string) (*models.SubmittedOrder, error)

	// ListOrders returns the submitted orders matching filter, newest first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*models.SubmittedOrder, error)

	// UpdateOrderStatus moves an order to status if the lifecycle allows it and
	// returns the updated order.
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.SubmittedOrder, error)

	// Close releases any resources held by the store.
	Close() error
}
