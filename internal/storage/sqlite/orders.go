package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/restauflow/internal/checkout"
	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/storage"
)

// CreateOrder persists a submitted order with its lines and modifier choices.
func (s *SQLiteStore) CreateOrder(ctx context.Context, order *models.SubmittedOrder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertOrder(ctx, tx, order); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Submit implements checkout.Sink. Orders naming an item that was removed or
// taken off the menu since it was added are rejected.
func (s *SQLiteStore) Submit(ctx context.Context, order *models.SubmittedOrder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, line := range order.Lines {
		var available bool
		err := tx.QueryRowContext(ctx,
			"SELECT available FROM menu_items WHERE id = ?", line.MenuItemID,
		).Scan(&available)
		if errors.Is(err, sql.ErrNoRows) || (err == nil && !available) {
			return &checkout.RejectedError{Reason: fmt.Sprintf("%s is no longer available", line.Name)}
		}
		if err != nil {
			return fmt.Errorf("failed to check menu item: %w", err)
		}
	}

	if err := insertOrder(ctx, tx, order); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertOrder(ctx context.Context, tx *sql.Tx, order *models.SubmittedOrder) error {
	// Generate ID if not set
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.SubmittedAt == 0 {
		order.SubmittedAt = time.Now().Unix()
	}
	if order.UpdatedAt == 0 {
		order.UpdatedAt = order.SubmittedAt
	}
	if order.Type == "" {
		order.Type = models.OrderDineIn
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO orders (id, session_id, table_id, guest_count, order_type, status, notes,
		                     subtotal, tax, total, tax_rate, currency, submitted_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.SessionID, order.TableID, order.GuestCount, order.Type, order.Status, order.Notes,
		order.Totals.Subtotal, order.Totals.Tax, order.Totals.Total, order.TaxRate,
		order.Currency, order.SubmittedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i, line := range order.Lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_lines (order_id, position, line_id, menu_item_id, name, variant, notes, unit_price, quantity, line_total)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			order.ID, i, line.ID, line.MenuItemID, line.Name, line.VariantName, line.Notes,
			line.UnitPrice, line.Quantity, line.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}

		position := 0
		for _, group := range line.Modifiers {
			for _, option := range group.Options {
				_, err = tx.ExecContext(ctx,
					`INSERT INTO order_line_modifiers (order_id, line_position, group_name, option_name, position)
					 VALUES (?, ?, ?, ?, ?)`,
					order.ID, i, group.Group, option, position,
				)
				if err != nil {
					return fmt.Errorf("failed to insert line modifier: %w", err)
				}
				position++
			}
		}
	}

	return nil
}

// GetOrder retrieves a submitted order by ID, including its lines.
func (s *SQLiteStore) GetOrder(ctx context.Context, orderID string) (*models.SubmittedOrder, error) {
	order := &models.SubmittedOrder{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, table_id, guest_count, order_type, status, notes,
		        subtotal, tax, total, tax_rate, currency, submitted_at, updated_at
		 FROM orders WHERE id = ?`,
		orderID,
	).Scan(&order.ID, &order.SessionID, &order.TableID, &order.GuestCount, &order.Type, &order.Status, &order.Notes,
		&order.Totals.Subtotal, &order.Totals.Tax, &order.Totals.Total, &order.TaxRate,
		&order.Currency, &order.SubmittedAt, &order.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := s.loadOrderLines(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the orders matching filter, newest first.
func (s *SQLiteStore) ListOrders(ctx context.Context, filter storage.OrderFilter) ([]*models.SubmittedOrder, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM orders
		 WHERE (? = '' OR session_id = ?)
		   AND (? = '' OR table_id = ?)
		   AND (? = '' OR status = ?)
		   AND (? = '' OR order_type = ?)
		 ORDER BY submitted_at DESC, rowid DESC
		 LIMIT ?`,
		filter.SessionID, filter.SessionID,
		filter.TableID, filter.TableID,
		filter.Status, filter.Status,
		filter.Type, filter.Type,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	orders := make([]*models.SubmittedOrder, 0, len(ids))
	for _, id := range ids {
		order, err := s.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order along its lifecycle.
// Completed and cancelled orders are closed and cannot change.
func (s *SQLiteStore) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.SubmittedOrder, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		current   models.OrderStatus
		orderType models.OrderType
	)
	err = tx.QueryRowContext(ctx,
		"SELECT status, order_type FROM orders WHERE id = ?", orderID,
	).Scan(&current, &orderType)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order status: %w", err)
	}

	if err := current.CheckTransition(status, orderType); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().Unix(), orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetOrder(ctx, orderID)
}

func (s *SQLiteStore) loadOrderLines(ctx context.Context, order *models.SubmittedOrder) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT line_id, menu_item_id, name, variant, notes, unit_price, quantity, line_total
		 FROM order_lines WHERE order_id = ? ORDER BY position`,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.ID, &line.MenuItemID, &line.Name, &line.VariantName, &line.Notes,
			&line.UnitPrice, &line.Quantity, &line.LineTotal); err != nil {
			return fmt.Errorf("failed to scan order line: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order lines: %w", err)
	}

	modRows, err := s.db.QueryContext(ctx,
		`SELECT line_position, group_name, option_name FROM order_line_modifiers
		 WHERE order_id = ? ORDER BY line_position, position`,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get line modifiers: %w", err)
	}
	defer modRows.Close()

	for modRows.Next() {
		var (
			pos           int
			group, option string
		)
		if err := modRows.Scan(&pos, &group, &option); err != nil {
			return fmt.Errorf("failed to scan line modifier: %w", err)
		}
		if pos < 0 || pos >= len(order.Lines) {
			continue
		}

		line := &order.Lines[pos]
		n := len(line.Modifiers)
		if n == 0 || line.Modifiers[n-1].Group != group {
			line.Modifiers = append(line.Modifiers, models.ModifierSelection{Group: group})
			n++
		}
		line.Modifiers[n-1].Options = append(line.Modifiers[n-1].Options, option)
	}
	if err := modRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate line modifiers: %w", err)
	}

	return nil
}
