package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/catalog"
	"github.com/mmynk/restauflow/internal/models"
)

// SaveMenuItem inserts or replaces a menu item together with its variants,
// modifier groups and options.
func (s *SQLiteStore) SaveMenuItem(ctx context.Context, item *models.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Existing items keep their place in the menu; new ones go last.
	var position int
	err = tx.QueryRowContext(ctx, "SELECT position FROM menu_items WHERE id = ?", item.ID).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) + 1 FROM menu_items").Scan(&position)
	}
	if err != nil {
		return fmt.Errorf("failed to find menu position: %w", err)
	}

	// Cascades to variants, groups and options.
	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", item.ID); err != nil {
		return fmt.Errorf("failed to replace menu item: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO menu_items (id, name, category, description, base_price, available, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Category, item.Description, item.BasePrice, item.Available, position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}

	for i, v := range item.Variants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO menu_variants (item_id, name, price_delta, is_default, position) VALUES (?, ?, ?, ?, ?)",
			item.ID, v.Name, v.PriceDelta, v.IsDefault, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert variant: %w", err)
		}
	}

	for i, g := range item.ModifierGroups {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO modifier_groups (item_id, name, mode, required, position) VALUES (?, ?, ?, ?, ?)",
			item.ID, g.Name, g.Mode.String(), g.Required, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert modifier group: %w", err)
		}

		for j, o := range g.Options {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO modifier_options (item_id, group_name, name, price_delta, position) VALUES (?, ?, ?, ?, ?)",
				item.ID, g.Name, o.Name, o.PriceDelta, j,
			)
			if err != nil {
				return fmt.Errorf("failed to insert modifier option: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetMenuItem retrieves a menu item by ID, including variants and modifier groups.
func (s *SQLiteStore) GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error) {
	items, err := s.loadItems(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, itemID)
	}
	return items[0], nil
}

// ListMenuItems returns every menu item in menu order.
func (s *SQLiteStore) ListMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.loadItems(ctx, "")
}

// SetMenuItemAvailability puts an item on or takes it off the menu.
func (s *SQLiteStore) SetMenuItemAvailability(ctx context.Context, itemID string, available bool) error {
	result, err := s.db.ExecContext(ctx, "UPDATE menu_items SET available = ? WHERE id = ?", available, itemID)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, itemID)
	}
	return nil
}

// DeleteMenuItem removes a menu item and its options.
func (s *SQLiteStore) DeleteMenuItem(ctx context.Context, itemID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, itemID)
	}

	return nil
}

// GetItem implements catalog.Provider.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.GetMenuItem(ctx, id)
}

// ListItems implements catalog.Provider.
func (s *SQLiteStore) ListItems(ctx context.Context, filter catalog.Filter) ([]*models.MenuItem, error) {
	items, err := s.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	var out []*models.MenuItem
	for _, item := range items {
		if filter.Match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// loadItems reads one item, or all of them when itemID is empty.
func (s *SQLiteStore) loadItems(ctx context.Context, itemID string) ([]*models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, description, base_price, available
		 FROM menu_items WHERE (? = '' OR id = ?) ORDER BY position, id`,
		itemID, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	defer rows.Close()

	var items []*models.MenuItem
	byID := make(map[string]*models.MenuItem)
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Description, &item.BasePrice, &item.Available); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
		byID[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	if err := s.loadVariants(ctx, itemID, byID); err != nil {
		return nil, err
	}
	if err := s.loadModifierGroups(ctx, itemID, byID); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *SQLiteStore) loadVariants(ctx context.Context, itemID string, byID map[string]*models.MenuItem) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, name, price_delta, is_default FROM menu_variants
		 WHERE (? = '' OR item_id = ?) ORDER BY item_id, position`,
		itemID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to get variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var owner string
		var v models.Variant
		if err := rows.Scan(&owner, &v.Name, &v.PriceDelta, &v.IsDefault); err != nil {
			return fmt.Errorf("failed to scan variant: %w", err)
		}
		if item, ok := byID[owner]; ok {
			item.Variants = append(item.Variants, v)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate variants: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadModifierGroups(ctx context.Context, itemID string, byID map[string]*models.MenuItem) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.item_id, g.name, g.mode, g.required, o.name, o.price_delta
		 FROM modifier_groups g
		 LEFT JOIN modifier_options o ON o.item_id = g.item_id AND o.group_name = g.name
		 WHERE (? = '' OR g.item_id = ?)
		 ORDER BY g.item_id, g.position, o.position`,
		itemID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to get modifier groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			owner, groupName, mode string
			required               bool
			optionName             sql.NullString
			optionDelta            decimal.NullDecimal
		)
		if err := rows.Scan(&owner, &groupName, &mode, &required, &optionName, &optionDelta); err != nil {
			return fmt.Errorf("failed to scan modifier group: %w", err)
		}

		item, ok := byID[owner]
		if !ok {
			continue
		}

		n := len(item.ModifierGroups)
		if n == 0 || item.ModifierGroups[n-1].Name != groupName {
			m, err := models.ParseSelectionMode(mode)
			if err != nil {
				return fmt.Errorf("failed to parse mode of group %q: %w", groupName, err)
			}
			item.ModifierGroups = append(item.ModifierGroups, models.ModifierGroup{
				Name:     groupName,
				Mode:     m,
				Required: required,
			})
			n++
		}

		if optionName.Valid {
			group := &item.ModifierGroups[n-1]
			group.Options = append(group.Options, models.Modifier{
				Name:       optionName.String,
				PriceDelta: optionDelta.Decimal,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate modifier groups: %w", err)
	}
	return nil
}
