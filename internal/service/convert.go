package service

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/order"
	"github.com/mmynk/restauflow/internal/pricing"
	"github.com/mmynk/restauflow/pkg/api"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(pricing.Places)
}

func menuItemToAPI(item *models.MenuItem) *api.MenuItem {
	out := &api.MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		BasePrice:   money(item.BasePrice),
		Available:   item.Available,
	}
	for _, v := range item.Variants {
		out.Variants = append(out.Variants, api.Variant{
			Name:       v.Name,
			PriceDelta: money(v.PriceDelta),
			IsDefault:  v.IsDefault,
		})
	}
	for _, g := range item.ModifierGroups {
		group := api.ModifierGroup{
			Name:     g.Name,
			Mode:     g.Mode.String(),
			Required: g.Required,
			Options:  make([]api.Modifier, 0, len(g.Options)),
		}
		for _, o := range g.Options {
			group.Options = append(group.Options, api.Modifier{
				Name:       o.Name,
				PriceDelta: money(o.PriceDelta),
			})
		}
		out.ModifierGroups = append(out.ModifierGroups, group)
	}
	return out
}

// parseAmount reads a wire amount; an empty string is zero.
func parseAmount(itemID, field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %s %q is not a number", models.ErrInvalidMenuItem, itemID, field, s)
	}
	return d, nil
}

// menuItemFromAPI decodes an item sent by staff. The result is not validated.
func menuItemFromAPI(in api.MenuItem) (*models.MenuItem, error) {
	base, err := parseAmount(in.ID, "base_price", in.BasePrice)
	if err != nil {
		return nil, err
	}
	item := &models.MenuItem{
		ID:          in.ID,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		BasePrice:   base,
		Available:   in.Available,
	}
	for _, v := range in.Variants {
		delta, err := parseAmount(in.ID, "variant "+v.Name, v.PriceDelta)
		if err != nil {
			return nil, err
		}
		item.Variants = append(item.Variants, models.Variant{Name: v.Name, PriceDelta: delta, IsDefault: v.IsDefault})
	}
	for _, g := range in.ModifierGroups {
		mode, err := models.ParseSelectionMode(g.Mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: group %q: %v", models.ErrInvalidMenuItem, in.ID, g.Name, err)
		}
		group := models.ModifierGroup{Name: g.Name, Mode: mode, Required: g.Required}
		for _, o := range g.Options {
			delta, err := parseAmount(in.ID, "option "+o.Name, o.PriceDelta)
			if err != nil {
				return nil, err
			}
			group.Options = append(group.Options, models.Modifier{Name: o.Name, PriceDelta: delta})
		}
		item.ModifierGroups = append(item.ModifierGroups, group)
	}
	return item, nil
}

// selectionFromAPI decodes the wire selection. A malformed modifier choice is
// reported against its group.
func selectionFromAPI(sel api.Selection) (models.Selection, error) {
	out := models.Selection{
		MenuItemID:  sel.MenuItemID,
		VariantName: sel.Variant,
		Quantity:    sel.Quantity,
		Notes:       sel.Notes,
	}
	if len(sel.Modifiers) > 0 {
		out.Modifiers = make(map[string]models.ModifierChoice, len(sel.Modifiers))
	}
	for group, raw := range sel.Modifiers {
		var choice models.ModifierChoice
		if err := json.Unmarshal(raw, &choice); err != nil {
			return models.Selection{}, &pricing.SelectionError{
				Kind:   pricing.ErrInvalidModifierSelection,
				Field:  group,
				Detail: fmt.Sprintf("choice for %q must be a string or a list of strings", group),
			}
		}
		out.Modifiers[group] = choice
	}
	return out, nil
}

func lineToAPI(line models.OrderLine) *api.OrderLine {
	out := &api.OrderLine{
		ID:         line.ID,
		MenuItemID: line.MenuItemID,
		Name:       line.Name,
		Variant:    line.VariantName,
		Notes:      line.Notes,
		UnitPrice:  money(line.UnitPrice),
		Quantity:   line.Quantity,
		LineTotal:  money(line.LineTotal),
	}
	for _, m := range line.Modifiers {
		out.Modifiers = append(out.Modifiers, api.ModifierSelection{
			Group:   m.Group,
			Options: append([]string(nil), m.Options...),
		})
	}
	return out
}

func linesToAPI(lines []models.OrderLine) []*api.OrderLine {
	out := make([]*api.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineToAPI(l))
	}
	return out
}

func orderToAPI(o models.Order, taxRate decimal.Decimal, currency string) (*api.Order, error) {
	totals, err := order.Totals(o, taxRate)
	if err != nil {
		return nil, err
	}
	return &api.Order{
		ID:        o.ID,
		Lines:     linesToAPI(o.Lines),
		ItemCount: order.ItemCount(o),
		Subtotal:  money(totals.Subtotal),
		Tax:       money(totals.Tax),
		Total:     money(totals.Total),
		Currency:  currency,
	}, nil
}

func submittedToAPI(o *models.SubmittedOrder) *api.SubmittedOrder {
	return &api.SubmittedOrder{
		ID:          o.ID,
		SessionID:   o.SessionID,
		TableID:     o.TableID,
		GuestCount:  o.GuestCount,
		Type:        string(o.Type),
		Status:      string(o.Status),
		Notes:       o.Notes,
		Lines:       linesToAPI(o.Lines),
		Subtotal:    money(o.Totals.Subtotal),
		Tax:         money(o.Totals.Tax),
		Total:       money(o.Totals.Total),
		TaxRate:     o.TaxRate.String(),
		Currency:    o.Currency,
		SubmittedAt: o.SubmittedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func submittedListToAPI(orders []*models.SubmittedOrder) []*api.SubmittedOrder {
	out := make([]*api.SubmittedOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, submittedToAPI(o))
	}
	return out
}
