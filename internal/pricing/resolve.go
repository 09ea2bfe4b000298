// Package pricing turns a guest's selection into a priced order line.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/models"
)

// Places is the number of decimal places prices are rounded to.
const Places = 2

// MaxQuantity is the largest quantity a single line may carry.
const MaxQuantity = 999

// Resolve validates sel against item and computes the unit price.
//
// Checks run in a fixed order and the first failure is returned:
//  1. 1 <= quantity <= MaxQuantity
//  2. a variant is chosen or defaulted when the item has variants
//  3. the chosen variant exists
//  4. every required group has a selection
//  5. every selected group exists and its choice matches the group's mode and options
//
// unit price = base + variant delta + sum of modifier deltas, floored at zero and
// rounded half-up once at the end. The returned line has no ID; callers assign one.
func Resolve(item *models.MenuItem, sel models.Selection) (models.OrderLine, error) {
	if sel.Quantity < 1 || sel.Quantity > MaxQuantity {
		return models.OrderLine{}, RejectQuantity(sel.Quantity)
	}

	variant, err := resolveVariant(item, sel.VariantName)
	if err != nil {
		return models.OrderLine{}, err
	}

	for _, g := range item.ModifierGroups {
		if g.Required && sel.Modifiers[g.Name].IsEmpty() {
			return models.OrderLine{}, reject(ErrMissingRequiredModifier, g.Name, "choose an option")
		}
	}

	chosen, err := resolveModifiers(item, sel.Modifiers)
	if err != nil {
		return models.OrderLine{}, err
	}

	price := item.BasePrice.Add(variant.PriceDelta)
	for _, c := range chosen {
		price = price.Add(c.delta)
	}
	if price.IsNegative() {
		price = decimal.Zero
	}

	line := models.OrderLine{
		MenuItemID:  item.ID,
		Name:        item.Name,
		VariantName: variant.Name,
		Modifiers:   normalize(item, chosen),
		Notes:       sel.Notes,
		UnitPrice:   price.Round(Places),
	}
	return line.WithQuantity(sel.Quantity), nil
}

// Quote resolves sel the way Resolve does for a price preview.
// A zero quantity quotes a single unit.
func Quote(item *models.MenuItem, sel models.Selection) (models.OrderLine, error) {
	if sel.Quantity == 0 {
		sel.Quantity = 1
	}
	return Resolve(item, sel)
}

func resolveVariant(item *models.MenuItem, name string) (models.Variant, error) {
	if name == "" {
		if len(item.Variants) == 0 {
			return models.Variant{}, nil
		}
		if v, ok := item.DefaultVariant(); ok {
			return v, nil
		}
		return models.Variant{}, reject(ErrMissingVariant, FieldVariant, "%s has %d variants and none is the default", item.Name, len(item.Variants))
	}
	v, ok := item.Variant(name)
	if !ok {
		return models.Variant{}, reject(ErrUnknownVariant, FieldVariant, "%q", name)
	}
	return v, nil
}

type chosenOption struct {
	group string
	name  string
	delta decimal.Decimal
}

func resolveModifiers(item *models.MenuItem, choices map[string]models.ModifierChoice) ([]chosenOption, error) {
	groups := make([]string, 0, len(choices))
	for name := range choices {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	var chosen []chosenOption
	for _, groupName := range groups {
		choice := choices[groupName]
		group, ok := item.Group(groupName)
		if !ok {
			return nil, reject(ErrInvalidModifierSelection, groupName, "no such group on %s", item.Name)
		}
		if choice.IsEmpty() {
			continue
		}
		if choice.Mode() != group.Mode {
			return nil, reject(ErrInvalidModifierSelection, groupName, "group takes %s selection, got %s", group.Mode, choice.Mode())
		}

		seen := make(map[string]bool, choice.Len())
		for _, name := range choice.Names() {
			if seen[name] {
				return nil, reject(ErrInvalidModifierSelection, groupName, "%q chosen twice", name)
			}
			seen[name] = true

			opt, ok := group.Option(name)
			if !ok {
				return nil, reject(ErrInvalidModifierSelection, groupName, "unknown option %q", name)
			}
			chosen = append(chosen, chosenOption{group: groupName, name: name, delta: opt.PriceDelta})
		}
	}
	return chosen, nil
}

// normalize lists the chosen options per group, groups in item order, options sorted.
func normalize(item *models.MenuItem, chosen []chosenOption) []models.ModifierSelection {
	if len(chosen) == 0 {
		return nil
	}
	byGroup := make(map[string][]string)
	for _, c := range chosen {
		byGroup[c.group] = append(byGroup[c.group], c.name)
	}

	var out []models.ModifierSelection
	for _, g := range item.ModifierGroups {
		names, ok := byGroup[g.Name]
		if !ok {
			continue
		}
		sort.Strings(names)
		out = append(out, models.ModifierSelection{Group: g.Name, Options: names})
	}
	return out
}
