package order_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/catalog"
	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/order"
	"github.com/mmynk/restauflow/internal/pricing"
)

type orderingTestContext struct {
	menu    []*models.MenuItem
	taxRate decimal.Decimal
	current models.Selection
	order   models.Order
	err     error
}

func (c *orderingTestContext) reset() {
	*c = orderingTestContext{}
}

func (c *orderingTestContext) theHouseMenu() error {
	c.menu = catalog.Seed()
	return nil
}

func (c *orderingTestContext) aTaxRateOfPercent(percent string) error {
	p, err := decimal.NewFromString(percent)
	if err != nil {
		return err
	}
	c.taxRate = pricing.RateFromPercent(p)
	return nil
}

func (c *orderingTestContext) itemHasNoDefaultVariant(id string) error {
	for _, item := range c.menu {
		if item.ID != id {
			continue
		}
		for i := range item.Variants {
			item.Variants[i].IsDefault = false
		}
		return nil
	}
	return fmt.Errorf("no item %s on the menu", id)
}

func (c *orderingTestContext) iSelectOf(quantity int, id string) error {
	c.current = models.Selection{
		MenuItemID: id,
		Quantity:   quantity,
		Modifiers:  map[string]models.ModifierChoice{},
	}
	return nil
}

func (c *orderingTestContext) iChooseTheVariant(name string) error {
	c.current.VariantName = name
	return nil
}

func (c *orderingTestContext) iPickIn(option, group string) error {
	c.current.Modifiers[group] = models.Single(option)
	return nil
}

func (c *orderingTestContext) iPickEachOfIn(options, group string) error {
	var names []string
	for _, name := range strings.Split(options, ",") {
		names = append(names, strings.TrimSpace(name))
	}
	c.current.Modifiers[group] = models.Multiple(names...)
	return nil
}

func (c *orderingTestContext) iWriteTheNote(notes string) error {
	c.current.Notes = notes
	return nil
}

func (c *orderingTestContext) iAddItToTheOrder() error {
	provider, err := catalog.NewMemory(c.menu)
	if err != nil {
		return err
	}
	item, err := provider.GetItem(context.Background(), c.current.MenuItemID)
	if err != nil {
		return err
	}
	line, err := pricing.Resolve(item, c.current)
	if err != nil {
		c.err = err
		return nil
	}
	line.ID = fmt.Sprintf("line-%d", len(c.order.Lines)+1)
	next, err := order.AddOrUpdate(c.order, line)
	if err != nil {
		c.err = err
		return nil
	}
	c.order = next
	return nil
}

func (c *orderingTestContext) iSetTheQuantityOfLineTo(n, quantity int) error {
	line, err := c.line(n)
	if err != nil {
		return err
	}
	c.order, err = order.SetQuantity(c.order, order.KeyOf(line), quantity)
	return err
}

func (c *orderingTestContext) line(n int) (models.OrderLine, error) {
	if n < 1 || n > len(c.order.Lines) {
		return models.OrderLine{}, fmt.Errorf("order has %d lines, no line %d", len(c.order.Lines), n)
	}
	return c.order.Lines[n-1], nil
}

func (c *orderingTestContext) theOrderHasLines(n int) error {
	if len(c.order.Lines) != n {
		return fmt.Errorf("order has %d lines, want %d", len(c.order.Lines), n)
	}
	return nil
}

func (c *orderingTestContext) lineHasUnitPriceAndTotal(n int, unit, total string) error {
	line, err := c.line(n)
	if err != nil {
		return err
	}
	if got := line.UnitPrice.StringFixed(2); got != unit {
		return fmt.Errorf("unit price %s, want %s", got, unit)
	}
	if got := line.LineTotal.StringFixed(2); got != total {
		return fmt.Errorf("line total %s, want %s", got, total)
	}
	return nil
}

func (c *orderingTestContext) lineHasQuantity(n, quantity int) error {
	line, err := c.line(n)
	if err != nil {
		return err
	}
	if line.Quantity != quantity {
		return fmt.Errorf("quantity %d, want %d", line.Quantity, quantity)
	}
	return nil
}

func (c *orderingTestContext) theOrderAmountIs(field, want string) error {
	totals, err := order.Totals(c.order, c.taxRate)
	if err != nil {
		return err
	}
	var got decimal.Decimal
	switch field {
	case "subtotal":
		got = totals.Subtotal
	case "tax":
		got = totals.Tax
	case "total":
		got = totals.Total
	default:
		return fmt.Errorf("unknown amount %q", field)
	}
	if got.StringFixed(2) != want {
		return fmt.Errorf("%s is %s, want %s", field, got.StringFixed(2), want)
	}
	return nil
}

var errorKinds = map[string]error{
	"invalid quantity":           pricing.ErrInvalidQuantity,
	"missing variant":            pricing.ErrMissingVariant,
	"unknown variant":            pricing.ErrUnknownVariant,
	"missing required modifier":  pricing.ErrMissingRequiredModifier,
	"invalid modifier selection": pricing.ErrInvalidModifierSelection,
}

func (c *orderingTestContext) theSelectionIsRejectedWithOn(kind, field string) error {
	want, ok := errorKinds[kind]
	if !ok {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if c.err == nil {
		return errors.New("expected the selection to be rejected but it was accepted")
	}
	if !errors.Is(c.err, want) {
		return fmt.Errorf("got error %v, want %v", c.err, want)
	}
	var selErr *pricing.SelectionError
	if !errors.As(c.err, &selErr) || selErr.Field != field {
		return fmt.Errorf("error %v does not name field %q", c.err, field)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &orderingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the house menu$`, tc.theHouseMenu)
	ctx.Step(`^a tax rate of ([\d.]+) percent$`, tc.aTaxRateOfPercent)
	ctx.Step(`^"([^"]*)" has no default variant$`, tc.itemHasNoDefaultVariant)

	// When steps
	ctx.Step(`^I select (\d+) of "([^"]*)"$`, tc.iSelectOf)
	ctx.Step(`^I choose the variant '([^']*)'$`, tc.iChooseTheVariant)
	ctx.Step(`^I pick "([^"]*)" in "([^"]*)"$`, tc.iPickIn)
	ctx.Step(`^I pick each of "([^"]*)" in "([^"]*)"$`, tc.iPickEachOfIn)
	ctx.Step(`^I write the note "([^"]*)"$`, tc.iWriteTheNote)
	ctx.Step(`^I add it to the order$`, tc.iAddItToTheOrder)
	ctx.Step(`^I set the quantity of line (\d+) to (\d+)$`, tc.iSetTheQuantityOfLineTo)

	// Then steps
	ctx.Step(`^the order has (\d+) lines?$`, tc.theOrderHasLines)
	ctx.Step(`^line (\d+) has unit price "([^"]*)" and total "([^"]*)"$`, tc.lineHasUnitPriceAndTotal)
	ctx.Step(`^line (\d+) has quantity (\d+)$`, tc.lineHasQuantity)
	ctx.Step(`^the order (subtotal|tax|total) is "([^"]*)"$`, tc.theOrderAmountIs)
	ctx.Step(`^the selection is rejected with "([^"]*)" on "([^"]*)"$`, tc.theSelectionIsRejectedWithOn)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/order_pricing.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
