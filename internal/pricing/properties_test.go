package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/mmynk/restauflow/internal/models"
)

// drawSelection builds a selection that is valid for margherita().
func drawSelection(t *rapid.T) models.Selection {
	item := margherita()

	variant := rapid.SampledFrom([]string{"", `Regular 10"`, `Large 14"`}).Draw(t, "variant")
	crust := rapid.SampledFrom([]string{"Thin Crust", "Thick Crust", "Stuffed Crust"}).Draw(t, "crust")

	var toppings []string
	for _, o := range item.ModifierGroups[1].Options {
		if rapid.Bool().Draw(t, "topping-"+o.Name) {
			toppings = append(toppings, o.Name)
		}
	}

	return models.Selection{
		MenuItemID:  item.ID,
		VariantName: variant,
		Modifiers: map[string]models.ModifierChoice{
			"Crust Options":  models.Single(crust),
			"Extra Toppings": models.Multiple(toppings...),
		},
		Quantity: rapid.IntRange(1, 20).Draw(t, "quantity"),
		Notes:    rapid.SampledFrom([]string{"", "no basil", "well done"}).Draw(t, "notes"),
	}
}

func TestProperty_ResolveIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sel := drawSelection(t)

		first, err := Resolve(margherita(), sel)
		if err != nil {
			t.Fatalf("valid selection rejected: %v", err)
		}
		second, err := Resolve(margherita(), sel)
		if err != nil {
			t.Fatalf("valid selection rejected on second call: %v", err)
		}
		if !first.UnitPrice.Equal(second.UnitPrice) || !first.LineTotal.Equal(second.LineTotal) {
			t.Fatalf("prices differ: %s/%s vs %s/%s", first.UnitPrice, first.LineTotal, second.UnitPrice, second.LineTotal)
		}
	})
}

func TestProperty_LineTotalIsUnitTimesQuantity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sel := drawSelection(t)
		line, err := Resolve(margherita(), sel)
		if err != nil {
			t.Fatalf("valid selection rejected: %v", err)
		}
		want := line.UnitPrice.Mul(decimal.NewFromInt(int64(sel.Quantity)))
		if !line.LineTotal.Equal(want) {
			t.Fatalf("line total %s, want %s", line.LineTotal, want)
		}
		if !line.UnitPrice.Equal(line.UnitPrice.Round(Places)) {
			t.Fatalf("unit price %s not rounded to %d places", line.UnitPrice, Places)
		}
	})
}

func TestProperty_RequiredGroupEnforced(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sel := drawSelection(t)
		withoutCrust := make(map[string]models.ModifierChoice, len(sel.Modifiers))
		for k, v := range sel.Modifiers {
			if k != "Crust Options" {
				withoutCrust[k] = v
			}
		}
		sel.Modifiers = withoutCrust

		_, err := Resolve(margherita(), sel)
		if err == nil {
			t.Fatal("selection without crust accepted")
		}
		selErr, ok := err.(*SelectionError)
		if !ok || selErr.Kind != ErrMissingRequiredModifier || selErr.Field != "Crust Options" {
			t.Fatalf("got %v, want missing required Crust Options", err)
		}
	})
}

func TestProperty_ToppingOrderDoesNotMatter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sel := drawSelection(t)
		toppings := sel.Modifiers["Extra Toppings"].Names()
		reversed := make([]string, len(toppings))
		for i, name := range toppings {
			reversed[len(toppings)-1-i] = name
		}

		other := sel
		other.Modifiers = map[string]models.ModifierChoice{
			"Crust Options":  sel.Modifiers["Crust Options"],
			"Extra Toppings": models.Multiple(reversed...),
		}

		a, errA := Resolve(margherita(), sel)
		b, errB := Resolve(margherita(), other)
		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v, %v", errA, errB)
		}
		if !a.UnitPrice.Equal(b.UnitPrice) {
			t.Fatalf("order changed price: %s vs %s", a.UnitPrice, b.UnitPrice)
		}
		if len(a.Modifiers) != len(b.Modifiers) {
			t.Fatalf("normalized modifiers differ: %v vs %v", a.Modifiers, b.Modifiers)
		}
		for i := range a.Modifiers {
			if a.Modifiers[i].Group != b.Modifiers[i].Group || len(a.Modifiers[i].Options) != len(b.Modifiers[i].Options) {
				t.Fatalf("normalized modifiers differ: %v vs %v", a.Modifiers, b.Modifiers)
			}
			for j := range a.Modifiers[i].Options {
				if a.Modifiers[i].Options[j] != b.Modifiers[i].Options[j] {
					t.Fatalf("normalized modifiers differ: %v vs %v", a.Modifiers, b.Modifiers)
				}
			}
		}
	})
}
