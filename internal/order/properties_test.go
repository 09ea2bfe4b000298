package order

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/pricing"
)

func drawLine(t *rapid.T, label string) models.OrderLine {
	toppings := rapid.SliceOfDistinct(
		rapid.SampledFrom([]string{"Olives", "Mushrooms", "Pepperoni"}),
		func(s string) string { return s },
	).Draw(t, label+"-toppings")
	notes := rapid.SampledFrom([]string{"", "no basil"}).Draw(t, label+"-notes")
	return pizzaLine(label, 1, notes, toppings...)
}

func TestProperty_AddTwiceEqualsAddWithDoubleQuantity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := drawLine(t, "line")

		twice := mustAdd(t, models.Order{}, line, line)
		once := mustAdd(t, models.Order{}, line.WithQuantity(2))

		if len(twice.Lines) != 1 || len(once.Lines) != 1 {
			t.Fatalf("expected one line each, got %d and %d", len(twice.Lines), len(once.Lines))
		}
		if twice.Lines[0].Quantity != once.Lines[0].Quantity {
			t.Fatalf("quantity %d vs %d", twice.Lines[0].Quantity, once.Lines[0].Quantity)
		}
		if !twice.Lines[0].LineTotal.Equal(once.Lines[0].LineTotal) {
			t.Fatalf("line total %s vs %s", twice.Lines[0].LineTotal, once.Lines[0].LineTotal)
		}
		if KeyOf(twice.Lines[0]) != KeyOf(once.Lines[0]) {
			t.Fatal("identity differs")
		}
	})
}

func TestProperty_MergedQuantityStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := models.Order{}
		n := rapid.IntRange(1, 8).Draw(t, "adds")
		for i := 0; i < n; i++ {
			q := rapid.OneOf(rapid.IntRange(1, pricing.MaxQuantity), rapid.IntRange(pricing.MaxQuantity, math.MaxInt)).Draw(t, "quantity")
			next, err := AddOrUpdate(o, colaLine("cola", q))
			if err != nil {
				if !errors.Is(err, pricing.ErrInvalidQuantity) {
					t.Fatalf("unexpected error: %v", err)
				}
				continue
			}
			o = next
		}
		for _, l := range o.Lines {
			if l.Quantity < 1 || l.Quantity > pricing.MaxQuantity {
				t.Fatalf("quantity %d out of range", l.Quantity)
			}
			if l.LineTotal.IsNegative() {
				t.Fatalf("negative line total %s", l.LineTotal)
			}
		}
	})
}

func TestProperty_SetQuantityZeroRemoves(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := models.Order{}
		n := rapid.IntRange(1, 6).Draw(t, "lines")
		for i := 0; i < n; i++ {
			o = mustAdd(t, o, drawLine(t, "line"))
		}
		target := drawLine(t, "target")
		o = mustAdd(t, o, target)

		got, err := SetQuantity(o, KeyOf(target), 0)
		if err != nil {
			t.Fatalf("SetQuantity: %v", err)
		}
		for _, l := range got.Lines {
			if KeyOf(l) == KeyOf(target) {
				t.Fatal("line still present after setting quantity to 0")
			}
		}
		if len(got.Lines) != len(o.Lines)-1 {
			t.Fatalf("removed %d lines, want 1", len(o.Lines)-len(got.Lines))
		}
	})
}

func TestProperty_ToppingOrderMerges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		toppings := rapid.Permutation([]string{"Olives", "Mushrooms", "Pepperoni"}).Draw(t, "toppings")
		k := rapid.IntRange(0, len(toppings)).Draw(t, "k")
		picked := toppings[:k]

		reversed := make([]string, len(picked))
		for i, name := range picked {
			reversed[len(picked)-1-i] = name
		}

		o := mustAdd(t, models.Order{}, pizzaLine("a", 1, "", picked...), pizzaLine("b", 1, "", reversed...))

		if len(o.Lines) != 1 || o.Lines[0].Quantity != 2 {
			t.Fatalf("expected a single line with quantity 2, got %+v", o.Lines)
		}
	})
}
