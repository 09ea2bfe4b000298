package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/models"
)

// CalculateTotals computes tax and total for a subtotal.
// tax = subtotal × taxRate, rounded half-up to 2 places; total = subtotal + tax.
func CalculateTotals(subtotal, taxRate decimal.Decimal) (models.Totals, error) {
	if taxRate.IsNegative() {
		return models.Totals{}, reject(ErrNegativeTaxRate, "tax_rate", "got %s", taxRate)
	}
	tax := subtotal.Mul(taxRate).Round(Places)
	return models.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

// RateFromPercent converts a percentage as entered in the restaurant settings (8.5)
// into the fraction used for tax computation (0.085).
func RateFromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(decimal.NewFromInt(100))
}
