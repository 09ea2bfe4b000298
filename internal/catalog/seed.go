package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/models"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed returns the house menu used for demos and first start-up.
func Seed() []*models.MenuItem {
	return []*models.MenuItem{
		{
			ID:          "item_spring_rolls",
			Name:        "Spring Rolls (VG)",
			Category:    "Appetizers",
			Description: "Crispy vegetarian spring rolls served with sweet chili sauce.",
			BasePrice:   price("8.99"),
			Available:   true,
		},
		{
			ID:          "item_chicken_wings",
			Name:        "Chicken Wings (6pcs)",
			Category:    "Appetizers",
			Description: "Spicy buffalo chicken wings with a side of blue cheese dip.",
			BasePrice:   price("12.50"),
			Available:   true,
		},
		{
			ID:          "item_margherita",
			Name:        "Margherita Pizza (VG)",
			Category:    "Pizzas",
			Description: "Classic pizza with tomato, mozzarella, and basil.",
			BasePrice:   price("15.00"),
			Available:   true,
			Variants: []models.Variant{
				{Name: `Regular 10"`, PriceDelta: decimal.Zero, IsDefault: true},
				{Name: `Large 14"`, PriceDelta: price("5.00")},
			},
			ModifierGroups: []models.ModifierGroup{
				{
					Name:     "Crust Options",
					Mode:     models.SelectOne,
					Required: true,
					Options: []models.Modifier{
						{Name: "Thin Crust", PriceDelta: decimal.Zero},
						{Name: "Thick Crust", PriceDelta: price("1.00")},
						{Name: "Stuffed Crust", PriceDelta: price("2.50")},
					},
				},
				{
					Name: "Extra Toppings",
					Mode: models.SelectMany,
					Options: []models.Modifier{
						{Name: "Olives", PriceDelta: price("1.50")},
						{Name: "Mushrooms", PriceDelta: price("1.50")},
						{Name: "Pepperoni", PriceDelta: price("2.00")},
						{Name: "Extra Cheese", PriceDelta: price("1.75")},
					},
				},
			},
		},
		{
			ID:          "item_angus_burger",
			Name:        "Angus Beef Burger",
			Category:    "Main Course",
			Description: "Angus beef patty, cheddar, lettuce, tomato and secret sauce in a brioche bun. Served with fries.",
			BasePrice:   price("14.00"),
			Available:   false,
		},
		{
			ID:          "item_grilled_salmon",
			Name:        "Grilled Salmon",
			Category:    "Main Course",
			Description: "Grilled salmon fillet with roasted vegetables and a lemon-dill sauce.",
			BasePrice:   price("22.00"),
			Available:   true,
		},
		{
			ID:          "item_lava_cake",
			Name:        "Chocolate Lava Cake (VG)",
			Category:    "Desserts",
			Description: "Warm dark chocolate cake with a molten center, served with vanilla ice cream.",
			BasePrice:   price("9.50"),
			Available:   true,
		},
		{
			ID:          "item_coffee",
			Name:        "Coffee",
			Category:    "Drinks",
			Description: "Freshly brewed coffee.",
			BasePrice:   price("3.00"),
			Available:   true,
			Variants: []models.Variant{
				{Name: "Small", PriceDelta: decimal.Zero},
				{Name: "Medium", PriceDelta: price("0.50")},
				{Name: "Large", PriceDelta: price("1.00")},
			},
			ModifierGroups: []models.ModifierGroup{
				{
					Name: "Milk Options",
					Mode: models.SelectOne,
					Options: []models.Modifier{
						{Name: "Dairy Milk", PriceDelta: decimal.Zero},
						{Name: "Oat Milk", PriceDelta: price("0.75")},
						{Name: "Almond Milk", PriceDelta: price("0.75")},
					},
				},
				{
					Name: "Add-ins",
					Mode: models.SelectMany,
					Options: []models.Modifier{
						{Name: "Sugar Sachet", PriceDelta: decimal.Zero},
						{Name: "Vanilla Syrup", PriceDelta: price("0.50")},
					},
				},
			},
		},
		{
			ID:          "item_lemonade",
			Name:        "Fresh Lemonade",
			Category:    "Drinks",
			Description: "House-made lemonade with a hint of mint.",
			BasePrice:   price("4.50"),
			Available:   true,
		},
	}
}
