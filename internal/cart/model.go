package cart

import "github.com/shopspring/decimal"

type LineItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	ImageURL   string  `json:"imageUrl"`
}

// Cart is a user's line items in first-add order. Product ids are unique.
type Cart []LineItem

// ProductInput is what callers submit to AddItem. Quantity defaults to 1.
type ProductInput struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	ImageURL string   `json:"imageUrl" validate:"required"`
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

func (in ProductInput) quantity() int {
	if in.Quantity == nil {
		return 1
	}
	return *in.Quantity
}

// Subtotal is the undiscounted sum of price × quantity over all lines.
func (c Cart) Subtotal() float64 {
	sum := decimal.Zero
	for _, it := range c {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.InexactFloat64()
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

func lineTotal(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}
