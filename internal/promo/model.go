package promo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percentage is a discount rate such as 10 for 10%. Values outside 0-100 are
// stored as given.
type Percentage float64

// AmountOf resolves the percentage against subtotal as a currency amount
// rounded to cents.
func (p Percentage) AmountOf(subtotal float64) float64 {
	return decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(float64(p))).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

func (p Percentage) String() string {
	return decimal.NewFromFloat(float64(p)).String()
}

type Validation struct {
	Valid    bool       `json:"valid"`
	Discount Percentage `json:"discount"`
	Message  string     `json:"message"`
}

type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	msgNoCode       = "No promo code provided"
	msgInvalidCode  = "Invalid promo code."
	msgAdded        = "Promo code added successfully"
	msgRemoved      = "Promo code removed successfully"
	msgNotFound     = "Promo code not found"
	appliedTemplate = "Promo code applied! %s%% discount."
)

func appliedMessage(p Percentage) string {
	return fmt.Sprintf(appliedTemplate, p)
}
