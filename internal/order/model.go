package order

import (
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
)

// Amount is an absolute currency amount. Promo percentages must be resolved
// into an Amount (promo.Percentage.AmountOf) before they reach the workflow.
type Amount float64

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type Order struct {
	OrderID    string          `json:"order_id"`
	UserID     string          `json:"user_id"`
	Customer   Customer        `json:"customer"`
	Items      []cart.LineItem `json:"items"`
	TotalPrice float64         `json:"total_price"`
	Discount   float64         `json:"discount"`
	FinalTotal float64         `json:"final_total"`
	CreatedAt  time.Time       `json:"created_at"`
}

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusCartEmpty Status = "cart_empty"
)

// Result is either Placed with the new order or CartEmpty with no order.
type Result struct {
	Status Status
	Order  *Order
}

func (r Result) Placed() bool { return r.Status == StatusPlaced }
