package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusPlaced     Status = "Placed"
	StatusDispatched Status = "Dispatched"
	StatusCancelled  Status = "Cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPlaced, StatusDispatched, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDispatched || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}

// OrderItem keeps a frozen copy of the menu item taken when the order was built.
type OrderItem struct {
	Item      MenuItem        `json:"item"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (oi OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Qty)))
}

type Order struct {
	ID           int             `json:"id"`
	CustomerID   int             `json:"customer_id"`
	RestaurantID int             `json:"restaurant_id"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       Status          `json:"status"`
}

func NewOrder(customerID, restaurantID int) *Order {
	return &Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Status:       StatusPending,
	}
}

func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Place moves a non-empty Pending order to Placed and fixes its total.
func (o *Order) Place() bool {
	if o.Status != StatusPending || len(o.Items) == 0 {
		return false
	}
	o.Total = o.Subtotal()
	o.Status = StatusPlaced
	return true
}

func (o *Order) Dispatch() bool {
	if o.Status != StatusPlaced {
		return false
	}
	o.Status = StatusDispatched
	return true
}

func (o *Order) Cancel() bool {
	if o.Status != StatusPlaced {
		return false
	}
	o.Status = StatusCancelled
	return true
}
