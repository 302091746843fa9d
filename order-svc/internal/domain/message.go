package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEvent struct {
	EventID         uuid.UUID       `json:"event_id"`
	Type            string          `json:"type"`
	OrderID         int             `json:"order_id"`
	CustomerID      int             `json:"customer_id"`
	RestaurantID    int             `json:"restaurant_id"`
	Status          Status          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	DiscountApplied bool            `json:"discount_applied"`
	Timestamp       time.Time       `json:"timestamp"`
}

func NewOrderEvent(eventType string, order Order) OrderEvent {
	return OrderEvent{
		EventID:      uuid.New(),
		Type:         eventType,
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		Total:        order.Total,
		Timestamp:    time.Now(),
	}
}
