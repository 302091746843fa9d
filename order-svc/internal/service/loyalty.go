package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sustieats/order-svc/internal/domain"
)

const (
	DiscountPointsCost = 1000
	PointsPerCheckout  = 10
)

var discountMultiplier = decimal.RequireFromString("0.90")

func IsEligibleForDiscount(c *domain.Customer) bool {
	return c.LoyaltyPoints >= DiscountPointsCost
}

// TieredDiscount is the legacy low-threshold rate table. Checkout does not use it.
func TieredDiscount(points int) decimal.Decimal {
	switch {
	case points >= 20:
		return decimal.RequireFromString("0.20")
	case points >= 10:
		return decimal.RequireFromString("0.10")
	case points >= 5:
		return decimal.RequireFromString("0.05")
	default:
		return decimal.Zero
	}
}

type CheckoutResult struct {
	OrderID         int            `json:"order_id"`
	Orders          []domain.Order `json:"orders"`
	DiscountApplied bool           `json:"discount_applied"`
	PointsRedeemed  int            `json:"points_redeemed"`
	PointsEarned    int            `json:"points_earned"`
	Balance         int            `json:"loyalty_points"`
}

type LoyaltySummary struct {
	CustomerID    int             `json:"customer_id"`
	Points        int             `json:"loyalty_points"`
	Eligible      bool            `json:"eligible_for_discount"`
	PointsToNext  int             `json:"points_to_discount"`
	TieredPercent decimal.Decimal `json:"tiered_rate"`
}

func Summarize(c *domain.Customer) *LoyaltySummary {
	toNext := DiscountPointsCost - c.LoyaltyPoints
	if toNext < 0 {
		toNext = 0
	}
	return &LoyaltySummary{
		CustomerID:    c.ID,
		Points:        c.LoyaltyPoints,
		Eligible:      IsEligibleForDiscount(c),
		PointsToNext:  toNext,
		TieredPercent: TieredDiscount(c.LoyaltyPoints),
	}
}

type LoyaltyManager struct {
	orders    OrderStore
	customers CustomerStore
	publisher OrderPublisher
	log       zerolog.Logger
}

func NewLoyaltyManager(orders OrderStore, customers CustomerStore, publisher OrderPublisher, log zerolog.Logger) *LoyaltyManager {
	return &LoyaltyManager{
		orders:    orders,
		customers: customers,
		publisher: publisher,
		log:       log.With().Str("component", "loyalty").Logger(),
	}
}

// ProcessCheckout finalizes one checkout transaction. Every order gets the
// same id, the discount is redeemed at most once, and the customer earns a
// flat reward. Orders are appended before the new balance is written and
// nothing is rolled back if a later write fails. The customer's in-memory
// balance changes only after the balance write succeeds, so calling again
// after an error re-derives the id and discount from unchanged points.
func (m *LoyaltyManager) ProcessCheckout(ctx context.Context, c *domain.Customer, orders []domain.Order, useDiscount bool) (*CheckoutResult, error) {
	if len(orders) == 0 {
		return nil, ErrEmptyCart
	}

	orderID, err := m.orders.NextOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate order id: %w", err)
	}

	points := c.LoyaltyPoints
	discounted := useDiscount && IsEligibleForDiscount(c)
	redeemed := 0
	if discounted {
		points -= DiscountPointsCost
		redeemed = DiscountPointsCost
	}

	placed := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		order.ID = orderID
		order.CustomerID = c.ID
		order.Status = domain.StatusPlaced
		order.Total = order.Subtotal()
		if discounted {
			order.Total = order.Total.Mul(discountMultiplier)
		}
		if err := m.orders.AppendOrder(order); err != nil {
			return nil, fmt.Errorf("failed to persist order %d for restaurant %d: %w", orderID, order.RestaurantID, err)
		}
		placed = append(placed, order)
	}

	points += PointsPerCheckout
	if err := m.customers.UpdateLoyaltyPoints(c.ID, points); err != nil {
		m.log.Error().
			Err(err).
			Int("customer_id", c.ID).
			Int("order_id", orderID).
			Msg("orders persisted but loyalty balance was not")
		return nil, fmt.Errorf("failed to persist loyalty points: %w", err)
	}
	c.LoyaltyPoints = points
	c.OrderIDs = append(c.OrderIDs, orderID)

	m.log.Info().
		Int("customer_id", c.ID).
		Int("order_id", orderID).
		Int("orders", len(placed)).
		Bool("discount", discounted).
		Int("balance", points).
		Msg("checkout processed")

	m.publish(ctx, placed, discounted)

	return &CheckoutResult{
		OrderID:         orderID,
		Orders:          placed,
		DiscountApplied: discounted,
		PointsRedeemed:  redeemed,
		PointsEarned:    PointsPerCheckout,
		Balance:         points,
	}, nil
}

func (m *LoyaltyManager) publish(ctx context.Context, orders []domain.Order, discounted bool) {
	if m.publisher == nil {
		return
	}
	for _, order := range orders {
		event := domain.NewOrderEvent(domain.EventOrderPlaced, order)
		event.DiscountApplied = discounted
		if err := m.publisher.PublishOrderEvent(ctx, event); err != nil {
			m.log.Warn().
				Err(err).
				Int("order_id", order.ID).
				Int("restaurant_id", order.RestaurantID).
				Msg("failed to publish order event")
		}
	}
}
