package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sustieats/order-svc/internal/domain"
)

type CartView struct {
	CustomerID int               `json:"customer_id"`
	Items      []domain.CartItem `json:"items"`
	Total      decimal.Decimal   `json:"total"`
}

func viewCart(c *domain.Customer) *CartView {
	return &CartView{
		CustomerID: c.ID,
		Items:      c.Cart.Items(),
		Total:      c.Cart.Total(),
	}
}

// ShopService holds the logged-in customers. Carts live only here and are
// lost when a session closes.
type ShopService struct {
	sessions map[int]*domain.Customer
	catalog  CatalogServiceInterface
	loyalty  CheckoutProcessor
	log      zerolog.Logger
}

func NewShopService(catalog CatalogServiceInterface, loyalty CheckoutProcessor, log zerolog.Logger) *ShopService {
	return &ShopService{
		sessions: make(map[int]*domain.Customer),
		catalog:  catalog,
		loyalty:  loyalty,
		log:      log.With().Str("component", "shop").Logger(),
	}
}

// Open starts a session for c. An existing session for the same id keeps its cart.
func (s *ShopService) Open(c *domain.Customer) {
	if existing, ok := s.sessions[c.ID]; ok {
		existing.LoyaltyPoints = c.LoyaltyPoints
		existing.Active = c.Active
		return
	}
	if c.Cart == nil {
		c.Cart = domain.NewCart()
	}
	s.sessions[c.ID] = c
}

func (s *ShopService) Close(customerID int) bool {
	if _, ok := s.sessions[customerID]; !ok {
		return false
	}
	delete(s.sessions, customerID)
	return true
}

func (s *ShopService) Customer(customerID int) (*domain.Customer, error) {
	c, ok := s.sessions[customerID]
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return c, nil
}

func (s *ShopService) AddToCart(ctx context.Context, customerID, restaurantID, itemID, qty int) (*CartView, error) {
	c, err := s.Customer(customerID)
	if err != nil {
		return nil, err
	}
	r, err := s.catalog.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	item, ok := r.MenuItem(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if err := c.Cart.AddItem(item, qty, r.ID, r.Name); err != nil {
		return nil, err
	}
	return viewCart(c), nil
}

func (s *ShopService) RemoveFromCart(customerID, itemID int) (*CartView, error) {
	c, err := s.Customer(customerID)
	if err != nil {
		return nil, err
	}
	if c.Cart.RemoveItem(itemID) == 0 {
		return nil, ErrItemNotFound
	}
	return viewCart(c), nil
}

func (s *ShopService) ClearCart(customerID int) error {
	c, err := s.Customer(customerID)
	if err != nil {
		return err
	}
	c.Cart.Clear()
	return nil
}

func (s *ShopService) Cart(customerID int) (*CartView, error) {
	c, err := s.Customer(customerID)
	if err != nil {
		return nil, err
	}
	return viewCart(c), nil
}

// Checkout places one order per restaurant in the cart and hands them to the
// loyalty manager. If persisting fails the cart is refilled so the customer
// can try again.
func (s *ShopService) Checkout(ctx context.Context, customerID int, useDiscount bool) (*CheckoutResult, error) {
	c, err := s.Customer(customerID)
	if err != nil {
		return nil, err
	}
	if c.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	snapshot := c.Cart.Items()
	orders := c.Checkout()
	if len(orders) == 0 {
		return nil, ErrEmptyCart
	}

	result, err := s.loyalty.ProcessCheckout(ctx, c, orders, useDiscount)
	if err != nil {
		c.Cart.Clear()
		for _, line := range snapshot {
			_ = c.Cart.AddItem(line.Item, line.Qty, line.RestaurantID, line.RestaurantName)
		}
		s.log.Error().Err(err).Int("customer_id", customerID).Msg("checkout failed, cart restored")
		return nil, fmt.Errorf("checkout failed: %w", err)
	}
	return result, nil
}

func (s *ShopService) Loyalty(customerID int) (*LoyaltySummary, error) {
	c, err := s.Customer(customerID)
	if err != nil {
		return nil, err
	}
	return Summarize(c), nil
}
