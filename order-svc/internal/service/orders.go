package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"sustieats/order-svc/internal/domain"
)

type OrderService struct {
	orders      OrderStore
	restaurants RestaurantStore
	owners      OwnerStore
	publisher   OrderPublisher
	log         zerolog.Logger
}

func NewOrderService(orders OrderStore, restaurants RestaurantStore, owners OwnerStore, publisher OrderPublisher, log zerolog.Logger) *OrderService {
	return &OrderService{
		orders:      orders,
		restaurants: restaurants,
		owners:      owners,
		publisher:   publisher,
		log:         log.With().Str("component", "orders").Logger(),
	}
}

func (s *OrderService) Dispatch(ctx context.Context, ownerID, restaurantID, orderID int) (*domain.Order, error) {
	return s.transition(ctx, ownerID, restaurantID, orderID, (*domain.Order).Dispatch)
}

func (s *OrderService) Cancel(ctx context.Context, ownerID, restaurantID, orderID int) (*domain.Order, error) {
	return s.transition(ctx, ownerID, restaurantID, orderID, (*domain.Order).Cancel)
}

// transition applies apply to the record identified by (orderID, restaurantID).
// A refused transition leaves the order table untouched.
func (s *OrderService) transition(ctx context.Context, ownerID, restaurantID, orderID int, apply func(*domain.Order) bool) (*domain.Order, error) {
	if _, err := ownedRestaurant(s.owners, s.restaurants, ownerID, restaurantID); err != nil {
		return nil, err
	}

	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == orderID && orders[i].RestaurantID == restaurantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrOrderNotFound
	}

	from := orders[idx].Status
	if !apply(&orders[idx]) {
		return nil, fmt.Errorf("%w: order %d is %s", ErrInvalidTransition, orderID, from)
	}
	if err := s.orders.SaveOrders(orders); err != nil {
		return nil, fmt.Errorf("failed to save orders: %w", err)
	}

	updated := orders[idx]
	s.log.Info().
		Int("order_id", orderID).
		Int("restaurant_id", restaurantID).
		Str("from", from.String()).
		Str("to", updated.Status.String()).
		Msg("order status changed")

	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, domain.NewOrderEvent(domain.EventOrderStatusChanged, updated)); err != nil {
			s.log.Warn().Err(err).Int("order_id", orderID).Msg("failed to publish order event")
		}
	}
	return &updated, nil
}

func (s *OrderService) ListForCustomer(customerID int) ([]domain.Order, error) {
	return s.filter(func(o domain.Order) bool { return o.CustomerID == customerID })
}

func (s *OrderService) ListForRestaurant(ownerID, restaurantID int) ([]domain.Order, error) {
	if _, err := ownedRestaurant(s.owners, s.restaurants, ownerID, restaurantID); err != nil {
		return nil, err
	}
	return s.filter(func(o domain.Order) bool { return o.RestaurantID == restaurantID })
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.orders.LoadOrders()
}

// Get returns every record of one checkout transaction.
func (s *OrderService) Get(orderID int) ([]domain.Order, error) {
	orders, err := s.filter(func(o domain.Order) bool { return o.ID == orderID })
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders, nil
}

func (s *OrderService) filter(keep func(domain.Order) bool) ([]domain.Order, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, err
	}
	result := make([]domain.Order, 0)
	for _, o := range orders {
		if keep(o) {
			result = append(result, o)
		}
	}
	return result, nil
}

// ownedRestaurant checks that ownerID is an active owner of restaurantID and
// returns the restaurant table along with the restaurant's index in it.
func ownedRestaurant(owners OwnerStore, restaurants RestaurantStore, ownerID, restaurantID int) (restaurantIndex, error) {
	if err := requireActiveOwner(owners, ownerID); err != nil {
		return restaurantIndex{}, err
	}

	all, err := restaurants.LoadRestaurants()
	if err != nil {
		return restaurantIndex{}, fmt.Errorf("failed to load restaurants: %w", err)
	}
	for i := range all {
		if all[i].ID != restaurantID {
			continue
		}
		if all[i].OwnerID != ownerID {
			return restaurantIndex{}, ErrNotOwner
		}
		return restaurantIndex{all: all, idx: i}, nil
	}
	return restaurantIndex{}, ErrRestaurantNotFound
}

type restaurantIndex struct {
	all []domain.Restaurant
	idx int
}

func (ri restaurantIndex) restaurant() *domain.Restaurant {
	return &ri.all[ri.idx]
}

func requireActiveOwner(owners OwnerStore, ownerID int) error {
	all, err := owners.LoadOwners()
	if err != nil {
		return fmt.Errorf("failed to load owners: %w", err)
	}
	for _, o := range all {
		if o.ID == ownerID {
			if !o.Active {
				return ErrAccountInactive
			}
			return nil
		}
	}
	return ErrOwnerNotFound
}
