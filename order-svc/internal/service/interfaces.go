package service

import (
	"context"

	"sustieats/order-svc/internal/domain"
)

type CustomerStore interface {
	LoadCustomers() ([]*domain.Customer, error)
	SaveCustomers(customers []*domain.Customer) error
	AppendCustomer(c *domain.Customer) error
	NextCustomerID() (int, error)
	UpdateLoyaltyPoints(customerID, points int) error
}

type OwnerStore interface {
	LoadOwners() ([]*domain.Owner, error)
	SaveOwners(owners []*domain.Owner) error
	AppendOwner(o *domain.Owner) error
	NextOwnerID() (int, error)
}

type AdminStore interface {
	LoadAdmins() ([]*domain.Admin, error)
}

type RestaurantStore interface {
	LoadRestaurants() ([]domain.Restaurant, error)
	SaveRestaurants(restaurants []domain.Restaurant) error
	AppendRestaurant(r domain.Restaurant) error
	NextRestaurantID() (int, error)
}

type OrderStore interface {
	LoadOrders() ([]domain.Order, error)
	SaveOrders(orders []domain.Order) error
	AppendOrder(o domain.Order) error
	NextOrderID() (int, error)
}

type CatalogCache interface {
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	SetRestaurant(ctx context.Context, r domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type StatsStore interface {
	RecordEvent(ctx context.Context, event domain.OrderEvent) (bool, error)
	RestaurantStats(ctx context.Context, restaurantID int) (*domain.RestaurantStats, error)
}

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	Create(ctx context.Context, ownerID int, r *domain.Restaurant) error
	AddMenuItem(ctx context.Context, ownerID, restaurantID int, item domain.MenuItem) error
	RemoveMenuItem(ctx context.Context, ownerID, restaurantID, itemID int) error
	SetAvailability(ctx context.Context, ownerID, restaurantID, itemID int, available bool) error
}

type AccountServiceInterface interface {
	RegisterCustomer(c *domain.Customer) error
	RegisterOwner(o *domain.Owner) error
	Login(role domain.Role, id int, password string) (domain.Account, error)
	RequireAdmin(adminID int) error
	SetCustomerActive(adminID, customerID int, active bool) error
	SetOwnerActive(adminID, ownerID int, active bool) error
}

type OrderServiceInterface interface {
	Dispatch(ctx context.Context, ownerID, restaurantID, orderID int) (*domain.Order, error)
	Cancel(ctx context.Context, ownerID, restaurantID, orderID int) (*domain.Order, error)
	ListForCustomer(customerID int) ([]domain.Order, error)
	ListForRestaurant(ownerID, restaurantID int) ([]domain.Order, error)
	List() ([]domain.Order, error)
	Get(orderID int) ([]domain.Order, error)
}

type ShopServiceInterface interface {
	Open(c *domain.Customer)
	Close(customerID int) bool
	Customer(customerID int) (*domain.Customer, error)
	AddToCart(ctx context.Context, customerID, restaurantID, itemID, qty int) (*CartView, error)
	RemoveFromCart(customerID, itemID int) (*CartView, error)
	ClearCart(customerID int) error
	Cart(customerID int) (*CartView, error)
	Checkout(ctx context.Context, customerID int, useDiscount bool) (*CheckoutResult, error)
	Loyalty(customerID int) (*LoyaltySummary, error)
}

type CheckoutProcessor interface {
	ProcessCheckout(ctx context.Context, c *domain.Customer, orders []domain.Order, useDiscount bool) (*CheckoutResult, error)
}

type ReceiptServiceInterface interface {
	QRCode(orderID int) ([]byte, error)
	Link(orderID int) string
}

type StatsServiceInterface interface {
	ForRestaurant(ctx context.Context, ownerID, restaurantID int) (*domain.RestaurantStats, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.OrderEvent)
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ AccountServiceInterface = (*AccountService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ ShopServiceInterface    = (*ShopService)(nil)
	_ CheckoutProcessor       = (*LoyaltyManager)(nil)
	_ ReceiptServiceInterface = (*ReceiptService)(nil)
	_ StatsServiceInterface   = (*StatsService)(nil)
	_ ConsumerInterface       = (*OrderEventConsumer)(nil)
)
