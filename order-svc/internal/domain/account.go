package domain

import "fmt"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleOwner, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Account is implemented only by *Customer, *Owner and *Admin.
type Account interface {
	Role() Role
	account()
}

type Customer struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Password      string  `json:"-"`
	Active        bool    `json:"active"`
	Address       Address `json:"address"`
	LoyaltyPoints int     `json:"loyalty_points"`
	Cart          *Cart   `json:"-"`
	OrderIDs      []int   `json:"order_ids,omitempty"`
}

func NewCustomer() *Customer {
	return &Customer{Active: true, Cart: NewCart()}
}

func (c *Customer) Role() Role { return RoleCustomer }
func (c *Customer) account()   {}

func (c *Customer) Login(password string) bool {
	return c.Password == password
}

// Checkout splits the cart into one placed order per restaurant, in the
// order restaurants first appear in the cart. The cart is cleared only when
// at least one order was placed.
func (c *Customer) Checkout() []Order {
	if c.Cart == nil || c.Cart.IsEmpty() {
		return nil
	}

	var restaurantOrder []int
	groups := make(map[int]*Order)
	for _, ci := range c.Cart.items {
		order, ok := groups[ci.RestaurantID]
		if !ok {
			order = NewOrder(c.ID, ci.RestaurantID)
			groups[ci.RestaurantID] = order
			restaurantOrder = append(restaurantOrder, ci.RestaurantID)
		}
		order.Items = append(order.Items, OrderItem{
			Item:      ci.Item,
			Qty:       ci.Qty,
			UnitPrice: ci.Item.Price,
		})
	}

	placed := make([]Order, 0, len(restaurantOrder))
	for _, restaurantID := range restaurantOrder {
		order := groups[restaurantID]
		if order.Place() {
			placed = append(placed, *order)
		}
	}

	if len(placed) > 0 {
		c.Cart.Clear()
	}
	return placed
}

type Owner struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Password      string `json:"-"`
	Active        bool   `json:"active"`
	RestaurantIDs []int  `json:"restaurant_ids,omitempty"`
}

func (o *Owner) Role() Role { return RoleOwner }
func (o *Owner) account()   {}

func (o *Owner) Login(password string) bool {
	return o.Password == password
}

type Admin struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Password string `json:"-"`
}

func (a *Admin) Role() Role { return RoleAdmin }
func (a *Admin) account()   {}

func (a *Admin) Login(password string) bool {
	return a.Password == password
}

type AccountSummary struct {
	Role          Role   `json:"role"`
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Active        bool   `json:"active"`
	LoyaltyPoints *int   `json:"loyalty_points,omitempty"`
	CartSize      *int   `json:"cart_size,omitempty"`
	RestaurantIDs []int  `json:"restaurant_ids,omitempty"`
}

func Describe(a Account) AccountSummary {
	switch acc := a.(type) {
	case *Customer:
		points := acc.LoyaltyPoints
		cartSize := 0
		if acc.Cart != nil {
			cartSize = acc.Cart.Len()
		}
		return AccountSummary{
			Role:          RoleCustomer,
			ID:            acc.ID,
			Name:          acc.Name,
			Active:        acc.Active,
			LoyaltyPoints: &points,
			CartSize:      &cartSize,
		}
	case *Owner:
		return AccountSummary{
			Role:          RoleOwner,
			ID:            acc.ID,
			Name:          acc.Name,
			Active:        acc.Active,
			RestaurantIDs: acc.RestaurantIDs,
		}
	case *Admin:
		return AccountSummary{Role: RoleAdmin, ID: acc.ID, Name: acc.Name, Active: true}
	default:
		return AccountSummary{}
	}
}
