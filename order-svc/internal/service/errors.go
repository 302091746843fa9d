package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid id or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrNotLoggedIn        = errors.New("customer is not logged in")
	ErrNotAdmin           = errors.New("admin access required")
	ErrNotOwner           = errors.New("restaurant does not belong to this owner")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrItemUnavailable    = errors.New("menu item is not available")
	ErrDuplicateMenuItem  = errors.New("menu item id already exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("order status does not allow this transition")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrOwnerNotFound      = errors.New("owner not found")
)
