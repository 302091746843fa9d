package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sustieats/order-svc/internal/domain"
	"sustieats/order-svc/internal/service"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Accounts service.AccountServiceInterface
	Orders   service.OrderServiceInterface
	Shop     service.ShopServiceInterface
	Receipts service.ReceiptServiceInterface
	Stats    service.StatsServiceInterface
	Log      zerolog.Logger
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	accounts service.AccountServiceInterface,
	orders service.OrderServiceInterface,
	shop service.ShopServiceInterface,
	receipts service.ReceiptServiceInterface,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		Catalog:  catalog,
		Accounts: accounts,
		Orders:   orders,
		Shop:     shop,
		Receipts: receipts,
		Log:      log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/customers", h.registerCustomer).Methods("POST")
	r.HandleFunc("/api/owners", h.registerOwner).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout/{customerId}", h.logout).Methods("POST")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}", h.getRestaurant).Methods("GET")

	r.HandleFunc("/api/customers/{customerId}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/customers/{customerId}/cart", h.addToCart).Methods("POST")
	r.HandleFunc("/api/customers/{customerId}/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/customers/{customerId}/cart/items/{itemId}", h.removeFromCart).Methods("DELETE")
	r.HandleFunc("/api/customers/{customerId}/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/customers/{customerId}/orders", h.getCustomerOrders).Methods("GET")
	r.HandleFunc("/api/customers/{customerId}/loyalty", h.getLoyalty).Methods("GET")

	r.HandleFunc("/api/owners/{ownerId}/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/owners/{ownerId}/restaurants/{restaurantId}/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/owners/{ownerId}/restaurants/{restaurantId}/menu/{itemId}", h.removeMenuItem).Methods("DELETE")
	r.HandleFunc("/api/owners/{ownerId}/restaurants/{restaurantId}/menu/{itemId}/availability", h.setAvailability).Methods("PUT")
	r.HandleFunc("/api/owners/{ownerId}/restaurants/{restaurantId}/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/owners/{ownerId}/restaurants/{restaurantId}/orders/{orderId}/dispatch", h.dispatchOrder).Methods("POST")
	r.HandleFunc("/api/owners/{ownerId}/restaurants/{restaurantId}/orders/{orderId}/cancel", h.cancelOrder).Methods("POST")

	if h.Stats != nil {
		r.HandleFunc("/api/owners/{ownerId}/restaurants/{restaurantId}/stats", h.getRestaurantStats).Methods("GET")
	}

	r.HandleFunc("/api/admins/{adminId}/orders", h.getAllOrders).Methods("GET")
	r.HandleFunc("/api/admins/{adminId}/customers/{customerId}/active", h.setCustomerActive).Methods("PUT")
	r.HandleFunc("/api/admins/{adminId}/owners/{ownerId}/active", h.setOwnerActive).Methods("PUT")

	r.HandleFunc("/api/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *Handler) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}
	customer := domain.NewCustomer()
	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Password = req.Password
	if err := h.Accounts.RegisterCustomer(customer); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) registerOwner(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}
	owner := &domain.Owner{Name: req.Name, Email: req.Email, Phone: req.Phone, Password: req.Password}
	if err := h.Accounts.RegisterOwner(owner); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, owner)
}

type loginRequest struct {
	Role     string `json:"role"`
	ID       int    `json:"id"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	account, err := h.Accounts.Login(role, req.ID, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if customer, ok := account.(*domain.Customer); ok {
		h.Shop.Open(customer)
	}
	writeJSON(w, http.StatusOK, domain.Describe(account))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	if !h.Shop.Close(customerID) {
		h.writeError(w, service.ErrNotLoggedIn)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "restaurantId")
	if !ok {
		return
	}
	restaurant, err := h.Catalog.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	cart, err := h.Shop.Cart(customerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

type addToCartRequest struct {
	RestaurantID int `json:"restaurant_id"`
	ItemID       int `json:"item_id"`
	Qty          int `json:"qty"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	var req addToCartRequest
	if !decode(w, r, &req) {
		return
	}
	cart, err := h.Shop.AddToCart(r.Context(), customerID, req.RestaurantID, req.ItemID, req.Qty)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	if err := h.Shop.ClearCart(customerID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	itemID, ok := pathInt(w, r, "itemId")
	if !ok {
		return
	}
	cart, err := h.Shop.RemoveFromCart(customerID, itemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

type checkoutRequest struct {
	UseDiscount bool `json:"use_discount"`
}

type checkoutResponse struct {
	*service.CheckoutResult
	ReceiptURL string `json:"receipt_url"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	var req checkoutRequest
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	result, err := h.Shop.Checkout(r.Context(), customerID, req.UseDiscount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, checkoutResponse{
		CheckoutResult: result,
		ReceiptURL:     h.Receipts.Link(result.OrderID),
	})
}

func (h *Handler) getCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	if _, err := h.Shop.Customer(customerID); err != nil {
		h.writeError(w, err)
		return
	}
	orders, err := h.Orders.ListForCustomer(customerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getLoyalty(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	summary, err := h.Shop.Loyalty(customerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	var restaurant domain.Restaurant
	if !decode(w, r, &restaurant) {
		return
	}
	if err := h.Catalog.Create(r.Context(), ownerID, &restaurant); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

type menuItemRequest struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available *bool           `json:"available"`
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	restaurantID, ok := pathInt(w, r, "restaurantId")
	if !ok {
		return
	}
	var req menuItemRequest
	if !decode(w, r, &req) {
		return
	}
	item := domain.MenuItem{ID: req.ID, Name: req.Name, Price: req.Price, Available: true}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := h.Catalog.AddMenuItem(r.Context(), ownerID, restaurantID, item); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	restaurantID, ok := pathInt(w, r, "restaurantId")
	if !ok {
		return
	}
	itemID, ok := pathInt(w, r, "itemId")
	if !ok {
		return
	}
	if err := h.Catalog.RemoveMenuItem(r.Context(), ownerID, restaurantID, itemID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	restaurantID, ok := pathInt(w, r, "restaurantId")
	if !ok {
		return
	}
	itemID, ok := pathInt(w, r, "itemId")
	if !ok {
		return
	}
	var req availabilityRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.Catalog.SetAvailability(r.Context(), ownerID, restaurantID, itemID, req.Available); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	restaurantID, ok := pathInt(w, r, "restaurantId")
	if !ok {
		return
	}
	orders, err := h.Orders.ListForRestaurant(ownerID, restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) dispatchOrder(w http.ResponseWriter, r *http.Request) {
	h.transitionOrder(w, r, h.Orders.Dispatch)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transitionOrder(w, r, h.Orders.Cancel)
}

type transitionFunc func(ctx context.Context, ownerID, restaurantID, orderID int) (*domain.Order, error)

func (h *Handler) transitionOrder(w http.ResponseWriter, r *http.Request, apply transitionFunc) {
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	restaurantID, ok := pathInt(w, r, "restaurantId")
	if !ok {
		return
	}
	orderID, ok := pathInt(w, r, "orderId")
	if !ok {
		return
	}
	order, err := apply(r.Context(), ownerID, restaurantID, orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	restaurantID, ok := pathInt(w, r, "restaurantId")
	if !ok {
		return
	}
	stats, err := h.Stats.ForRestaurant(r.Context(), ownerID, restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	adminID, ok := pathInt(w, r, "adminId")
	if !ok {
		return
	}
	if err := h.Accounts.RequireAdmin(adminID); err != nil {
		h.writeError(w, err)
		return
	}
	orders, err := h.Orders.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type activeRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) setCustomerActive(w http.ResponseWriter, r *http.Request) {
	adminID, ok := pathInt(w, r, "adminId")
	if !ok {
		return
	}
	customerID, ok := pathInt(w, r, "customerId")
	if !ok {
		return
	}
	var req activeRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.Accounts.SetCustomerActive(adminID, customerID, req.Active); err != nil {
		h.writeError(w, err)
		return
	}
	if !req.Active {
		h.Shop.Close(customerID)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setOwnerActive(w http.ResponseWriter, r *http.Request) {
	adminID, ok := pathInt(w, r, "adminId")
	if !ok {
		return
	}
	ownerID, ok := pathInt(w, r, "ownerId")
	if !ok {
		return
	}
	var req activeRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.Accounts.SetOwnerActive(adminID, ownerID, req.Active); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathInt(w, r, "orderId")
	if !ok {
		return
	}
	orders, err := h.Orders.Get(orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathInt(w, r, "orderId")
	if !ok {
		return
	}
	png, err := h.Receipts.QRCode(orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.Log.Error().Err(err).Msg("request failed")
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidField),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrNotAdmin),
		errors.Is(err, service.ErrAccountInactive):
		return http.StatusForbidden
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrOwnerNotFound),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrDuplicateMenuItem),
		errors.Is(err, service.ErrItemUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return v, true
}
