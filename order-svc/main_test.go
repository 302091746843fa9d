package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"sustieats/config"
	httpapi "sustieats/order-svc/internal/api/http"
	"sustieats/order-svc/internal/domain"
	"sustieats/order-svc/internal/storage"
)

func setupDemoStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store := storage.NewFileStore(t.TempDir(), zerolog.Nop())
	if err := seedDemo(store, zerolog.Nop()); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return store
}

func newTestRouter(t *testing.T, store *storage.FileStore) http.Handler {
	t.Helper()
	cfg := &config.Config{AdminID: 300, AdminPassword: "admin", QRBaseURL: "http://localhost:8081"}
	return httpapi.NewRouter(buildHandler(cfg, store, nil, nil, zerolog.Nop()))
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, setupDemoStore(t))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["service"] != "order-svc" {
		t.Fatalf("unexpected service field: %v", body["service"])
	}
}

func TestSeedDemo_FillsEmptyTables(t *testing.T) {
	store := setupDemoStore(t)

	owners, err := store.LoadOwners()
	if err != nil || len(owners) != 2 {
		t.Fatalf("expected 2 owners, got %d (%v)", len(owners), err)
	}
	restaurants, err := store.LoadRestaurants()
	if err != nil || len(restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d (%v)", len(restaurants), err)
	}
	if restaurants[0].Name != "Demo Deli" || len(restaurants[0].Menu) != 2 {
		t.Fatalf("unexpected first restaurant: %+v", restaurants[0])
	}
	if restaurants[1].OwnerID != 201 || restaurants[1].Menu[0].Name != "Wrap" {
		t.Fatalf("unexpected second restaurant: %+v", restaurants[1])
	}
	customers, err := store.LoadCustomers()
	if err != nil || len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d (%v)", len(customers), err)
	}
	if customers[0].ID != 100 || customers[0].LoyaltyPoints != 0 || !customers[0].Active {
		t.Fatalf("unexpected customer: %+v", customers[0])
	}
}

func TestSeedDemo_KeepsExistingData(t *testing.T) {
	store := storage.NewFileStore(t.TempDir(), zerolog.Nop())
	c := domain.NewCustomer()
	c.ID, c.Name, c.Password, c.LoyaltyPoints = 150, "Existing", "pw", 70
	if err := store.SaveCustomers([]*domain.Customer{c}); err != nil {
		t.Fatalf("failed to save customer: %v", err)
	}

	if err := seedDemo(store, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := seedDemo(store, zerolog.Nop()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	customers, _ := store.LoadCustomers()
	if len(customers) != 1 || customers[0].ID != 150 || customers[0].LoyaltyPoints != 70 {
		t.Fatalf("existing customers were replaced: %+v", customers)
	}
	owners, _ := store.LoadOwners()
	if len(owners) != 2 {
		t.Fatalf("expected demo owners once, got %d", len(owners))
	}
}

func TestDemoCheckoutAndReceipt(t *testing.T) {
	router := newTestRouter(t, setupDemoStore(t))

	send := func(method, path, body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(method, path, bytes.NewBufferString(body)))
		return rr
	}

	if rr := send(http.MethodPost, "/api/login", `{"role":"customer","id":100,"password":"pass"}`); rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr := send(http.MethodPost, "/api/customers/100/cart", `{"restaurant_id":1,"item_id":2,"qty":3}`); rr.Code != http.StatusOK {
		t.Fatalf("add to cart: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr := send(http.MethodPost, "/api/customers/100/checkout", `{"use_discount":false}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var result struct {
		OrderID       int    `json:"order_id"`
		LoyaltyPoints int    `json:"loyalty_points"`
		ReceiptURL    string `json:"receipt_url"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode checkout: %v", err)
	}
	if result.OrderID != 100 || result.LoyaltyPoints != 10 {
		t.Fatalf("unexpected checkout result: %+v", result)
	}

	rr = send(http.MethodGet, result.ReceiptURL, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("qrcode: expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("expected image/png, got %s", rr.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("expected PNG payload")
	}
}

func TestNewLogger_FallsBackToInfo(t *testing.T) {
	if lvl := newLogger("verbose").GetLevel(); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", lvl)
	}
	if lvl := newLogger("debug").GetLevel(); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", lvl)
	}
}
