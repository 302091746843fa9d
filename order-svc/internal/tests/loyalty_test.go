package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sustieats/order-svc/internal/domain"
	"sustieats/order-svc/internal/mocks"
	"sustieats/order-svc/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(id int, name, price string) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: name, Price: dec(price), Available: true}
}

// splitCheckout returns the two placed orders produced by a cart holding
// 2x Falafel + 1x Chai from restaurant 1 and 1x Wrap from restaurant 2.
func splitCheckout(t *testing.T, points int) (*domain.Customer, []domain.Order) {
	t.Helper()
	customer := domain.NewCustomer()
	customer.ID = 100
	customer.LoyaltyPoints = points
	require.NoError(t, customer.Cart.AddItem(item(1, "Falafel", "120"), 2, 1, "Demo Deli"))
	require.NoError(t, customer.Cart.AddItem(item(2, "Chai", "40"), 1, 1, "Demo Deli"))
	require.NoError(t, customer.Cart.AddItem(item(3, "Wrap", "220"), 1, 2, "Campus Grill"))

	orders := customer.Checkout()
	require.Len(t, orders, 2)
	return customer, orders
}

func orderWith(id, restaurantID int, total string) interface{} {
	return mock.MatchedBy(func(o domain.Order) bool {
		return o.ID == id &&
			o.RestaurantID == restaurantID &&
			o.CustomerID == 100 &&
			o.Status == domain.StatusPlaced &&
			o.Total.Equal(dec(total))
	})
}

func TestLoyaltyManager_ProcessCheckout(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		points        int
		useDiscount   bool
		totals        [2]string
		wantBalance   int
		wantDiscount  bool
		wantRedeemed  int
		prepareMocks  func(orders *mocks.OrderStore, customers *mocks.CustomerStore, publisher *mocks.OrderPublisher)
		expectedError error
	}{
		{
			name:         "discount_redeemed_at_1000_points",
			points:       1000,
			useDiscount:  true,
			totals:       [2]string{"252", "198"},
			wantBalance:  10,
			wantDiscount: true,
			wantRedeemed: 1000,
			prepareMocks: func(orders *mocks.OrderStore, customers *mocks.CustomerStore, publisher *mocks.OrderPublisher) {
				orders.On("NextOrderID").Return(105, nil).Once()
				orders.On("AppendOrder", orderWith(105, 1, "252")).Return(nil).Once()
				orders.On("AppendOrder", orderWith(105, 2, "198")).Return(nil).Once()
				customers.On("UpdateLoyaltyPoints", 100, 10).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderPlaced && e.OrderID == 105 && e.DiscountApplied
				})).Return(nil).Twice()
			},
		},
		{
			name:         "ineligible_customer_pays_full_price",
			points:       500,
			useDiscount:  true,
			totals:       [2]string{"280", "220"},
			wantBalance:  510,
			wantDiscount: false,
			prepareMocks: func(orders *mocks.OrderStore, customers *mocks.CustomerStore, publisher *mocks.OrderPublisher) {
				orders.On("NextOrderID").Return(100, nil).Once()
				orders.On("AppendOrder", orderWith(100, 1, "280")).Return(nil).Once()
				orders.On("AppendOrder", orderWith(100, 2, "220")).Return(nil).Once()
				customers.On("UpdateLoyaltyPoints", 100, 510).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Twice()
			},
		},
		{
			name:         "eligible_customer_declines_discount",
			points:       1500,
			useDiscount:  false,
			totals:       [2]string{"280", "220"},
			wantBalance:  1510,
			wantDiscount: false,
			prepareMocks: func(orders *mocks.OrderStore, customers *mocks.CustomerStore, publisher *mocks.OrderPublisher) {
				orders.On("NextOrderID").Return(101, nil).Once()
				orders.On("AppendOrder", orderWith(101, 1, "280")).Return(nil).Once()
				orders.On("AppendOrder", orderWith(101, 2, "220")).Return(nil).Once()
				customers.On("UpdateLoyaltyPoints", 100, 1510).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Twice()
			},
		},
		{
			name:         "publish_failure_does_not_fail_checkout",
			points:       0,
			useDiscount:  false,
			totals:       [2]string{"280", "220"},
			wantBalance:  10,
			wantDiscount: false,
			prepareMocks: func(orders *mocks.OrderStore, customers *mocks.CustomerStore, publisher *mocks.OrderPublisher) {
				orders.On("NextOrderID").Return(100, nil).Once()
				orders.On("AppendOrder", mock.Anything).Return(nil).Twice()
				customers.On("UpdateLoyaltyPoints", 100, 10).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(errors.New("broker down")).Twice()
			},
		},
		{
			name:        "order_id_allocation_fails",
			points:      1000,
			useDiscount: true,
			prepareMocks: func(orders *mocks.OrderStore, customers *mocks.CustomerStore, publisher *mocks.OrderPublisher) {
				orders.On("NextOrderID").Return(0, errors.New("disk error")).Once()
			},
			expectedError: errors.New("failed to allocate order id: disk error"),
		},
		{
			name:        "balance_write_fails_after_orders_persisted",
			points:      1000,
			useDiscount: true,
			prepareMocks: func(orders *mocks.OrderStore, customers *mocks.CustomerStore, publisher *mocks.OrderPublisher) {
				orders.On("NextOrderID").Return(100, nil).Once()
				orders.On("AppendOrder", mock.Anything).Return(nil).Twice()
				customers.On("UpdateLoyaltyPoints", 100, 10).Return(errors.New("disk full")).Once()
			},
			expectedError: errors.New("failed to persist loyalty points: disk full"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orderStore := mocks.NewOrderStore(t)
			customerStore := mocks.NewCustomerStore(t)
			publisher := mocks.NewOrderPublisher(t)
			testCase.prepareMocks(orderStore, customerStore, publisher)

			manager := service.NewLoyaltyManager(orderStore, customerStore, publisher, zerolog.Nop())
			customer, orders := splitCheckout(t, testCase.points)

			result, err := manager.ProcessCheckout(ctx, customer, orders, testCase.useDiscount)

			if testCase.expectedError != nil {
				require.Error(t, err)
				assert.EqualError(t, err, testCase.expectedError.Error())
				assert.Nil(t, result)
				assert.Equal(t, testCase.points, customer.LoyaltyPoints)
				assert.Empty(t, customer.OrderIDs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.wantBalance, result.Balance)
			assert.Equal(t, testCase.wantBalance, customer.LoyaltyPoints)
			assert.Equal(t, testCase.wantDiscount, result.DiscountApplied)
			assert.Equal(t, testCase.wantRedeemed, result.PointsRedeemed)
			assert.Equal(t, service.PointsPerCheckout, result.PointsEarned)
			assert.Equal(t, []int{result.OrderID}, customer.OrderIDs)
			require.Len(t, result.Orders, 2)
			for i, order := range result.Orders {
				assert.Equal(t, result.OrderID, order.ID)
				assert.Equal(t, domain.StatusPlaced, order.Status)
				assert.Truef(t, dec(testCase.totals[i]).Equal(order.Total), "order %d total %s", i, order.Total)
			}
		})
	}
}

func TestLoyaltyManager_EmptyCheckoutHasNoSideEffects(t *testing.T) {
	orderStore := mocks.NewOrderStore(t)
	customerStore := mocks.NewCustomerStore(t)
	manager := service.NewLoyaltyManager(orderStore, customerStore, nil, zerolog.Nop())

	customer := domain.NewCustomer()
	customer.LoyaltyPoints = 1000

	result, err := manager.ProcessCheckout(context.Background(), customer, nil, true)

	assert.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Nil(t, result)
	assert.Equal(t, 1000, customer.LoyaltyPoints)
}

func TestLoyaltyManager_WithoutPublisher(t *testing.T) {
	orderStore := mocks.NewOrderStore(t)
	customerStore := mocks.NewCustomerStore(t)
	orderStore.On("NextOrderID").Return(100, nil).Once()
	orderStore.On("AppendOrder", mock.Anything).Return(nil).Twice()
	customerStore.On("UpdateLoyaltyPoints", 100, 10).Return(nil).Once()

	manager := service.NewLoyaltyManager(orderStore, customerStore, nil, zerolog.Nop())
	customer, orders := splitCheckout(t, 0)

	result, err := manager.ProcessCheckout(context.Background(), customer, orders, false)

	require.NoError(t, err)
	assert.Equal(t, 100, result.OrderID)
}

func TestIsEligibleForDiscount(t *testing.T) {
	tests := []struct {
		points int
		want   bool
	}{
		{points: 0, want: false},
		{points: 999, want: false},
		{points: 1000, want: true},
		{points: 2500, want: true},
	}

	for _, testCase := range tests {
		customer := &domain.Customer{LoyaltyPoints: testCase.points}
		assert.Equal(t, testCase.want, service.IsEligibleForDiscount(customer), "points=%d", testCase.points)
	}
}

func TestTieredDiscount(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{points: 0, want: "0"},
		{points: 4, want: "0"},
		{points: 5, want: "0.05"},
		{points: 10, want: "0.10"},
		{points: 19, want: "0.10"},
		{points: 20, want: "0.20"},
		{points: 1000, want: "0.20"},
	}

	for _, testCase := range tests {
		got := service.TieredDiscount(testCase.points)
		assert.Truef(t, dec(testCase.want).Equal(got), "points=%d got %s", testCase.points, got)
	}
}

func TestSummarize(t *testing.T) {
	summary := service.Summarize(&domain.Customer{ID: 100, LoyaltyPoints: 640})

	assert.Equal(t, 100, summary.CustomerID)
	assert.Equal(t, 640, summary.Points)
	assert.False(t, summary.Eligible)
	assert.Equal(t, 360, summary.PointsToNext)
}
