package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id int, name, price string) MenuItem {
	return MenuItem{ID: id, Name: name, Price: decimal.RequireFromString(price), Available: true}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got)
}

func TestCart_AddItemMergesSamePair(t *testing.T) {
	cart := NewCart()
	falafel := menuItem(1, "Falafel", "120")

	require.NoError(t, cart.AddItem(falafel, 1, 1, "Demo Deli"))
	require.NoError(t, cart.AddItem(falafel, 2, 1, "Demo Deli"))
	require.NoError(t, cart.AddItem(falafel, 4, 1, "Demo Deli"))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Qty)
	assert.Equal(t, "Demo Deli", items[0].RestaurantName)
}

func TestCart_AddItemKeepsRestaurantsApart(t *testing.T) {
	cart := NewCart()
	item := menuItem(1, "Falafel", "120")

	require.NoError(t, cart.AddItem(item, 1, 1, "Demo Deli"))
	require.NoError(t, cart.AddItem(item, 1, 2, "Campus Grill"))

	assert.Equal(t, 2, cart.Len())
}

func TestCart_AddItemRejectsNonPositiveQty(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{name: "zero", qty: 0},
		{name: "negative", qty: -3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := NewCart()
			err := cart.AddItem(menuItem(1, "Chai", "40"), testCase.qty, 1, "Demo Deli")
			assert.ErrorIs(t, err, ErrInvalidQuantity)
			assert.True(t, cart.IsEmpty())
		})
	}
}

func TestCart_RemoveItemAcrossRestaurants(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(menuItem(1, "Falafel", "120"), 1, 1, "Demo Deli"))
	require.NoError(t, cart.AddItem(menuItem(1, "Burger", "300"), 2, 2, "Campus Grill"))
	require.NoError(t, cart.AddItem(menuItem(2, "Chai", "40"), 1, 1, "Demo Deli"))

	removed := cart.RemoveItem(1)

	assert.Equal(t, 2, removed)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Item.ID)
	assert.Equal(t, 0, cart.RemoveItem(99))
}

func TestCart_Total(t *testing.T) {
	tests := []struct {
		name  string
		lines []CartItem
		want  string
	}{
		{name: "empty", want: "0"},
		{
			name: "single line",
			lines: []CartItem{
				{Item: menuItem(1, "Falafel", "120"), Qty: 2, RestaurantID: 1},
			},
			want: "240",
		},
		{
			name: "mixed restaurants",
			lines: []CartItem{
				{Item: menuItem(1, "Falafel", "120"), Qty: 2, RestaurantID: 1},
				{Item: menuItem(2, "Chai", "40.5"), Qty: 3, RestaurantID: 1},
				{Item: menuItem(3, "Wrap", "220"), Qty: 1, RestaurantID: 2},
			},
			want: "581.5",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := NewCart()
			for _, line := range testCase.lines {
				require.NoError(t, cart.AddItem(line.Item, line.Qty, line.RestaurantID, line.RestaurantName))
			}
			assertDecimal(t, testCase.want, cart.Total())
		})
	}
}

func TestCart_ClearEmptiesCart(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(menuItem(1, "Falafel", "120"), 1, 1, "Demo Deli"))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assertDecimal(t, "0", cart.Total())
}
