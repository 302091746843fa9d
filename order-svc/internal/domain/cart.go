package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	Item           MenuItem `json:"item"`
	Qty            int      `json:"qty"`
	RestaurantID   int      `json:"restaurant_id"`
	RestaurantName string   `json:"restaurant_name"`
}

func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Item.Price.Mul(decimal.NewFromInt(int64(ci.Qty)))
}

// Cart holds at most one line per (item id, restaurant id) pair.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) AddItem(item MenuItem, qty, restaurantID int, restaurantName string) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].Item.ID == item.ID && c.items[i].RestaurantID == restaurantID {
			c.items[i].Qty += qty
			return nil
		}
	}
	c.items = append(c.items, CartItem{
		Item:           item,
		Qty:            qty,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
	})
	return nil
}

// RemoveItem drops every line for menuID regardless of restaurant and
// returns how many lines were removed.
func (c *Cart) RemoveItem(menuID int) int {
	kept := c.items[:0]
	removed := 0
	for _, ci := range c.items {
		if ci.Item.ID == menuID {
			removed++
			continue
		}
		kept = append(kept, ci)
	}
	c.items = kept
	return removed
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ci := range c.items {
		total = total.Add(ci.Subtotal())
	}
	return total
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}
