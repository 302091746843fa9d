package domain

import "github.com/shopspring/decimal"

type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type MenuItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type Restaurant struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Address Address    `json:"address"`
	OwnerID int        `json:"owner_id"`
	Menu    []MenuItem `json:"menu"`
}

// AddMenuItem appends item unless its id is already on the menu.
func (r *Restaurant) AddMenuItem(item MenuItem) bool {
	if _, exists := r.MenuItem(item.ID); exists {
		return false
	}
	r.Menu = append(r.Menu, item)
	return true
}

func (r *Restaurant) RemoveMenuItem(itemID int) bool {
	for i, item := range r.Menu {
		if item.ID == itemID {
			r.Menu = append(r.Menu[:i], r.Menu[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Restaurant) MenuItem(itemID int) (MenuItem, bool) {
	for _, item := range r.Menu {
		if item.ID == itemID {
			return item, true
		}
	}
	return MenuItem{}, false
}

func (r *Restaurant) SetAvailability(itemID int, available bool) bool {
	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			r.Menu[i].Available = available
			return true
		}
	}
	return false
}
