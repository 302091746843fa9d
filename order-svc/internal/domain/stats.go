package domain

import "github.com/shopspring/decimal"

// RestaurantStats is the running tally built from a restaurant's order events.
type RestaurantStats struct {
	RestaurantID int             `json:"restaurant_id"`
	Placed       int             `json:"placed"`
	Dispatched   int             `json:"dispatched"`
	Cancelled    int             `json:"cancelled"`
	Discounted   int             `json:"discounted"`
	Revenue      decimal.Decimal `json:"revenue"`
	PlacedToday  int             `json:"placed_today"`
}
