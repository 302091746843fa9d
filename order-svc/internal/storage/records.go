package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"sustieats/order-svc/internal/domain"
)

const (
	fieldSep = "|"
	subSep   = ","
)

var ErrMalformedRecord = errors.New("malformed record")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, malformed("flag %q is not 0 or 1", s)
	}
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, malformed("%s %q is not a number", name, s)
	}
	return v, nil
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, malformed("%s %q is not a number", name, s)
	}
	return v, nil
}

// customer: id|name|email|phone|password|isActive|loyaltyPoints

func encodeCustomer(c *domain.Customer) string {
	return strings.Join([]string{
		strconv.Itoa(c.ID),
		c.Name,
		c.Email,
		c.Phone,
		c.Password,
		formatFlag(c.Active),
		strconv.Itoa(c.LoyaltyPoints),
	}, fieldSep)
}

func decodeCustomer(line string) (*domain.Customer, error) {
	cols := strings.Split(line, fieldSep)
	if len(cols) != 6 && len(cols) != 7 {
		return nil, malformed("customer has %d columns", len(cols))
	}

	id, err := parseInt("id", cols[0])
	if err != nil {
		return nil, err
	}
	active, err := parseFlag(cols[5])
	if err != nil {
		return nil, err
	}
	points := 0
	if len(cols) == 7 {
		if points, err = parseInt("loyalty points", cols[6]); err != nil {
			return nil, err
		}
		if points < 0 {
			return nil, malformed("negative loyalty points %d", points)
		}
	}

	c := domain.NewCustomer()
	c.ID = id
	c.Name = cols[1]
	c.Email = cols[2]
	c.Phone = cols[3]
	c.Password = cols[4]
	c.Active = active
	c.LoyaltyPoints = points
	return c, nil
}

// owner: id|name|email|phone|password|isActive

func encodeOwner(o *domain.Owner) string {
	return strings.Join([]string{
		strconv.Itoa(o.ID),
		o.Name,
		o.Email,
		o.Phone,
		o.Password,
		formatFlag(o.Active),
	}, fieldSep)
}

func decodeOwner(line string) (*domain.Owner, error) {
	cols := strings.Split(line, fieldSep)
	if len(cols) != 6 {
		return nil, malformed("owner has %d columns", len(cols))
	}

	id, err := parseInt("id", cols[0])
	if err != nil {
		return nil, err
	}
	active, err := parseFlag(cols[5])
	if err != nil {
		return nil, err
	}
	return &domain.Owner{
		ID:       id,
		Name:     cols[1],
		Email:    cols[2],
		Phone:    cols[3],
		Password: cols[4],
		Active:   active,
	}, nil
}

// admin: id|name|password

func encodeAdmin(a *domain.Admin) string {
	return strings.Join([]string{strconv.Itoa(a.ID), a.Name, a.Password}, fieldSep)
}

func decodeAdmin(line string) (*domain.Admin, error) {
	cols := strings.Split(line, fieldSep)
	if len(cols) != 3 {
		return nil, malformed("admin has %d columns", len(cols))
	}
	id, err := parseInt("id", cols[0])
	if err != nil {
		return nil, err
	}
	return &domain.Admin{ID: id, Name: cols[1], Password: cols[2]}, nil
}

// restaurant: id|name|addressLine1|city|postalCode|ownerId|menuCount|{id,name,price,available}*

const restaurantFixedCols = 7

func encodeRestaurant(r domain.Restaurant) string {
	cols := []string{
		strconv.Itoa(r.ID),
		r.Name,
		r.Address.Line1,
		r.Address.City,
		r.Address.PostalCode,
		strconv.Itoa(r.OwnerID),
		strconv.Itoa(len(r.Menu)),
	}
	for _, item := range r.Menu {
		cols = append(cols, strings.Join([]string{
			strconv.Itoa(item.ID),
			item.Name,
			item.Price.String(),
			formatFlag(item.Available),
		}, subSep))
	}
	return strings.Join(cols, fieldSep)
}

func decodeRestaurant(line string) (domain.Restaurant, error) {
	cols := strings.Split(line, fieldSep)
	if len(cols) < restaurantFixedCols {
		return domain.Restaurant{}, malformed("restaurant has %d columns", len(cols))
	}

	id, err := parseInt("id", cols[0])
	if err != nil {
		return domain.Restaurant{}, err
	}
	ownerID, err := parseInt("owner id", cols[5])
	if err != nil {
		return domain.Restaurant{}, err
	}
	menuCount, err := parseInt("menu count", cols[6])
	if err != nil {
		return domain.Restaurant{}, err
	}
	if menuCount < 0 || len(cols) != restaurantFixedCols+menuCount {
		return domain.Restaurant{}, malformed("restaurant declares %d menu items, has %d", menuCount, len(cols)-restaurantFixedCols)
	}

	r := domain.Restaurant{
		ID:   id,
		Name: cols[1],
		Address: domain.Address{
			Line1:      cols[2],
			City:       cols[3],
			PostalCode: cols[4],
		},
		OwnerID: ownerID,
		Menu:    make([]domain.MenuItem, 0, menuCount),
	}
	for _, raw := range cols[restaurantFixedCols:] {
		item, err := decodeMenuItem(raw)
		if err != nil {
			return domain.Restaurant{}, err
		}
		r.Menu = append(r.Menu, item)
	}
	return r, nil
}

func decodeMenuItem(raw string) (domain.MenuItem, error) {
	parts := strings.Split(raw, subSep)
	if len(parts) != 4 {
		return domain.MenuItem{}, malformed("menu item %q has %d parts", raw, len(parts))
	}
	id, err := parseInt("menu item id", parts[0])
	if err != nil {
		return domain.MenuItem{}, err
	}
	price, err := parseDecimal("price", parts[2])
	if err != nil {
		return domain.MenuItem{}, err
	}
	available, err := parseFlag(parts[3])
	if err != nil {
		return domain.MenuItem{}, err
	}
	return domain.MenuItem{ID: id, Name: parts[1], Price: price, Available: available}, nil
}

// order: id|customerId|restaurantId|status|total|itemCount|{itemId,itemName,qty,unitPrice}*

const orderFixedCols = 6

func encodeOrder(o domain.Order) string {
	cols := []string{
		strconv.Itoa(o.ID),
		strconv.Itoa(o.CustomerID),
		strconv.Itoa(o.RestaurantID),
		o.Status.String(),
		o.Total.String(),
		strconv.Itoa(len(o.Items)),
	}
	for _, item := range o.Items {
		cols = append(cols, strings.Join([]string{
			strconv.Itoa(item.Item.ID),
			item.Item.Name,
			strconv.Itoa(item.Qty),
			item.UnitPrice.String(),
		}, subSep))
	}
	return strings.Join(cols, fieldSep)
}

func decodeOrder(line string) (domain.Order, error) {
	cols := strings.Split(line, fieldSep)
	if len(cols) < orderFixedCols {
		return domain.Order{}, malformed("order has %d columns", len(cols))
	}

	id, err := parseInt("id", cols[0])
	if err != nil {
		return domain.Order{}, err
	}
	customerID, err := parseInt("customer id", cols[1])
	if err != nil {
		return domain.Order{}, err
	}
	restaurantID, err := parseInt("restaurant id", cols[2])
	if err != nil {
		return domain.Order{}, err
	}
	status, err := domain.ParseStatus(cols[3])
	if err != nil {
		return domain.Order{}, malformed("%v", err)
	}
	total, err := parseDecimal("total", cols[4])
	if err != nil {
		return domain.Order{}, err
	}
	itemCount, err := parseInt("item count", cols[5])
	if err != nil {
		return domain.Order{}, err
	}
	if itemCount < 0 || len(cols) != orderFixedCols+itemCount {
		return domain.Order{}, malformed("order declares %d items, has %d", itemCount, len(cols)-orderFixedCols)
	}

	o := domain.Order{
		ID:           id,
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Status:       status,
		Total:        total,
		Items:        make([]domain.OrderItem, 0, itemCount),
	}
	for _, raw := range cols[orderFixedCols:] {
		item, err := decodeOrderItem(raw)
		if err != nil {
			return domain.Order{}, err
		}
		o.Items = append(o.Items, item)
	}
	return o, nil
}

func decodeOrderItem(raw string) (domain.OrderItem, error) {
	parts := strings.Split(raw, subSep)
	if len(parts) != 4 {
		return domain.OrderItem{}, malformed("order item %q has %d parts", raw, len(parts))
	}
	itemID, err := parseInt("item id", parts[0])
	if err != nil {
		return domain.OrderItem{}, err
	}
	qty, err := parseInt("qty", parts[2])
	if err != nil {
		return domain.OrderItem{}, err
	}
	unitPrice, err := parseDecimal("unit price", parts[3])
	if err != nil {
		return domain.OrderItem{}, err
	}
	return domain.OrderItem{
		Item:      domain.MenuItem{ID: itemID, Name: parts[1], Price: unitPrice, Available: true},
		Qty:       qty,
		UnitPrice: unitPrice,
	}, nil
}
