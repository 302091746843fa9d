package domain

import (
	"fmt"
	"strings"
)

const maxFieldLength = 100

// ValidateField rejects values that would break the pipe/comma record format.
func ValidateField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidField, field)
	}
	if len(value) > maxFieldLength {
		return fmt.Errorf("%w: %s must not exceed %d characters", ErrInvalidField, field, maxFieldLength)
	}
	if strings.ContainsAny(value, "|,\r\n") {
		return fmt.Errorf("%w: %s must not contain '|', ',' or line breaks", ErrInvalidField, field)
	}
	return nil
}

// ValidateOptionalField is ValidateField for values that may be left empty.
func ValidateOptionalField(field, value string) error {
	if value == "" {
		return nil
	}
	return ValidateField(field, value)
}

func ValidateMenuItem(item MenuItem) error {
	if item.ID <= 0 {
		return fmt.Errorf("%w: menu item id must be positive", ErrInvalidField)
	}
	if err := ValidateField("name", item.Name); err != nil {
		return err
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidField)
	}
	return nil
}

func ValidateRestaurant(r Restaurant) error {
	if err := ValidateField("name", r.Name); err != nil {
		return err
	}
	if err := ValidateOptionalField("address line1", r.Address.Line1); err != nil {
		return err
	}
	if err := ValidateOptionalField("city", r.Address.City); err != nil {
		return err
	}
	if err := ValidateOptionalField("postal code", r.Address.PostalCode); err != nil {
		return err
	}
	for _, item := range r.Menu {
		if err := ValidateMenuItem(item); err != nil {
			return err
		}
	}
	return nil
}
