package domain

import "errors"

var (
	// ErrItemNotFound is returned when a menu item name is not on the menu.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidMenuItem rejects empty item names and negative prices.
	ErrInvalidMenuItem = errors.New("invalid menu item")
	// ErrInvalidSchedule is returned when closing time does not come after opening time.
	ErrInvalidSchedule = errors.New("invalid schedule")
	// ErrInvalidRestaurant rejects a restaurant without a name.
	ErrInvalidRestaurant = errors.New("invalid restaurant")
)
