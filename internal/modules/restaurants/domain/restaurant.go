package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Restaurant is the aggregate root holding identity, operating hours and the menu.
// It is not safe for concurrent use.
type Restaurant struct {
	name     string
	location string
	schedule Schedule
	menu     map[string]int
	clock    Clock
}

// MenuItem is a single priced entry of the menu. Price is expressed in minor units.
type MenuItem struct {
	Name  string
	Price int
}

// NewRestaurant creates a restaurant with an empty menu. A nil clock falls back to SystemClock.
func NewRestaurant(name, location string, openingTime, closingTime time.Time, clock Clock) (*Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRestaurant)
	}
	schedule, err := NewSchedule(openingTime, closingTime)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Restaurant{
		name:     name,
		location: location,
		schedule: schedule,
		menu:     make(map[string]int),
		clock:    clock,
	}, nil
}

func (r *Restaurant) Name() string { return r.name }
func (r *Restaurant) Location() string { return r.location }
func (r *Restaurant) OpeningTime() time.Time { return r.schedule.Open }
func (r *Restaurant) ClosingTime() time.Time { return r.schedule.Close }
func (r *Restaurant) Schedule() Schedule { return r.schedule }

// IsOpen reports whether the clock's time of day falls within opening and closing time,
// both inclusive.
func (r *Restaurant) IsOpen() bool {
	return r.schedule.Contains(r.clock.Now())
}

// Status is the RestaurantStatus form of IsOpen.
func (r *Restaurant) Status() RestaurantStatus {
	return statusFor(r.IsOpen())
}

// AddToMenu inserts the item, overwriting the price when the name is already listed.
func (r *Restaurant) AddToMenu(name string, price int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if price < 0 {
		return fmt.Errorf("%w: %q has negative price %d", ErrInvalidMenuItem, name, price)
	}
	r.menu[name] = price
	return nil
}

// RemoveFromMenu deletes the item. The menu is left untouched when the name is absent.
func (r *Restaurant) RemoveFromMenu(name string) error {
	if _, ok := r.menu[name]; !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	delete(r.menu, name)
	return nil
}

// Menu returns a copy of the name to price mapping.
func (r *Restaurant) Menu() map[string]int {
	return maps.Clone(r.menu)
}

// Items returns the menu entries ordered by name.
func (r *Restaurant) Items() []MenuItem {
	items := make([]MenuItem, 0, len(r.menu))
	for _, name := range slices.Sorted(maps.Keys(r.menu)) {
		items = append(items, MenuItem{Name: name, Price: r.menu[name]})
	}
	return items
}

// Price looks up a single item.
func (r *Restaurant) Price(name string) (int, bool) {
	price, ok := r.menu[name]
	return price, ok
}

// CalculateOrderValue sums the price of every selected name found on the menu.
// Names not on the menu are skipped and repeated names are counted each time.
func (r *Restaurant) CalculateOrderValue(selected []string) int {
	total := 0
	for _, name := range selected {
		total += r.menu[name]
	}
	return total
}

// CalculateOrderValueStrict is CalculateOrderValue failing with ErrItemNotFound
// on the first name that is not on the menu.
func (r *Restaurant) CalculateOrderValueStrict(selected []string) (int, error) {
	total := 0
	for _, name := range selected {
		price, ok := r.menu[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrItemNotFound, name)
		}
		total += price
	}
	return total, nil
}
