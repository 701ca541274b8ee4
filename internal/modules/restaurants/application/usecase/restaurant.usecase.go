package usecase

import (
	"errors"
	"log/slog"

	"mesaYaMenu/internal/modules/restaurants/domain"
)

// OrderQuote is the priced result of a selection of item names.
type OrderQuote struct {
	Total   int
	Items   []domain.MenuItem
	Skipped []string
}

// RestaurantUseCase drives a single restaurant and records what happens to it.
type RestaurantUseCase struct {
	restaurant *domain.Restaurant
	logger     *slog.Logger
}

func NewRestaurantUseCase(restaurant *domain.Restaurant, logger *slog.Logger) *RestaurantUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RestaurantUseCase{
		restaurant: restaurant,
		logger:     logger.With(slog.String("restaurant", restaurant.Name())),
	}
}

func (uc *RestaurantUseCase) AddMenuItem(name string, price int) error {
	_, replaced := uc.restaurant.Price(name)
	if err := uc.restaurant.AddToMenu(name, price); err != nil {
		uc.logger.Warn("menu item rejected", slog.String("item", name), slog.Int("price", price), slog.Any("error", err))
		return err
	}
	uc.logger.Info("menu item added", slog.String("item", name), slog.Int("price", price), slog.Bool("replaced", replaced))
	return nil
}

func (uc *RestaurantUseCase) RemoveMenuItem(name string) error {
	if err := uc.restaurant.RemoveFromMenu(name); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			uc.logger.Warn("menu item not found", slog.String("item", name))
		}
		return err
	}
	uc.logger.Info("menu item removed", slog.String("item", name))
	return nil
}

// Menu lists the current menu ordered by item name.
func (uc *RestaurantUseCase) Menu() []domain.MenuItem {
	return uc.restaurant.Items()
}

func (uc *RestaurantUseCase) Status() domain.RestaurantStatus {
	status := uc.restaurant.Status()
	uc.logger.Debug("status checked", slog.String("status", string(status)), slog.String("hours", uc.restaurant.Schedule().String()))
	return status
}

// QuoteOrder prices the selection. Names that are not on the menu are reported in
// Skipped and do not contribute to the total.
func (uc *RestaurantUseCase) QuoteOrder(selected []string) OrderQuote {
	quote := OrderQuote{Total: uc.restaurant.CalculateOrderValue(selected)}
	for _, name := range selected {
		price, ok := uc.restaurant.Price(name)
		if !ok {
			uc.logger.Debug("order item skipped", slog.String("item", name))
			quote.Skipped = append(quote.Skipped, name)
			continue
		}
		quote.Items = append(quote.Items, domain.MenuItem{Name: name, Price: price})
	}
	uc.logger.Info("order quoted", slog.Int("items", len(quote.Items)), slog.Int("skipped", len(quote.Skipped)), slog.Int("total", quote.Total))
	return quote
}
