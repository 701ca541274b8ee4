package config

import (
	"fmt"
	"os"
	"strings"

	"mesaYaMenu/internal/modules/restaurants/domain"
	"mesaYaMenu/internal/shared/normalization"
)

const (
	defaultName      = "Amelie's cafe"
	defaultLocation  = "Chennai"
	defaultOpenTime  = "10:30:00"
	defaultCloseTime = "22:00:00"
	defaultMenu      = "Sweet corn soup=119;Vegetable lasagne=269"
)

type Config struct {
	Restaurant RestaurantConfig
	Logging    LoggingConfig
}

// RestaurantConfig describes the restaurant the process serves.
type RestaurantConfig struct {
	Name     string
	Location string
	Schedule domain.Schedule
	Menu     []domain.MenuItem
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
	AddSource bool
}

// Load reads the configuration from environment variables, falling back to defaults
// for anything unset.
func Load() (*Config, error) {
	schedule, err := domain.ParseSchedule(
		getEnv("RESTAURANT_OPEN_TIME", defaultOpenTime),
		getEnv("RESTAURANT_CLOSE_TIME", defaultCloseTime),
	)
	if err != nil {
		return nil, fmt.Errorf("restaurant hours: %w", err)
	}
	menu, err := ParseMenu(getEnv("RESTAURANT_MENU", defaultMenu))
	if err != nil {
		return nil, fmt.Errorf("restaurant menu: %w", err)
	}
	addSource := false
	if raw := os.Getenv("LOG_ADD_SOURCE"); raw != "" {
		parsed, ok := normalization.AsBool(raw)
		if !ok {
			return nil, fmt.Errorf("LOG_ADD_SOURCE: invalid boolean %q", raw)
		}
		addSource = parsed
	}

	return &Config{
		Restaurant: RestaurantConfig{
			Name:     getEnv("RESTAURANT_NAME", defaultName),
			Location: getEnv("RESTAURANT_LOCATION", defaultLocation),
			Schedule: schedule,
			Menu:     menu,
		},
		Logging: LoggingConfig{
			Level:     getEnv("LOG_LEVEL", "info"),
			Format:    getEnv("LOG_FORMAT", "text"),
			Directory: getEnv("LOG_DIRECTORY", ""),
			AddSource: addSource,
		},
	}, nil
}

// ParseMenu reads entries of the form "name=price" separated by semicolons.
func ParseMenu(raw string) ([]domain.MenuItem, error) {
	entries := normalization.SplitList(raw, ";")
	items := make([]domain.MenuItem, 0, len(entries))
	for _, entry := range entries {
		idx := strings.LastIndex(entry, "=")
		if idx < 0 {
			return nil, fmt.Errorf("%w: entry %q is not name=price", domain.ErrInvalidMenuItem, entry)
		}
		name := normalization.AsString(entry[:idx])
		price, ok := normalization.AsInt(entry[idx+1:])
		if name == "" || !ok || price < 0 {
			return nil, fmt.Errorf("%w: entry %q", domain.ErrInvalidMenuItem, entry)
		}
		items = append(items, domain.MenuItem{Name: name, Price: price})
	}
	return items, nil
}

// Build creates the restaurant and seeds its menu.
func (c RestaurantConfig) Build(clock domain.Clock) (*domain.Restaurant, error) {
	restaurant, err := domain.NewRestaurant(c.Name, c.Location, c.Schedule.Open, c.Schedule.Close, clock)
	if err != nil {
		return nil, err
	}
	for _, item := range c.Menu {
		if err := restaurant.AddToMenu(item.Name, item.Price); err != nil {
			return nil, err
		}
	}
	return restaurant, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
