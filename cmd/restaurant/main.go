// Command restaurant prints the configured restaurant status and menu, then prices
// the item names given as arguments.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"mesaYaMenu/internal/config"
	"mesaYaMenu/internal/modules/restaurants/application/usecase"
	"mesaYaMenu/internal/modules/restaurants/domain"
	"mesaYaMenu/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	restaurant, err := cfg.Restaurant.Build(domain.SystemClock{})
	if err != nil {
		slog.Error("restaurant setup failed", slog.Any("error", err))
		os.Exit(1)
	}
	uc := usecase.NewRestaurantUseCase(restaurant, logger)

	fmt.Printf("%s, %s (%s) is %s\n", restaurant.Name(), restaurant.Location(), restaurant.Schedule(), uc.Status())
	for _, item := range uc.Menu() {
		fmt.Printf("  %-30s %6d\n", item.Name, item.Price)
	}

	if selected := os.Args[1:]; len(selected) > 0 {
		quote := uc.QuoteOrder(selected)
		for _, name := range quote.Skipped {
			fmt.Printf("  not on the menu: %s\n", name)
		}
		fmt.Printf("order total: %d\n", quote.Total)
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	var writer io.Writer = os.Stderr
	var file *os.File
	if cfg.Directory != "" {
		if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		fileName := filepath.Join(cfg.Directory, time.Now().UTC().Format("2006-01-02")+".log")
		f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writer = io.MultiWriter(os.Stderr, file)
	}

	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
		Service:   "restaurant",
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
