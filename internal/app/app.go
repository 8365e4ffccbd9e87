package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/kitchenconv/internal/catalog"
	"github.com/vk/kitchenconv/internal/ctxlog"
	"github.com/vk/kitchenconv/internal/hclcatalog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	catalog *catalog.Catalog
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance: logger, the built-in catalog, and any user
// overlays applied on top. Conversion output goes to outW; logs go to errW
// so standard output carries nothing but the result line.
func NewApp(outW, errW io.Writer, appConfig *Config) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cat := catalog.Default()
	if len(appConfig.Catalogs) > 0 {
		loader := hclcatalog.NewLoader()
		if err := loader.Load(ctx, cat, appConfig.Catalogs...); err != nil {
			return nil, fmt.Errorf("failed to load catalog overlays: %w", err)
		}
		logger.Debug("Catalog overlays applied.", "paths", appConfig.Catalogs)
	}

	return &App{
		outW:    outW,
		logger:  logger,
		catalog: cat,
	}, nil
}

// Catalog returns the application's catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}
