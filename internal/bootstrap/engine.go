package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SlotReveal_Go/internal/catalog"
	"github.com/osse101/SlotReveal_Go/internal/config"
	"github.com/osse101/SlotReveal_Go/internal/event"
	"github.com/osse101/SlotReveal_Go/internal/slots"
)

// LoadCatalog reads the catalog file named by the config, or returns the built-in catalog
func LoadCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		slog.Info(LogMsgUsingBuiltinCatalog)
		return catalog.Default(), nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", cfg.CatalogPath, "symbols", cat.Len())
	return cat, nil
}

// NewSlotsService builds the outcome engine with the configured draw mode
func NewSlotsService(cfg *config.Config, cat catalog.Catalog, bus event.Bus) (slots.Service, error) {
	mode, err := slots.ParseDrawMode(cfg.DrawMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDrawMode, err)
	}
	return slots.NewService(cat, slots.WithDrawMode(mode), slots.WithEventBus(bus)), nil
}
