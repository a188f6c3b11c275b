package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	catalogsrc "github.com/MrSnakeDoc/tapbook/internal/sources/catalog"
)

// CatalogReloader periodically reloads the starter catalog into the registry
type CatalogReloader struct {
	loader        *catalogsrc.Loader
	registry      *catalog.Registry
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader. An empty file serves
// the built-in catalog.
func NewCatalogReloader(
	catalogFile string,
	registry *catalog.Registry,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        catalogsrc.NewLoader(catalogFile),
		registry:      registry,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once and then keeps it fresh. A failed first load
// is returned; later failures keep the previous catalog.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	if cr.interval <= 0 {
		cr.logger.Info("periodic catalog reload disabled")
		go cr.waitManual(ctx)
		return nil
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cr.reloadLogged(ctx)
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				cr.reloadLogged(ctx)
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (cr *CatalogReloader) waitManual(ctx context.Context) {
	for {
		select {
		case <-cr.manualTrigger:
			cr.logger.Info("manual reload triggered")
			cr.reloadLogged(ctx)
		case <-cr.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (cr *CatalogReloader) reloadLogged(ctx context.Context) {
	if err := cr.Reload(ctx); err != nil {
		cr.logger.Error("failed to reload catalog", logger.Error(err))
	}
}

// Stop stops the reloader
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload reads the catalog and swaps the registry contents. Invalid entries
// are logged and skipped; an empty result leaves the registry untouched.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := cr.loader.Load()
	if err != nil {
		return err
	}

	starters, problems := catalogsrc.MapStarters(cfg)
	for _, p := range problems {
		if errors.Is(p, catalogsrc.ErrEmptyCatalog) {
			return p
		}
		cr.logger.Warn("skipping catalog entry", logger.Error(p))
	}

	cr.registry.Replace(starters)
	cr.logger.Info("📚 catalog loaded",
		logger.String("source", cr.loader.Source()),
		logger.Int("starters", len(starters)))
	return nil
}
