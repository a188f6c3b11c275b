package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/tapbook/internal/app"
	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/config"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/scheduler"
	catalogsrc "github.com/MrSnakeDoc/tapbook/internal/sources/catalog"
)

type seedFlags struct {
	file string
}

func newSeedCmd() *cobra.Command {
	flags := &seedFlags{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo businesses from a YAML seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg := config.Load()
			log := logger.New(cfg.LogLevel, cfg.PrettyLog)
			defer func() { _ = log.Sync() }()

			st, err := app.OpenStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer st.Close(log)

			registry := catalog.NewRegistry()
			if err := scheduler.NewCatalogReloader(cfg.CatalogFile, registry, log, 0, nil).Reload(ctx); err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			return runSeed(ctx, cmd, flags.file, intake.NewService(st, log), registry, cfg.BaseURL)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Seed file (yaml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSeed(ctx context.Context, cmd *cobra.Command, file string, svc *intake.Service, starters intake.Starters, baseURL string) error {
	seed, err := catalogsrc.LoadSeed(file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range svc.Seed(ctx, seed.Businesses, starters) {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "❌ %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "✅ %s\n   page: %s/%s\n   edit: %s%s\n",
			r.Business.Name, baseURL, r.Business.Slug, baseURL, intake.EditURL(r.Business.Slug, r.Business.EditToken))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d businesses not created", failed, len(seed.Businesses))
	}
	return nil
}
