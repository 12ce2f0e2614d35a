package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/skillsheet-go/internal/api"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet"
)

var servePort int

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if servePort != 0 {
		cfg.API.Port = servePort
	}
	setupLogger(cfg)

	rootCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiService := api.NewService(api.ServiceDeps{
		Port:             cfg.API.Port,
		ReadTimeout:      cfg.API.ReadTimeout,
		WriteTimeout:     cfg.API.WriteTimeout,
		MaxBodySize:      cfg.API.MaxBodySize,
		XLSXFileName:     cfg.Export.XLSXFileName,
		XLSXFallbackName: cfg.Export.XLSXFallbackName,
		Exporter:         skillsheet.NewExporter(exportOptions(cfg)),
	})

	group, gctx := errgroup.WithContext(rootCtx)

	group.Go(func() error {
		log.Info().Msg("starting HTTP API")
		if err := apiService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("HTTP API stopped with error")
			return err
		}

		log.Info().Msg("HTTP API stopped")
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("all services stopped")
	return nil
}
