package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/notatehq/notate/internal/cli"
	"github.com/notatehq/notate/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rendering HTTP service",
	Long: `Starts a JSON API that renders notation expressions in all four
formats, with optional Redis-backed render caching.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetString("port")
		packs, _ := cmd.Flags().GetStringSlice("pack")

		logger := logging.New(slog.LevelInfo)

		cfg := cli.DefaultServeConfig()
		if configPath != "" {
			var err error
			cfg, err = cli.LoadServeConfig(configPath)
			if err != nil {
				logger.Error("failed to load config", "error", err)
				os.Exit(1)
			}
		}
		// flags win over the config file
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		cfg.Packs = append(cfg.Packs, packs...)

		handler, closer, err := cli.NewHandler(cfg, logger)
		if err != nil {
			logger.Error("failed to build service", "error", err)
			os.Exit(1)
		}
		defer closer.Close()

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting notate server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", fmt.Sprint(sig))

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("notate server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().StringP("config", "c", "", "Serve config file (YAML)")
}
