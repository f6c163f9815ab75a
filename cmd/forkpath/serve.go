package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/forkpath-dev/forkpath/internal/adapters/http"
	"github.com/forkpath-dev/forkpath/internal/config"
	"github.com/forkpath-dev/forkpath/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the Forkpath engine in stateless server mode, exposing a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		graphFlag, _ := cmd.Flags().GetString("graph")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if graphFlag != "" {
			cfg.Graph.Path = graphFlag
		}

		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(level)

		engine, err := buildEngine(cfg.Graph.Path, logger)
		if err != nil {
			// MalformedTree and load failures are fatal: refuse to start.
			fmt.Printf("Error initializing forkpath: %v\n", err)
			os.Exit(1)
		}

		handlerOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		if cfg.Metrics.Enabled {
			handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(cfg.Metrics.Path))
		}
		handler := httpAdapter.NewHandler(engine, handlerOpts...)

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting forkpath server", "addr", srv.Addr, "questions", engine.Graph().Len())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("forkpath server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to a forkpath.yaml config file")
}
