package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/myusername/nba-salary-predictor/internal/server"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search and prediction API over HTTP.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}
		pipeline, err := newPipeline(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		handler := server.NewHandler(pipeline)
		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler.Router([]string{"http://localhost:3000", "http://localhost:8501"}),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("nba-salary API listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case <-sigChan:
		}

		log.Println("Shutting down gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
