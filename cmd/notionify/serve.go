package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/riverfjs/notionify-go/internal/server"
)

var (
	flagAddr        string
	flagPath        string
	flagCORSOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the publish endpoint over HTTP",
	Long: `Serve exposes a POST endpoint accepting
  {"title", "markdownContent", "notionToken", "parentPageId"}
and answers {"success": true, "pageId", "url", "blocks"}.

Examples:
  notionify serve --addr :8080
  notionify serve --path /api/notion --cors-origin https://app.example.com`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&flagPath, "path", "/api/convert", "Endpoint path")
	serveCmd.Flags().StringSliceVar(&flagCORSOrigins, "cors-origin", nil, "Allowed CORS origins (default: all)")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := convertOptions()
	if err != nil {
		return err
	}
	logger := logProvider.GetLogger("server")

	handler := server.NewHandler(
		server.WithLogger(logger),
		server.WithConvertOptions(opts...),
	)
	mux := http.NewServeMux()
	mux.Handle(flagPath, server.CORSMiddleware(server.CORSConfig{AllowedOrigins: flagCORSOrigins}, handler))

	srv := &http.Server{
		Addr:              flagAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", flagAddr, "path", flagPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
