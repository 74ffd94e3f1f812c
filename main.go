package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"interest-form/pkg/api"
	"interest-form/pkg/config"
	"interest-form/pkg/logger"
	"interest-form/pkg/middleware"
	"interest-form/pkg/services"
	"interest-form/pkg/tui"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	root := &cobra.Command{
		Use:          "interest-form",
		Short:        "Register interest in the Revolutionary Air Fryer",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(cfg), formCmd(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form formatting and submission API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	return cmd
}

func formCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in the interest form in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal owns stdout, so logs go to a file
			f, err := os.OpenFile(cfg.FormLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("error opening log file: %w", err)
			}
			defer f.Close()

			appLogger := logger.New(f, cfg.LogLevel, cfg.LogFormat)
			submissionService := services.NewLandingSubmissionService(services.NewLogSink(appLogger))
			return tui.Run(cmd.Context(), submissionService)
		},
	}
	cmd.Flags().StringVar(&cfg.FormLogFile, "log-file", cfg.FormLogFile, "file receiving submissions and logs")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	appLogger := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// Initialize services
	submissionService := services.NewLandingSubmissionService(services.NewLogSink(appLogger))

	gin.SetMode(cfg.GinMode)

	// Create a new Gin router with default middleware
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins...))

	// Initialize handlers and register routes
	handlers := api.NewHandlers(submissionService, appLogger)
	handlers.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("error starting server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
