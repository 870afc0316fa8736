package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"nc-news/config"
	"nc-news/events"
	"nc-news/handlers"
	"nc-news/repositories"
	"nc-news/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)

	db, err := config.InitDB(cfg.Database, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	logger.Info("connected to database", "dbname", cfg.Database.DBName)

	publisher := newPublisher(cfg.Events, logger)
	defer publisher.Close()

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	topicRepo := repositories.NewTopicRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	router := handlers.NewRouter(handlers.Services{
		Articles: services.NewArticleService(articleRepo, topicRepo),
		Comments: services.NewCommentService(commentRepo, articleRepo, userService, publisher, logger),
		Topics:   services.NewTopicService(topicRepo),
		Users:    userService,
	}, handlers.RouterConfig{AllowOrigins: cfg.Server.AllowOrigins}, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newPublisher falls back to discarding events when the broker is disabled or unreachable.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger) events.Publisher {
	if !cfg.Enabled {
		return events.Noop{}
	}

	pub, err := events.NewRabbitMQ(events.Config{
		URL:        cfg.URL,
		Exchange:   cfg.Exchange,
		RoutingKey: cfg.RoutingKey,
		QueueName:  cfg.QueueName,
	}, logger)
	if err != nil {
		logger.Warn("comment events disabled", "error", err)
		return events.Noop{}
	}
	return pub
}
