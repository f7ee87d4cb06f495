package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibin_activity/config"
	"vibin_activity/controllers"
	"vibin_activity/routes"
	"vibin_activity/services"
	"vibin_activity/socket"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := setupLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	var (
		mirror   services.ActivityMirror
		photos   services.PhotoSigner = services.PassthroughPhotoSigner{}
		profiles controllers.ProfileStore
	)

	// Initialize AWS-backed collaborators
	if cfg.AWSEnabled() {
		log.Info().Str("region", cfg.AWSRegion).Msg("Initializing AWS clients...")
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}

		dynamoService := &services.DynamoService{Client: services.NewDynamoDBClient(awsCfg)}
		profiles = &services.UserProfileService{Dynamo: dynamoService, Table: cfg.UsersTable}

		if cfg.ActivityMirror == config.MirrorDynamo {
			mirror = &services.DynamoActivityMirror{Dynamo: dynamoService, Table: cfg.ActivityTable}
		}
		if cfg.S3BucketName != "" {
			photos = services.NewS3PhotoSigner(awsCfg, cfg.S3BucketName)
		}
		log.Info().Msg("AWS clients initialized.")
	}

	if cfg.ActivityMirror == config.MirrorSQL {
		sqlMirror, err := services.OpenSQLActivityMirror(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize activity database: %w", err)
		}
		defer sqlMirror.Close()
		mirror = sqlMirror
	}

	log.Info().Str("mirror", cfg.ActivityMirror).Int("retention", cfg.ActivityRetention).Msg("Activity feed configured")

	// Socket.IO server for live activity
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Error().Err(err).Msg("socket server stopped")
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	activityService := services.NewActivityFeedService(services.ActivityFeedConfig{
		Retention:     cfg.ActivityRetention,
		Mirror:        mirror,
		MirrorTimeout: cfg.MirrorTimeout,
		Notifier:      &socket.ActivityBroadcaster{Server: socketServer},
	})
	badgeService := services.NewBadgeService()
	interactionService := &services.InteractionService{Activity: activityService}

	// Initialize the router
	r := mux.NewRouter()
	r.Use(routes.InstrumentMiddleware)

	routes.RegisterRoutes(r)
	routes.RegisterActivityRoutes(r, controllers.NewActivityController(activityService, photos))
	routes.RegisterBadgeRoutes(r, controllers.NewBadgeController(badgeService, profiles))
	routes.RegisterInteractionRoutes(r, controllers.NewInteractionController(interactionService))
	routes.RegisterSocketRoutes(r, socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server...")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal for graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// let pending mirror writes land before the database handle closes
	activityService.Wait()
	log.Info().Msg("server shutdown complete")
	return nil
}

func setupLogger(level, format string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if format == "json" {
		output = os.Stderr
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger().Level(parsedLevel)
	return nil
}
