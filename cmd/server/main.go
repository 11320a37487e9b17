package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heatwatch/internal/config"
	"heatwatch/internal/email/noop"
	"heatwatch/internal/email/ses"
	"heatwatch/internal/geo"
	"heatwatch/internal/handler"
	"heatwatch/internal/logging"
	"heatwatch/internal/platform"
	"heatwatch/internal/port"
	"heatwatch/internal/repository/postgres"
	"heatwatch/internal/router"
	"heatwatch/internal/service"
	s3storage "heatwatch/internal/storage/s3"
)

// @title HeatWatch API
// @version 1.0
// @description Heatwave monitoring and alerting for Senegal: zones, heatwaves, statistics, recommendations and notifications.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	zoneRepo := postgres.NewZoneRepo(db)
	heatwaveRepo := postgres.NewHeatwaveRepo(db)
	statRepo := postgres.NewStatisticRepo(db)
	recRepo := postgres.NewRecommendationRepo(db)
	notifRepo := postgres.NewNotificationRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	sender, err := newEmailSender(ctx, &cfg.Email, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	zoneSvc := service.NewZoneService(zoneRepo, userRepo)
	heatwaveSvc := service.NewHeatwaveService(heatwaveRepo, zoneRepo, notifRepo)
	statSvc := service.NewStatisticService(statRepo, heatwaveRepo)
	recSvc := service.NewRecommendationService(recRepo)
	notifSvc := service.NewNotificationService(notifRepo, userRepo, heatwaveRepo)
	regionSvc := service.NewRegionService(geo.DefaultRegions(), heatwaveRepo, recRepo, service.RegionServiceConfig{
		LocateTimeout: cfg.Geo.LocateTimeout,
		CacheSize:     cfg.Regions.CacheSize,
		CacheTTL:      cfg.Regions.CacheTTL,
	})
	reportSvc := service.NewReportService(regionSvc, s3Client, &cfg.S3)
	dashboardSvc := service.NewDashboardService(userRepo, heatwaveRepo, statRepo)

	dispatcher := service.NewNotificationDispatcher(notifRepo, sender, service.DispatcherConfig{
		PollInterval: time.Duration(cfg.Dispatch.PollIntervalSecs) * time.Second,
		MaxRetries:   cfg.Dispatch.MaxRetries,
		Concurrency:  cfg.Dispatch.Concurrency,
		BatchSize:    cfg.Dispatch.BatchSize,
	})
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Start(ctx)
	}()

	// Setup router
	r := router.Setup(logger, cfg.CORS.AllowedOrigins, authSvc, router.Handlers{
		Auth:           handler.NewAuthHandler(authSvc),
		Platform:       handler.NewPlatformHandler(platform.DefaultCatalog()),
		Region:         handler.NewRegionHandler(regionSvc),
		Zone:           handler.NewZoneHandler(zoneSvc),
		Heatwave:       handler.NewHeatwaveHandler(heatwaveSvc),
		Statistic:      handler.NewStatisticHandler(statSvc),
		Recommendation: handler.NewRecommendationHandler(recSvc),
		Notification:   handler.NewNotificationHandler(notifSvc),
		Report:         handler.NewReportHandler(reportSvc),
		Admin:          handler.NewAdminHandler(authSvc, dashboardSvc),
		Health:         handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Server.Port), slog.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			stop()
			<-dispatcherDone
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-dispatcherDone
	return nil
}

func newEmailSender(ctx context.Context, cfg *config.EmailConfig, logger *slog.Logger) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(ctx, cfg.Region, cfg.FromAddress, cfg.FromName, cfg.FrontendURL)
	case "noop", "":
		return noop.NewNoopSender(cfg.FrontendURL, logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
