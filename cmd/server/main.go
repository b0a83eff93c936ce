package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/infrastructure/archive"
	"github.com/roadwatch/backend/internal/infrastructure/config"
	"github.com/roadwatch/backend/internal/infrastructure/detector"
	"github.com/roadwatch/backend/internal/infrastructure/logger"
	"github.com/roadwatch/backend/internal/infrastructure/media"
	"github.com/roadwatch/backend/internal/infrastructure/persistence"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/memory"
	"github.com/roadwatch/backend/internal/infrastructure/sysmon"
	"github.com/roadwatch/backend/internal/interfaces/http/handler"
	"github.com/roadwatch/backend/internal/interfaces/http/middleware"
	"github.com/roadwatch/backend/internal/interfaces/http/router"
)

type repositories struct {
	users         monitoring.UserRepository
	cameras       monitoring.CameraRepository
	incidents     monitoring.IncidentRepository
	notifications monitoring.NotificationRepository
	stats         monitoring.SystemStatRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting RoadWatch backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store", cfg.Database.Driver),
	)

	repos, dbClose, err := buildRepositories(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize data store", zap.Error(err))
	}
	if dbClose != nil {
		defer dbClose()
	}

	// Application services
	userService := appmonitoring.NewUserService(repos.users, log)
	cameraService := appmonitoring.NewCameraService(repos.cameras, repos.incidents, log)
	incidentService := appmonitoring.NewIncidentService(repos.incidents, repos.cameras, log)
	notificationService := appmonitoring.NewNotificationService(repos.notifications, repos.incidents, log)
	statService := appmonitoring.NewSystemStatService(repos.stats, log)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userService.EnsureDefaultAdmin(bootCtx); err != nil {
		bootCancel()
		log.Fatal("Failed to seed default admin", zap.Error(err))
	}
	bootCancel()

	mediaStore, err := media.NewStore(cfg.Media, log)
	if err != nil {
		log.Fatal("Failed to initialize media store", zap.Error(err))
	}

	var archiver archive.Archiver = archive.NewNoopArchiver()
	if cfg.Archive.Enabled {
		s3Archiver, err := archive.NewS3Archiver(&cfg.Archive, log)
		if err != nil {
			log.Fatal("Failed to initialize archive storage", zap.Error(err))
		}
		archiver = s3Archiver
		log.Info("Footage archiving enabled", zap.String("bucket", cfg.Archive.Bucket))
	}

	// Detection service supervisor
	var supervisor *detector.Supervisor
	if cfg.Detector.Enabled {
		supervisor = detector.NewSupervisor(cfg.Detector, log)
		defer supervisor.Shutdown()
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// The proxy runs ahead of the router, so detection paths reach the
	// detection service even when a local handler claims the same route.
	if cfg.Detector.Enabled {
		engine.Use(middleware.DetectionProxy(middleware.ProxyConfig{
			Target: cfg.Detector.BaseURL(),
			Gate:   supervisor,
			Logger: log,
		}))
		log.Info("Detection proxy enabled", zap.String("target", cfg.Detector.BaseURL()))
	}

	router.Setup(engine, router.Handlers{
		Users:         handler.NewUserHandler(userService),
		Cameras:       handler.NewCameraHandler(cameraService),
		Incidents:     handler.NewIncidentHandler(incidentService, notificationService),
		Notifications: handler.NewNotificationHandler(notificationService),
		System:        handler.NewSystemHandler(statService),
		Videos:        handler.NewVideoHandler(mediaStore, archiver, log),
	}, router.StaticDirs{
		Uploads:   cfg.Media.UploadDir,
		Processed: cfg.Media.ProcessedDir,
	})

	// Background statistics sampler
	samplerCtx, samplerCancel := context.WithCancel(context.Background())
	defer samplerCancel()
	if cfg.Sysmon.Enabled {
		collector := sysmon.NewCollector(statService, cfg.Sysmon.SampleInterval, log)
		go collector.Run(samplerCtx)
		log.Info("System statistics sampler started",
			zap.Duration("interval", cfg.Sysmon.SampleInterval))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	samplerCancel()
	if supervisor != nil {
		supervisor.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// buildRepositories selects the backing store from config. The memory
// driver keeps everything in process and needs no external service.
func buildRepositories(cfg *config.Config, log *zap.Logger) (repositories, func(), error) {
	if cfg.Database.Driver == "memory" {
		store := memory.NewStore()
		return repositories{
			users:         memory.NewUserRepository(store),
			cameras:       memory.NewCameraRepository(store),
			incidents:     memory.NewIncidentRepository(store),
			notifications: memory.NewNotificationRepository(store),
			stats:         memory.NewSystemStatRepository(store),
		}, nil, nil
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		return repositories{}, nil, err
	}
	log.Info("Database connected successfully")

	closeFn := func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}
	return repositories{
		users:         persistence.NewGormUserRepository(db.DB),
		cameras:       persistence.NewGormCameraRepository(db.DB),
		incidents:     persistence.NewGormIncidentRepository(db.DB),
		notifications: persistence.NewGormNotificationRepository(db.DB),
		stats:         persistence.NewGormSystemStatRepository(db.DB),
	}, closeFn, nil
}
