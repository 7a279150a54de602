package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/cosyll/cosyll-web/api/swagger"
	"github.com/cosyll/cosyll-web/internal/client"
	"github.com/cosyll/cosyll-web/internal/handler"
	"github.com/cosyll/cosyll-web/internal/middleware"
	"github.com/cosyll/cosyll-web/internal/repository"
	"github.com/cosyll/cosyll-web/internal/service"
	"github.com/cosyll/cosyll-web/pkg/cache"
	"github.com/cosyll/cosyll-web/pkg/config"
	"github.com/cosyll/cosyll-web/pkg/database"
	"github.com/cosyll/cosyll-web/pkg/export"
	"github.com/cosyll/cosyll-web/pkg/logger"
	corsmiddleware "github.com/cosyll/cosyll-web/pkg/middleware/cors"
	reqidmiddleware "github.com/cosyll/cosyll-web/pkg/middleware/requestid"
)

// @title Cosyll Web API
// @version 1.0.0
// @description Filtered, paginated syllabus and collection listings backed by the Cosyll REST API
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()
	probes := map[string]handler.Pinger{}

	cacheService := service.NewCacheService(nil, metrics, cfg.Cache.TTL, logr, false)
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("listing cache disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheService = service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, true)
			probes["cache"] = cacheRepo
		}
	}

	auditService := service.NewAuditService(nil, metrics, logr)
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect audit database", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		auditRepo := repository.NewAuditRepository(db)
		if err := auditRepo.EnsureSchema(ctx); err != nil {
			logr.Fatal("failed to prepare audit schema", zap.Error(err))
		}
		auditService = service.NewAuditService(auditRepo, metrics, logr)
		probes["audit"] = auditRepo
	}

	api := client.New(cfg.Upstream, logr, client.WithObserver(metrics.ObserveUpstream))
	validate := validator.New()
	listing := service.ListingConfig{PageSize: cfg.Listing.PageSize, MaxPageSize: cfg.Listing.MaxPageSize}
	exports := service.NewExportService(logr, export.NewCSVExporter(), export.NewPDFExporter())
	authService := service.NewAuthService(api, validate, logr, service.AuthConfig{Secret: cfg.Session.Secret, MaxAge: cfg.Session.CookieMaxAge})

	session := handler.SessionOptions{
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
		CookieMaxAge: cfg.Session.CookieMaxAge,
		LoginPath:    cfg.Session.LoginPath,
	}

	routes := handler.Routes{
		Syllabi: handler.NewSyllabusHandler(
			service.NewSyllabusService(api, cacheService, validate, logr, listing),
			service.NewInstitutionService(api, cacheService, validate, logr),
			service.NewAttachmentService(api, cacheService, validate, logr),
			exports, session),
		Collections: handler.NewCollectionHandler(service.NewCollectionService(api, cacheService, validate, logr, listing), exports, session),
		Users:       handler.NewUserHandler(service.NewUserService(api, cacheService, validate, logr, listing), auditService, session),
		Auth:        handler.NewAuthHandler(authService, session),
		Reference:   handler.NewReferenceHandler(),
		Tokens:      authService,
		Audit:       auditService,
		Session:     session,
	}
	system := handler.NewMetricsHandler(metrics, probes)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", system.Health)
	r.GET("/ready", system.Ready)
	r.GET("/metrics", system.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.Register(r.Group(cfg.APIPrefix))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
