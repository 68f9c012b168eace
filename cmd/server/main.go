package main

//	@title			SiteGenie API
//	@version		1.0
//	@description	API for building AI-assisted marketing websites.
//	@schemes		http https
//	@BasePath		/api

//  Bearer at user level
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				User session token (e.g., "Bearer eyJ...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/sitegenie/sitegenie/internal/bootstrap"
	"github.com/sitegenie/sitegenie/internal/config"
	"github.com/sitegenie/sitegenie/internal/infra/cache"
	dbpkg "github.com/sitegenie/sitegenie/internal/infra/db"
	"github.com/sitegenie/sitegenie/internal/infra/queue"
	"github.com/sitegenie/sitegenie/internal/infra/worker"
	"github.com/sitegenie/sitegenie/internal/modules/handler"
	"github.com/sitegenie/sitegenie/internal/modules/service"
	"github.com/sitegenie/sitegenie/internal/router"
	"github.com/sitegenie/sitegenie/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	if cfg.Auth.JWTSecret == "" {
		log.Sugar().Fatal("auth.jwtSecret is required")
	}

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// plugins need the tracer provider to be set first
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin", "err", err)
		}
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin", "err", err)
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:            cfg,
		Log:               log,
		UserSvc:           do.MustInvoke[service.UserService](inj),
		ProjectSvc:        do.MustInvoke[service.ProjectService](inj),
		UserHandler:       do.MustInvoke[*handler.UserHandler](inj),
		ProjectHandler:    do.MustInvoke[*handler.ProjectHandler](inj),
		PageHandler:       do.MustInvoke[*handler.PageHandler](inj),
		SEOHandler:        do.MustInvoke[*handler.SEOHandler](inj),
		GenerationHandler: do.MustInvoke[*handler.GenerationHandler](inj),
		CSVHandler:        do.MustInvoke[*handler.CSVHandler](inj),
		ExportHandler:     do.MustInvoke[*handler.ExportHandler](inj),
		AnalyticsHandler:  do.MustInvoke[*handler.AnalyticsHandler](inj),
	})

	// background jobs share the process with the API
	jobs := worker.NewServer(cfg, log)
	if err := jobs.Start(worker.NewMux(do.MustInvoke[*service.JobHandlers](inj), log)); err != nil {
		log.Sugar().Fatalw("start job worker", "err", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	jobs.Shutdown()

	if err := do.MustInvoke[*worker.Client](inj).Close(); err != nil {
		log.Sugar().Warnw("close job client", "err", err)
	}
	if err := do.MustInvoke[*queue.EventPublisher](inj).Close(); err != nil {
		log.Sugar().Warnw("close event publisher", "err", err)
	}
	if conn := do.MustInvoke[*amqp.Connection](inj); conn != nil {
		_ = conn.Close()
	}
	if err := rdb.Close(); err != nil {
		log.Sugar().Warnw("close redis", "err", err)
	}
	log.Sugar().Info("server exited")
}
