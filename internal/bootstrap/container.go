package bootstrap

import (
	"context"

	"github.com/sitegenie/sitegenie/internal/config"
	"github.com/sitegenie/sitegenie/internal/infra/blob"
	"github.com/sitegenie/sitegenie/internal/infra/cache"
	"github.com/sitegenie/sitegenie/internal/infra/db"
	"github.com/sitegenie/sitegenie/internal/infra/httpclient"
	"github.com/sitegenie/sitegenie/internal/infra/logger"
	"github.com/sitegenie/sitegenie/internal/infra/queue"
	"github.com/sitegenie/sitegenie/internal/infra/worker"
	"github.com/sitegenie/sitegenie/internal/modules/handler"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/modules/service"
	"github.com/sitegenie/sitegenie/internal/pkg/tokens"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		return cache.New(do.MustInvoke[*config.Config](i)), nil
	})

	// RabbitMQ, optional: without a URL job events are not published
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*queue.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewEventPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Queue,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		return blob.NewS3(context.Background(), do.MustInvoke[*config.Config](i))
	})

	// background jobs
	do.Provide(inj, func(i *do.Injector) (*worker.Client, error) {
		return worker.NewClient(do.MustInvoke[*config.Config](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*cache.ProgressTracker, error) {
		return cache.NewProgressTracker(do.MustInvoke[*redis.Client](i)), nil
	})

	// content provider
	do.Provide(inj, func(i *do.Injector) (*httpclient.ContentClient, error) {
		return httpclient.NewContentClient(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i)), nil
	})

	do.Provide(inj, func(i *do.Injector) (*tokens.Signer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return tokens.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.Issuer), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SessionRepo, error) {
		return repo.NewSessionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PageRepo, error) {
		return repo.NewPageRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SEORepo, error) {
		return repo.NewSEORepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CSVUploadRepo, error) {
		return repo.NewCSVUploadRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.GenerationRepo, error) {
		return repo.NewGenerationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DeploymentRepo, error) {
		return repo.NewDeploymentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AnalyticsRepo, error) {
		return repo.NewAnalyticsRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.SessionRepo](i),
			do.MustInvoke[*tokens.Signer](i),
			service.UserServiceConfig{TokenTTL: cfg.Auth.TokenTTL, BcryptCost: cfg.Auth.BcryptCost},
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PageService, error) {
		return service.NewPageService(do.MustInvoke[repo.PageRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SEOService, error) {
		return service.NewSEOService(do.MustInvoke[repo.PageRepo](i), do.MustInvoke[repo.SEORepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GenerationService, error) {
		return service.NewGenerationService(
			do.MustInvoke[repo.PageRepo](i),
			do.MustInvoke[repo.GenerationRepo](i),
			do.MustInvoke[*httpclient.ContentClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CSVService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewCSVService(
			do.MustInvoke[repo.CSVUploadRepo](i),
			do.MustInvoke[repo.PageRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*worker.Client](i),
			do.MustInvoke[*queue.EventPublisher](i),
			do.MustInvoke[*zap.Logger](i),
			cfg.Preview.Rows,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ExportService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewExportService(
			do.MustInvoke[repo.DeploymentRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.PageRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*worker.Client](i),
			do.MustInvoke[*cache.ProgressTracker](i),
			do.MustInvoke[*queue.EventPublisher](i),
			service.ExportServiceConfig{SitesURL: cfg.App.SitesURL},
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AnalyticsService, error) {
		return service.NewAnalyticsService(do.MustInvoke[repo.AnalyticsRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*service.JobHandlers, error) {
		return &service.JobHandlers{
			CSV:    do.MustInvoke[service.CSVService](i),
			Export: do.MustInvoke[service.ExportService](i),
		}, nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PageHandler, error) {
		return handler.NewPageHandler(do.MustInvoke[service.PageService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SEOHandler, error) {
		return handler.NewSEOHandler(do.MustInvoke[service.SEOService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GenerationHandler, error) {
		return handler.NewGenerationHandler(do.MustInvoke[service.GenerationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CSVHandler, error) {
		return handler.NewCSVHandler(do.MustInvoke[service.CSVService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ExportHandler, error) {
		return handler.NewExportHandler(do.MustInvoke[service.ExportService](i), do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AnalyticsHandler, error) {
		return handler.NewAnalyticsHandler(do.MustInvoke[service.AnalyticsService](i)), nil
	})

	return inj
}
