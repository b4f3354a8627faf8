package bootstrap

import (
	"context"
	"time"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/config"
	"github.com/bizplatform/pmcore/internal/infra/blob"
	"github.com/bizplatform/pmcore/internal/infra/cache"
	"github.com/bizplatform/pmcore/internal/infra/db"
	"github.com/bizplatform/pmcore/internal/infra/logger"
	"github.com/bizplatform/pmcore/internal/infra/queue"
	"github.com/bizplatform/pmcore/internal/modules/handler"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/modules/service"
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
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.Deduper, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ttl := time.Duration(cfg.Analytics.AlertDedupTTLSec) * time.Second
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		return cache.NewDeduper(
			do.MustInvoke[*redis.Client](i),
			cfg.App.Name+":alert",
			ttl,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// RabbitMQ
	do.Provide(inj, func(i *do.Injector) (queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		if cfg.RabbitMQ.URL == "" {
			return queue.NewNopPublisher(log), nil
		}
		conn, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			log.Sugar().Warnw("rabbitmq unavailable, events disabled", "err", err)
			return queue.NewNopPublisher(log), nil
		}
		return queue.NewPublisher(conn, cfg.RabbitMQ.Exchange, log)
	})

	// S3, absent when no bucket is configured
	do.Provide(inj, func(i *do.Injector) (blob.ObjectStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.S3.Bucket == "" {
			return nil, nil
		}
		s3, err := blob.NewS3(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		return s3, nil
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CostRepo, error) {
		return repo.NewCostRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SnapshotRepo, error) {
		return repo.NewSnapshotRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TemplateRepo, error) {
		return repo.NewTemplateRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ResourceRepo, error) {
		return repo.NewResourceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.CostRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			service.SystemClock,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AnalyticsService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewAnalyticsService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.SnapshotRepo](i),
			analyticsOptions(cfg),
			cfg.Analytics.DefaultLocale,
			service.SystemClock,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SnapshotService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewSnapshotService(
			do.MustInvoke[repo.SnapshotRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.AnalyticsService](i),
			do.MustInvoke[queue.Publisher](i),
			cfg.Analytics.TrendDays,
			service.SystemClock,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AlertService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewAlertService(
			do.MustInvoke[service.AnalyticsService](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.Deduper](i),
			do.MustInvoke[queue.Publisher](i),
			cfg.Analytics.HealthRiskThreshold,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ExportService, error) {
		return service.NewExportService(
			do.MustInvoke[service.AnalyticsService](i),
			do.MustInvoke[service.SnapshotService](i),
			do.MustInvoke[blob.ObjectStore](i),
			do.MustInvoke[func() time.Duration](i)(),
			service.SystemClock,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TemplateService, error) {
		return service.NewTemplateService(
			do.MustInvoke[repo.TemplateRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ResourceService, error) {
		return service.NewResourceService(
			do.MustInvoke[repo.ResourceRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MetricsHandler, error) {
		return handler.NewMetricsHandler(
			do.MustInvoke[service.AnalyticsService](i),
			do.MustInvoke[service.SnapshotService](i),
			do.MustInvoke[service.AlertService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ExportHandler, error) {
		return handler.NewExportHandler(do.MustInvoke[service.ExportService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TemplateHandler, error) {
		return handler.NewTemplateHandler(do.MustInvoke[service.TemplateService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ResourceHandler, error) {
		return handler.NewResourceHandler(do.MustInvoke[service.ResourceService](i)), nil
	})

	return inj
}

func analyticsOptions(cfg *config.Config) analytics.Options {
	opts := analytics.DefaultOptions()
	if cfg.Analytics.VelocityWindowWeeks > 0 {
		opts.VelocityWindowWeeks = cfg.Analytics.VelocityWindowWeeks
	}
	if cfg.Analytics.HealthRiskThreshold > 0 {
		opts.RiskThreshold = cfg.Analytics.HealthRiskThreshold
	}
	if len(cfg.Analytics.BudgetAlertThresholds) > 0 {
		opts.BudgetThresholds = cfg.Analytics.BudgetAlertThresholds
	}
	return opts
}
