package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placement-portal/internal/config"
	"placement-portal/internal/database"
	"placement-portal/internal/database/migration"
	dbpostgres "placement-portal/internal/database/postgres"
	"placement-portal/internal/infrastructure/cache"
	"placement-portal/internal/infrastructure/fixture"
	"placement-portal/internal/mapper"
	"placement-portal/internal/pkg/jwt"
	"placement-portal/internal/repository"
	"placement-portal/internal/service"
	"placement-portal/internal/usecase"
	"placement-portal/internal/ws"

	"go.uber.org/zap"
)

// Container owns the long-lived dependencies of the server and the CLI.
// DB, Auth and JWT are nil in fixture mode.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   *jwt.Signer

	Source      usecase.CompanySource
	Catalog     *usecase.Catalog
	SkillMatrix *usecase.SkillMatrix
	Import      *usecase.Import
	Auth        *usecase.Auth

	Hub      *ws.Hub
	Notifier *ws.Notifier

	stop context.CancelFunc
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{Config: cfg, Logger: logger}

	m, err := newMapper(cfg.Mapper, logger)
	if err != nil {
		return nil, err
	}

	var writer usecase.CompanyWriter
	if cfg.UsesPostgres() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db

		if cfg.Database.AutoMigrate {
			if err := (migration.Runner{Logger: logger}).Run(ctx, db); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}

		repo := repository.NewPostgresCompanyRepository(db)
		c.Source = service.NewCompanyService(repo, m, db)
		writer = repo

		c.JWT = jwt.NewSigner(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		)
		c.Auth = usecase.NewAuthUsecase(repository.NewPostgresAdminRepository(db), c.JWT)
	} else {
		cat, err := fixture.Load()
		if err != nil {
			return nil, err
		}
		c.Source = cat
	}

	cacheCtx, cacheCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cacheCancel()
	c.Cache = cache.NewRedis(cacheCtx, cfg.Redis, logger)

	runCtx, stop := context.WithCancel(context.Background())
	c.stop = stop
	c.Hub = ws.NewHub(logger)
	go c.Hub.Run(runCtx)
	c.Notifier = ws.NewNotifier(c.Hub, cfg.DataSource, logger)

	c.Catalog = usecase.NewCatalogUsecase(c.Source, c.Cache, logger)
	c.SkillMatrix = usecase.NewSkillMatrixUsecase(c.Catalog)
	c.Import = usecase.NewImportUsecase(writer, c.Cache, c.Notifier, logger)

	logger.Info("container ready",
		zap.String("source", cfg.DataSource),
		zap.Bool("cache", c.Cache.Available()),
	)
	return c, nil
}

func newMapper(cfg config.MapperConfig, logger *zap.Logger) (*mapper.Mapper, error) {
	fields, err := mapper.ParseFieldColumns(cfg.FieldColumns)
	if err != nil {
		return nil, fmt.Errorf("MAPPER_FIELD_COLUMNS: %w", err)
	}
	m, err := mapper.New(mapper.WithFieldColumns(fields), mapper.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("MAPPER_FIELD_COLUMNS: %w", err)
	}
	if gaps := m.Gaps(); len(gaps) > 0 {
		logger.Debug("mapper fields without a source column", zap.Strings("fields", gaps))
	}
	return m, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stop != nil {
		c.stop()
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
