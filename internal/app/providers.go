package app

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/examprep/internal/adapter/repository"
	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/infrastructure/database"
	"github.com/eslsoft/examprep/internal/platform/cache"
	"github.com/eslsoft/examprep/internal/repository"
)

// ProvideCache connects to redis when cache.url is set. Without it, or when redis is
// unreachable, it returns a nil cache and the service runs uncached.
func ProvideCache(cfg *config.Config, logger logrus.FieldLogger) (*cache.Cache, func()) {
	if cfg.Cache.URL == "" {
		return nil, func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := cache.New(ctx, cfg.Cache.URL)
	if err != nil {
		logger.WithError(err).Warn("subject cache disabled")
		return nil, func() {}
	}
	return c, func() { _ = c.Close() }
}

// ProvideSubjectRepository wraps the SQL subject repository with the redis cache when available.
func ProvideSubjectRepository(drv dialect.Driver, c *cache.Cache, cfg *config.Config, logger logrus.FieldLogger) repository.SubjectRepository {
	return adapterrepo.NewCachedSubjectRepository(adapterrepo.NewSubjectRepository(drv), c, cfg.Cache.TTL, logger)
}

// ProvideMigratedDriver opens the database and brings the schema up to date.
func ProvideMigratedDriver(cfg *config.Config, logger logrus.FieldLogger) (dialect.Driver, func(), error) {
	drv, cleanup, err := database.NewEntDriver(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, drv); err != nil {
		cleanup()
		return nil, nil, err
	}
	return drv, cleanup, nil
}
