package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/platform/cache"
	"github.com/eslsoft/examprep/internal/repository"
)

const subjectNameKeyPrefix = "examprep:subject:name:"

// subjectCache is the part of *cache.Cache the subject decorators use.
type subjectCache interface {
	GetJSON(ctx context.Context, key string, dst any) error
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

func subjectNameKey(name string) string {
	return subjectNameKeyPrefix + strings.ToLower(strings.TrimSpace(name))
}

type cachedSubjectRepository struct {
	next   repository.SubjectRepository
	cache  subjectCache
	ttl    time.Duration
	logger logrus.FieldLogger
}

// NewCachedSubjectRepository caches non-empty FindByName results in redis for ttl. Cache failures
// are logged and fall through to next. A nil cache returns next unchanged.
func NewCachedSubjectRepository(next repository.SubjectRepository, c *cache.Cache, ttl time.Duration, logger logrus.FieldLogger) repository.SubjectRepository {
	if c == nil {
		return next
	}
	return newCachedSubjectRepository(next, c, ttl, logger)
}

func newCachedSubjectRepository(next repository.SubjectRepository, c subjectCache, ttl time.Duration, logger logrus.FieldLogger) *cachedSubjectRepository {
	return &cachedSubjectRepository{next: next, cache: c, ttl: ttl, logger: logger}
}

func (r *cachedSubjectRepository) FindByName(ctx context.Context, name string) ([]entity.Subject, error) {
	key := subjectNameKey(name)

	var cached []entity.Subject
	err := r.cache.GetJSON(ctx, key, &cached)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, cache.ErrMiss):
		r.logger.WithError(err).WithField("key", key).Warn("subject cache read failed")
	}

	subjects, err := r.next.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return subjects, nil
	}
	if err := r.cache.SetJSON(ctx, key, subjects, r.ttl); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("subject cache write failed")
	}
	return subjects, nil
}

func (r *cachedSubjectRepository) List(ctx context.Context, query *repository.ListSubjectQuery) ([]entity.Subject, error) {
	return r.next.List(ctx, query)
}

type invalidatingCatalogRepository struct {
	repository.CatalogRepository
	cache  subjectCache
	logger logrus.FieldLogger
}

// NewInvalidatingCatalogRepository purges every cached subject-name resolution after subjects
// are written, so a new duplicate name or a rename is visible to the next lookup. A nil cache
// returns next unchanged.
func NewInvalidatingCatalogRepository(next repository.CatalogRepository, c *cache.Cache, logger logrus.FieldLogger) repository.CatalogRepository {
	if c == nil {
		return next
	}
	return newInvalidatingCatalogRepository(next, c, logger)
}

func newInvalidatingCatalogRepository(next repository.CatalogRepository, c subjectCache, logger logrus.FieldLogger) *invalidatingCatalogRepository {
	return &invalidatingCatalogRepository{CatalogRepository: next, cache: c, logger: logger}
}

// UpsertSubjects fails when the purge fails: the rows are written but stale resolutions could
// hide an ambiguous name, and re-running the import is safe.
func (r *invalidatingCatalogRepository) UpsertSubjects(ctx context.Context, subjects []entity.Subject) (int, error) {
	n, err := r.CatalogRepository.UpsertSubjects(ctx, subjects)
	if err != nil || n == 0 {
		return n, err
	}
	if err := r.cache.DeletePrefix(ctx, subjectNameKeyPrefix); err != nil {
		return n, fmt.Errorf("invalidate subject cache: %w", err)
	}
	r.logger.WithField("subjects", n).Debug("subject cache invalidated")
	return n, nil
}
