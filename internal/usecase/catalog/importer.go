package catalog

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/repository"
)

const defaultBatchSize = 512

// Summary counts the rows written per table.
type Summary struct {
	Subjects int `json:"subjects"`
	Papers   int `json:"papers"`
	Videos   int `json:"videos"`
}

type Importer struct {
	repo      repository.CatalogRepository
	batchSize int
	logger    logrus.FieldLogger
}

type Option func(*Importer)

func WithBatchSize(size int) Option {
	return func(i *Importer) {
		if size > 0 {
			i.batchSize = size
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func NewImporter(repo repository.CatalogRepository, opts ...Option) *Importer {
	i := &Importer{repo: repo, batchSize: defaultBatchSize, logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import writes subjects before papers and videos so foreign keys resolve. Rows are
// upserted by ID; re-importing the same catalog is a no-op apart from refreshed values.
func (i *Importer) Import(ctx context.Context, c *Catalog) (Summary, error) {
	var sum Summary
	for _, chunk := range lo.Chunk(c.Subjects, i.batchSize) {
		n, err := i.repo.UpsertSubjects(ctx, chunk)
		if err != nil {
			return sum, fmt.Errorf("upsert subjects: %w", err)
		}
		sum.Subjects += n
	}
	for _, chunk := range lo.Chunk(c.Papers, i.batchSize) {
		n, err := i.repo.UpsertPapers(ctx, chunk)
		if err != nil {
			return sum, fmt.Errorf("upsert question papers: %w", err)
		}
		sum.Papers += n
	}
	for _, chunk := range lo.Chunk(c.Videos, i.batchSize) {
		n, err := i.repo.UpsertVideos(ctx, chunk)
		if err != nil {
			return sum, fmt.Errorf("upsert video links: %w", err)
		}
		sum.Videos += n
	}
	i.logger.WithFields(logrus.Fields{
		"subjects": sum.Subjects,
		"papers":   sum.Papers,
		"videos":   sum.Videos,
	}).Info("catalog imported")
	return sum, nil
}
