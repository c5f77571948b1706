package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/repository"
)

const (
	upsertSubjectSQL = `INSERT INTO subjects (id, name, description, icon, color)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
	icon = EXCLUDED.icon, color = EXCLUDED.color`

	upsertPaperSQL = `INSERT INTO question_papers (id, title, date, pages, difficulty, file_url, subject_id, year)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, date = EXCLUDED.date, pages = EXCLUDED.pages,
	difficulty = EXCLUDED.difficulty, file_url = EXCLUDED.file_url, subject_id = EXCLUDED.subject_id,
	year = EXCLUDED.year`

	upsertVideoSQL = `INSERT INTO video_links (id, title, duration, instructor, views, video_url, subject_id, year)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, duration = EXCLUDED.duration,
	instructor = EXCLUDED.instructor, views = EXCLUDED.views, video_url = EXCLUDED.video_url,
	subject_id = EXCLUDED.subject_id, year = EXCLUDED.year`
)

type pgxCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCatalogRepository returns a CatalogRepository that pipelines upserts through a
// pgx batch inside one transaction per call. PostgreSQL only.
func NewPgxCatalogRepository(pool *pgxpool.Pool) repository.CatalogRepository {
	return &pgxCatalogRepository{pool: pool}
}

func (r *pgxCatalogRepository) UpsertSubjects(ctx context.Context, subjects []entity.Subject) (int, error) {
	batch := &pgx.Batch{}
	for _, s := range subjects {
		s.Normalize()
		batch.Queue(upsertSubjectSQL, s.ID, s.Name, s.Description, s.Icon, s.Color)
	}
	return r.send(ctx, "subjects", batch)
}

func (r *pgxCatalogRepository) UpsertPapers(ctx context.Context, papers []entity.QuestionPaper) (int, error) {
	batch := &pgx.Batch{}
	for _, p := range papers {
		batch.Queue(upsertPaperSQL, p.ID, p.Title, p.Date, p.Pages, p.Difficulty, p.FileURL, p.SubjectID, p.Year)
	}
	return r.send(ctx, "question papers", batch)
}

func (r *pgxCatalogRepository) UpsertVideos(ctx context.Context, videos []entity.VideoLink) (int, error) {
	batch := &pgx.Batch{}
	for _, v := range videos {
		batch.Queue(upsertVideoSQL, v.ID, v.Title, v.Duration, v.Instructor, v.Views, v.VideoURL, v.SubjectID, v.Year)
	}
	return r.send(ctx, "video links", batch)
}

func (r *pgxCatalogRepository) send(ctx context.Context, what string, batch *pgx.Batch) (int, error) {
	if batch.Len() == 0 {
		return 0, nil
	}
	var written int
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			tag, err := results.Exec()
			if err != nil {
				results.Close()
				return err
			}
			written += int(tag.RowsAffected())
		}
		return results.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("upsert %s: %w", what, err)
	}
	return written, nil
}
