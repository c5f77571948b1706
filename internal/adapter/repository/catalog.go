package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/infrastructure/database/migrate"
	"github.com/eslsoft/examprep/internal/repository"
)

type catalogRepository struct {
	drv dialect.Driver
}

// NewCatalogRepository returns a CatalogRepository that upserts by primary key
// through the ent SQL driver. It works on both PostgreSQL and SQLite.
func NewCatalogRepository(drv dialect.Driver) repository.CatalogRepository {
	return &catalogRepository{drv: drv}
}

func (r *catalogRepository) UpsertSubjects(ctx context.Context, subjects []entity.Subject) (int, error) {
	if len(subjects) == 0 {
		return 0, nil
	}
	ins := sql.Dialect(r.drv.Dialect()).
		Insert(migrate.SubjectsTable.Name).
		Columns(subjectColumns...)
	for _, s := range subjects {
		s.Normalize()
		ins.Values(s.ID, s.Name, s.Description, s.Icon, s.Color)
	}
	ins.OnConflict(sql.ConflictColumns("id"), sql.ResolveWithNewValues())
	if err := exec(ctx, r.drv, ins); err != nil {
		return 0, fmt.Errorf("upsert subjects: %w", err)
	}
	return len(subjects), nil
}

func (r *catalogRepository) UpsertPapers(ctx context.Context, papers []entity.QuestionPaper) (int, error) {
	if len(papers) == 0 {
		return 0, nil
	}
	ins := sql.Dialect(r.drv.Dialect()).
		Insert(migrate.QuestionPapersTable.Name).
		Columns(paperColumns...)
	for _, p := range papers {
		ins.Values(p.ID, p.Title, optionalValue(p.Date), optionalValue(p.Pages),
			optionalValue(p.Difficulty), optionalValue(p.FileURL), p.SubjectID, p.Year)
	}
	ins.OnConflict(sql.ConflictColumns("id"), sql.ResolveWithNewValues())
	if err := exec(ctx, r.drv, ins); err != nil {
		return 0, fmt.Errorf("upsert question papers: %w", err)
	}
	return len(papers), nil
}

func (r *catalogRepository) UpsertVideos(ctx context.Context, videos []entity.VideoLink) (int, error) {
	if len(videos) == 0 {
		return 0, nil
	}
	ins := sql.Dialect(r.drv.Dialect()).
		Insert(migrate.VideoLinksTable.Name).
		Columns(videoColumns...)
	for _, v := range videos {
		ins.Values(v.ID, v.Title, optionalValue(v.Duration), optionalValue(v.Instructor),
			optionalValue(v.Views), optionalValue(v.VideoURL), v.SubjectID, v.Year)
	}
	ins.OnConflict(sql.ConflictColumns("id"), sql.ResolveWithNewValues())
	if err := exec(ctx, r.drv, ins); err != nil {
		return 0, fmt.Errorf("upsert video links: %w", err)
	}
	return len(videos), nil
}
