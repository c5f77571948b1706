package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/infrastructure/database/migrate"
	"github.com/eslsoft/examprep/internal/repository"
)

var (
	paperColumns = []string{"id", "title", "date", "pages", "difficulty", "file_url", "subject_id", "year"}
	videoColumns = []string{"id", "title", "duration", "instructor", "views", "video_url", "subject_id", "year"}
)

type questionPaperRepository struct {
	drv dialect.Driver
}

// NewQuestionPaperRepository returns a QuestionPaperRepository backed by the ent SQL driver.
func NewQuestionPaperRepository(drv dialect.Driver) repository.QuestionPaperRepository {
	return &questionPaperRepository{drv: drv}
}

func (r *questionPaperRepository) ListBySubjectYear(ctx context.Context, subjectID string, year int32) ([]entity.QuestionPaper, error) {
	b := sql.Dialect(r.drv.Dialect())
	t := b.Table(migrate.QuestionPapersTable.Name)
	sel := b.Select(qualify(t, paperColumns)...).
		From(t).
		Where(sql.And(sql.EQ(t.C("subject_id"), subjectID), sql.EQ(t.C("year"), year))).
		OrderExpr(sql.Expr(t.C("date") + " IS NULL")).
		OrderBy(sql.Asc(t.C("date")), sql.Asc(t.C("title")), sql.Asc(t.C("id")))

	var rows sql.Rows
	q, args := sel.Query()
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("list question papers: %w", err)
	}
	defer rows.Close()

	var out []entity.QuestionPaper
	for rows.Next() {
		var (
			p          entity.QuestionPaper
			date       sql.NullTime
			pages      sql.NullInt64
			difficulty sql.NullString
			fileURL    sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &date, &pages, &difficulty, &fileURL, &p.SubjectID, &p.Year); err != nil {
			return nil, fmt.Errorf("scan question paper: %w", err)
		}
		p.Date = nullTime(date)
		if pages.Valid {
			n := int32(pages.Int64)
			p.Pages = &n
		}
		p.Difficulty = nullString(difficulty)
		p.FileURL = nullString(fileURL)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question papers: %w", err)
	}
	return out, nil
}

type videoLinkRepository struct {
	drv dialect.Driver
}

// NewVideoLinkRepository returns a VideoLinkRepository backed by the ent SQL driver.
func NewVideoLinkRepository(drv dialect.Driver) repository.VideoLinkRepository {
	return &videoLinkRepository{drv: drv}
}

func (r *videoLinkRepository) ListBySubjectYear(ctx context.Context, subjectID string, year int32) ([]entity.VideoLink, error) {
	b := sql.Dialect(r.drv.Dialect())
	t := b.Table(migrate.VideoLinksTable.Name)
	sel := b.Select(qualify(t, videoColumns)...).
		From(t).
		Where(sql.And(sql.EQ(t.C("subject_id"), subjectID), sql.EQ(t.C("year"), year))).
		OrderBy(sql.Asc(t.C("title")), sql.Asc(t.C("id")))

	var rows sql.Rows
	q, args := sel.Query()
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("list video links: %w", err)
	}
	defer rows.Close()

	var out []entity.VideoLink
	for rows.Next() {
		var (
			v                                     entity.VideoLink
			duration, instructor, views, videoURL sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.Title, &duration, &instructor, &views, &videoURL, &v.SubjectID, &v.Year); err != nil {
			return nil, fmt.Errorf("scan video link: %w", err)
		}
		v.Duration = nullString(duration)
		v.Instructor = nullString(instructor)
		v.Views = nullString(views)
		v.VideoURL = nullString(videoURL)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video links: %w", err)
	}
	return out, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time.UTC()
	return &t
}

func optionalValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
