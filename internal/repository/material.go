package repository

import (
	"context"

	"github.com/eslsoft/examprep/internal/entity"
)

// QuestionPaperRepository reads papers scoped by subject and year, ordered by date ascending.
type QuestionPaperRepository interface {
	ListBySubjectYear(ctx context.Context, subjectID string, year int32) ([]entity.QuestionPaper, error)
}

// VideoLinkRepository reads videos scoped by subject and year, ordered by title ascending.
type VideoLinkRepository interface {
	ListBySubjectYear(ctx context.Context, subjectID string, year int32) ([]entity.VideoLink, error)
}

// CatalogRepository writes externally owned catalog content. Only the import tooling uses it.
type CatalogRepository interface {
	UpsertSubjects(ctx context.Context, subjects []entity.Subject) (int, error)
	UpsertPapers(ctx context.Context, papers []entity.QuestionPaper) (int, error)
	UpsertVideos(ctx context.Context, videos []entity.VideoLink) (int, error)
}
