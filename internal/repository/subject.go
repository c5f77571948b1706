package repository

import (
	"context"

	"github.com/eslsoft/examprep/internal/entity"
)

// ListSubjectQuery holds parameters for listing the subject catalog.
type ListSubjectQuery struct {
	FilterOrder
}

// SubjectRepository resolves and lists subjects.
type SubjectRepository interface {
	// FindByName returns every subject whose name equals name ignoring case.
	// Callers decide how to treat zero or multiple matches.
	FindByName(ctx context.Context, name string) ([]entity.Subject, error)
	List(ctx context.Context, query *ListSubjectQuery) ([]entity.Subject, error)
}
