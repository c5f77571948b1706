package repository

import (
	"context"

	"github.com/eslsoft/examprep/internal/entity"
)

// ProgressRepository persists paper completion, one row per (user, paper).
type ProgressRepository interface {
	ListCompletedPaperIDs(ctx context.Context, userID string) ([]string, error)
	Upsert(ctx context.Context, record entity.ProgressRecord) error
}

// WatchHistoryRepository persists watched videos, one row per (user, video).
type WatchHistoryRepository interface {
	ListWatchedVideoIDs(ctx context.Context, userID string) ([]string, error)
	Upsert(ctx context.Context, record entity.WatchRecord) error
}
