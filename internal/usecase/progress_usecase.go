package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/repository"
)

// ProgressUsecase records completion and watch events against the store.
// Every call issues exactly one keyed upsert and never retries.
type ProgressUsecase interface {
	MarkPaperComplete(ctx context.Context, userID, paperID string) (entity.ProgressRecord, error)
	MarkVideoWatched(ctx context.Context, userID, videoID string) (entity.WatchRecord, error)
}

// NewProgressUsecase wires the progress repositories with the wall clock.
func NewProgressUsecase(progress repository.ProgressRepository, watches repository.WatchHistoryRepository) ProgressUsecase {
	return &progressUsecase{
		progress: progress,
		watches:  watches,
		clock:    time.Now,
	}
}

type progressUsecase struct {
	progress repository.ProgressRepository
	watches  repository.WatchHistoryRepository
	clock    func() time.Time
}

func (u *progressUsecase) MarkPaperComplete(ctx context.Context, userID, paperID string) (entity.ProgressRecord, error) {
	userID, paperID, err := normalizeKey(userID, paperID)
	if err != nil {
		return entity.ProgressRecord{}, err
	}
	record := entity.ProgressRecord{
		UserID:      userID,
		PaperID:     paperID,
		Completed:   true,
		CompletedAt: u.clock().UTC(),
	}
	if err := u.progress.Upsert(ctx, record); err != nil {
		return entity.ProgressRecord{}, entity.NewRemoteError(OpMarkComplete, err)
	}
	return record, nil
}

func (u *progressUsecase) MarkVideoWatched(ctx context.Context, userID, videoID string) (entity.WatchRecord, error) {
	userID, videoID, err := normalizeKey(userID, videoID)
	if err != nil {
		return entity.WatchRecord{}, err
	}
	record := entity.WatchRecord{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: u.clock().UTC(),
	}
	if err := u.watches.Upsert(ctx, record); err != nil {
		return entity.WatchRecord{}, entity.NewRemoteError(OpMarkWatched, err)
	}
	return record, nil
}

func normalizeKey(userID, itemID string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", "", entity.ErrInvalidUserID
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return "", "", entity.ErrInvalidMaterialID
	}
	return userID, itemID, nil
}
