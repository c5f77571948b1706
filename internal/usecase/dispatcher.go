package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/entity"
)

// Dispatcher applies completion events optimistically to a CompletionCache and then
// confirms them remotely. A failed confirmation is reported but the optimistic entry stays.
type Dispatcher struct {
	cache    *CompletionCache
	progress ProgressUsecase
	notifier Notifier
	logger   logrus.FieldLogger
}

// NewDispatcher binds a dispatcher to one session's cache.
func NewDispatcher(cache *CompletionCache, progress ProgressUsecase, notifier Notifier, logger logrus.FieldLogger) *Dispatcher {
	if notifier == nil {
		notifier = discardNotifier()
	}
	return &Dispatcher{cache: cache, progress: progress, notifier: notifier, logger: logger}
}

// MarkPaperComplete adds paperID to the completed set, then upserts the progress record.
func (d *Dispatcher) MarkPaperComplete(ctx context.Context, paperID, userID string) error {
	paperID = strings.TrimSpace(paperID)
	if paperID == "" {
		return entity.ErrInvalidMaterialID
	}
	if strings.TrimSpace(userID) == "" {
		return entity.ErrInvalidUserID
	}

	d.cache.AddCompletedPaper(paperID)
	if _, err := d.progress.MarkPaperComplete(ctx, userID, paperID); err != nil {
		d.logger.WithError(err).WithFields(logrus.Fields{"paper_id": paperID, "user_id": userID}).Warn("mark paper complete failed")
		d.notifier.Notify(ctx, entity.ErrorNotification("Error", "Failed to mark as complete"))
		return err
	}
	d.notifier.Notify(ctx, entity.InfoNotification("Success", "Marked as completed!"))
	return nil
}

// MarkVideoWatched adds videoID to the watched set, then upserts the watch record.
func (d *Dispatcher) MarkVideoWatched(ctx context.Context, videoID, userID string) error {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return entity.ErrInvalidMaterialID
	}
	if strings.TrimSpace(userID) == "" {
		return entity.ErrInvalidUserID
	}

	d.cache.AddWatchedVideo(videoID)
	if _, err := d.progress.MarkVideoWatched(ctx, userID, videoID); err != nil {
		d.logger.WithError(err).WithFields(logrus.Fields{"video_id": videoID, "user_id": userID}).Warn("mark video watched failed")
		d.notifier.Notify(ctx, entity.ErrorNotification("Error", "Failed to mark as watched"))
		return err
	}
	d.notifier.Notify(ctx, entity.InfoNotification("Video opened", "Marked as watched!"))
	return nil
}

// OpenPaper returns the paper's file URL and marks it complete. Papers without a file
// are reported and left unmarked.
func (d *Dispatcher) OpenPaper(ctx context.Context, paper entity.QuestionPaper, userID string) (string, error) {
	if !paper.HasFile() {
		d.notifier.Notify(ctx, entity.ErrorNotification("No file available", "This paper doesn't have a file URL yet."))
		return "", entity.ErrMissingFileURL
	}
	return *paper.FileURL, d.MarkPaperComplete(ctx, paper.ID, userID)
}

// OpenVideo returns the video's URL and marks it watched. Videos without a URL
// are reported and left unmarked.
func (d *Dispatcher) OpenVideo(ctx context.Context, video entity.VideoLink, userID string) (string, error) {
	if !video.HasVideo() {
		d.notifier.Notify(ctx, entity.ErrorNotification("No video available", "This video doesn't have a URL yet."))
		return "", entity.ErrMissingVideoURL
	}
	return *video.VideoURL, d.MarkVideoWatched(ctx, video.ID, userID)
}
