package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/examprep/internal/entity"
)

func newTestDispatcher(f *fixture) (*Dispatcher, *CompletionCache, *NotificationRecorder) {
	cache := NewCompletionCache(entity.IDSet{}, entity.IDSet{})
	rec := &NotificationRecorder{}
	return NewDispatcher(cache, f.progressUsecase(), rec, quietLogger()), cache, rec
}

func TestDispatcherMarkPaperCompleteTwice(t *testing.T) {
	f := newFixture()
	d, cache, rec := newTestDispatcher(f)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := d.MarkPaperComplete(ctx, "p1", "u1"); err != nil {
			t.Fatalf("MarkPaperComplete #%d failed: %v", i+1, err)
		}
	}

	if f.progress.count() != 1 {
		t.Fatalf("expected one stored record, got %d", f.progress.count())
	}
	if got := cache.CompletedPapers().Sorted(); len(got) != 1 || got[0] != "p1" {
		t.Fatalf("expected p1 exactly once, got %v", got)
	}
	notes := rec.Notifications()
	if len(notes) != 2 || notes[0].Severity != entity.SeverityInfo || notes[0].Description != "Marked as completed!" {
		t.Fatalf("unexpected notifications %+v", notes)
	}
}

func TestDispatcherKeepsOptimisticEntryOnFailure(t *testing.T) {
	f := newFixture()
	f.watches.upsertErr = errors.New("write timeout")
	d, cache, rec := newTestDispatcher(f)

	err := d.MarkVideoWatched(context.Background(), "v1", "u1")
	if !entity.IsRemote(err) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if !cache.WatchedVideos().Has("v1") {
		t.Fatal("optimistic entry must survive a failed confirmation")
	}
	notes := rec.Notifications()
	if len(notes) != 1 || notes[0].Severity != entity.SeverityError || notes[0].Description != "Failed to mark as watched" {
		t.Fatalf("unexpected notifications %+v", notes)
	}
}

func TestDispatcherOptimisticUpdatesDoNotWaitForConfirmation(t *testing.T) {
	f := newFixture()
	f.progress.release = make(chan struct{})
	d, cache, _ := newTestDispatcher(f)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- d.MarkPaperComplete(ctx, "p1", "u1") }()

	deadline := time.Now().Add(2 * time.Second)
	for !cache.CompletedPapers().Has("p1") {
		if time.Now().After(deadline) {
			t.Fatal("optimistic paper update was not applied before confirmation")
		}
		time.Sleep(time.Millisecond)
	}

	if err := d.MarkVideoWatched(ctx, "v1", "u1"); err != nil {
		t.Fatalf("MarkVideoWatched failed: %v", err)
	}
	completed, watched := cache.Snapshot()
	if !completed.Has("p1") || !watched.Has("v1") {
		t.Fatalf("expected p1 and v1, got %v %v", completed.Sorted(), watched.Sorted())
	}

	close(f.progress.release)
	if err := <-done; err != nil {
		t.Fatalf("MarkPaperComplete failed: %v", err)
	}
	if !cache.CompletedPapers().Has("p1") || !cache.WatchedVideos().Has("v1") {
		t.Fatal("confirmation erased an entry")
	}
}

func TestDispatcherOpenMissingURL(t *testing.T) {
	f := newFixture()
	d, cache, rec := newTestDispatcher(f)
	ctx := context.Background()

	if _, err := d.OpenPaper(ctx, entity.QuestionPaper{ID: "p-undated"}, "u1"); !errors.Is(err, entity.ErrMissingFileURL) {
		t.Fatalf("expected ErrMissingFileURL, got %v", err)
	}
	if _, err := d.OpenVideo(ctx, entity.VideoLink{ID: "v-arrays"}, "u1"); !errors.Is(err, entity.ErrMissingVideoURL) {
		t.Fatalf("expected ErrMissingVideoURL, got %v", err)
	}
	if cache.CompletedPapers().Len() != 0 || cache.WatchedVideos().Len() != 0 {
		t.Fatal("items without URLs must not be marked")
	}
	notes := rec.Notifications()
	if len(notes) != 2 || notes[0].Title != "No file available" || notes[1].Title != "No video available" {
		t.Fatalf("unexpected notifications %+v", notes)
	}
}

func TestDispatcherRejectsEmptyIDs(t *testing.T) {
	d, cache, _ := newTestDispatcher(newFixture())
	if err := d.MarkPaperComplete(context.Background(), " ", "u1"); !errors.Is(err, entity.ErrInvalidMaterialID) {
		t.Fatalf("expected ErrInvalidMaterialID, got %v", err)
	}
	if err := d.MarkVideoWatched(context.Background(), "v1", ""); !errors.Is(err, entity.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if cache.CompletedPapers().Len() != 0 || cache.WatchedVideos().Len() != 0 {
		t.Fatal("invalid calls must not touch the cache")
	}
}
