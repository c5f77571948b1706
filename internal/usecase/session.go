package usecase

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/entity"
)

// SessionState is the lifecycle of the materials view.
type SessionState string

const (
	StateAbsent  SessionState = "absent"
	StateLoading SessionState = "loading"
	StateReady   SessionState = "ready"
	StateFailed  SessionState = "failed"
)

// view is immutable once published; a navigation replaces it wholesale.
type view struct {
	generation uint64
	state      SessionState
	year       string
	slug       string
	snapshot   *entity.MaterialsSnapshot
	err        error
	cancel     context.CancelFunc
}

// Session owns the materials view of one signed-in user: the current snapshot,
// the completion cache and the dispatcher bound to it.
type Session struct {
	userID     string
	materials  MaterialsUsecase
	cache      *CompletionCache
	dispatcher *Dispatcher
	notifier   Notifier
	logger     logrus.FieldLogger

	generation atomic.Uint64
	current    atomic.Pointer[view]
}

// NewSession requires a present userID; identity is resolved upstream.
func NewSession(userID string, materials MaterialsUsecase, progress ProgressUsecase, notifier Notifier, logger logrus.FieldLogger) (*Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, entity.ErrInvalidUserID
	}
	if notifier == nil {
		notifier = discardNotifier()
	}
	logger = logger.WithField("user_id", userID)
	cache := NewCompletionCache(entity.IDSet{}, entity.IDSet{})
	s := &Session{
		userID:     userID,
		materials:  materials,
		cache:      cache,
		dispatcher: NewDispatcher(cache, progress, notifier, logger),
		notifier:   notifier,
		logger:     logger,
	}
	s.current.Store(&view{state: StateAbsent})
	return s, nil
}

// Navigate loads the materials of subjectSlug for year. A call superseded by a later
// Navigate returns ErrStaleNavigation and never overwrites the newer view.
func (s *Session) Navigate(ctx context.Context, year, subjectSlug string) (*entity.MaterialsSnapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pending := &view{
		generation: s.generation.Add(1),
		state:      StateLoading,
		year:       year,
		slug:       subjectSlug,
		cancel:     cancel,
	}
	if prev := s.current.Swap(pending); prev != nil && prev.cancel != nil {
		prev.cancel()
	}

	snapshot, err := s.materials.FetchMaterials(ctx, year, subjectSlug, s.userID)

	settled := &view{generation: pending.generation, year: year, slug: subjectSlug}
	if err != nil {
		settled.state, settled.err = StateFailed, err
	} else {
		settled.state, settled.snapshot = StateReady, snapshot
		// Readers of a ready view must already see its progress.
		s.cache.Merge(snapshot.CompletedPaperIDs, snapshot.WatchedVideoIDs)
	}
	if !s.current.CompareAndSwap(pending, settled) {
		s.logger.WithField("generation", pending.generation).Debug("discarding superseded materials load")
		return nil, entity.ErrStaleNavigation
	}

	if err != nil {
		s.notifier.Notify(ctx, entity.ErrorNotification(loadFailureTitle(err), err.Error()))
		return nil, err
	}

	for _, warning := range snapshot.Warnings {
		s.notifier.Notify(ctx, warning)
	}
	return s.Snapshot(), nil
}

// State reports the lifecycle state of the current view.
func (s *Session) State() SessionState {
	return s.current.Load().state
}

// Err returns the failure of the current view, if any.
func (s *Session) Err() error {
	return s.current.Load().err
}

// Snapshot returns the ready snapshot with the cache's current sets, or nil.
func (s *Session) Snapshot() *entity.MaterialsSnapshot {
	v := s.current.Load()
	if v.state != StateReady || v.snapshot == nil {
		return nil
	}
	completed, watched := s.cache.Snapshot()
	merged := v.snapshot.WithProgress(completed, watched)
	return &merged
}

// Back is the navigation intent of the "Back to Subjects" action.
func (s *Session) Back() entity.Navigation {
	return entity.SubjectsPath(s.current.Load().year)
}

// MarkPaperComplete records a completion for the session user.
func (s *Session) MarkPaperComplete(ctx context.Context, paperID string) error {
	return s.dispatcher.MarkPaperComplete(ctx, paperID, s.userID)
}

// MarkVideoWatched records a watch event for the session user.
func (s *Session) MarkVideoWatched(ctx context.Context, videoID string) error {
	return s.dispatcher.MarkVideoWatched(ctx, videoID, s.userID)
}

// OpenPaper resolves a paper of the current snapshot and marks it complete.
func (s *Session) OpenPaper(ctx context.Context, paperID string) (string, error) {
	snap := s.Snapshot()
	if snap == nil {
		return "", entity.ErrInvalidMaterialID
	}
	for _, p := range snap.Papers {
		if p.ID == paperID {
			return s.dispatcher.OpenPaper(ctx, p, s.userID)
		}
	}
	return "", entity.ErrInvalidMaterialID
}

// OpenVideo resolves a video of the current snapshot and marks it watched.
func (s *Session) OpenVideo(ctx context.Context, videoID string) (string, error) {
	snap := s.Snapshot()
	if snap == nil {
		return "", entity.ErrInvalidMaterialID
	}
	for _, v := range snap.Videos {
		if v.ID == videoID {
			return s.dispatcher.OpenVideo(ctx, v, s.userID)
		}
	}
	return "", entity.ErrInvalidMaterialID
}

// Close abandons any in-flight load.
func (s *Session) Close() {
	if v := s.current.Load(); v != nil && v.cancel != nil {
		v.cancel()
	}
}

func loadFailureTitle(err error) string {
	var remote *entity.RemoteError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return "Error loading subject"
	case errors.As(err, &remote) && remote.Op == OpResolveSubject:
		return "Error loading subject"
	case errors.As(err, &remote) && remote.Op == OpLoadPapers:
		return "Error loading papers"
	case errors.As(err, &remote) && remote.Op == OpLoadVideos:
		return "Error loading videos"
	default:
		return "Error loading materials"
	}
}
