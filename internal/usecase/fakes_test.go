package usecase

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/repository"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeSubjectRepo struct {
	mu       sync.RWMutex
	items    []entity.Subject
	err      error
	findCall atomic.Int32
}

func (r *fakeSubjectRepo) FindByName(ctx context.Context, name string) ([]entity.Subject, error) {
	r.findCall.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Subject
	for _, s := range r.items {
		if strings.EqualFold(s.Name, name) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubjectRepo) List(ctx context.Context, _ *repository.ListSubjectQuery) ([]entity.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	out := append([]entity.Subject(nil), r.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakePaperRepo struct {
	mu    sync.RWMutex
	items []entity.QuestionPaper
	err   error
	calls atomic.Int32
	// gate, when set for a subject, blocks the fetch until closed or ctx is done.
	gate map[string]chan struct{}
}

func (r *fakePaperRepo) ListBySubjectYear(ctx context.Context, subjectID string, year int32) ([]entity.QuestionPaper, error) {
	r.calls.Add(1)
	r.mu.RLock()
	gate := r.gate[subjectID]
	r.mu.RUnlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.QuestionPaper
	for _, p := range r.items {
		if p.SubjectID == subjectID && p.Year == year {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeVideoRepo struct {
	mu    sync.RWMutex
	items []entity.VideoLink
	err   error
	calls atomic.Int32
	// leak returns every video regardless of scope, imitating a misbehaving store.
	leak bool
}

func (r *fakeVideoRepo) ListBySubjectYear(ctx context.Context, subjectID string, year int32) ([]entity.VideoLink, error) {
	r.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.VideoLink
	for _, v := range r.items {
		if r.leak || (v.SubjectID == subjectID && v.Year == year) {
			out = append(out, v)
		}
	}
	return out, nil
}

type progressKey struct{ user, item string }

type fakeProgressRepo struct {
	mu        sync.RWMutex
	records   map[progressKey]entity.ProgressRecord
	listErr   error
	upsertErr error
	calls     atomic.Int32
	// release, when set, blocks Upsert until closed.
	release chan struct{}
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[progressKey]entity.ProgressRecord)}
}

func (r *fakeProgressRepo) ListCompletedPaperIDs(ctx context.Context, userID string) ([]string, error) {
	r.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var ids []string
	for k, rec := range r.records {
		if k.user == userID && rec.Completed {
			ids = append(ids, k.item)
		}
	}
	return ids, nil
}

func (r *fakeProgressRepo) Upsert(ctx context.Context, record entity.ProgressRecord) error {
	if r.release != nil {
		<-r.release
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.records[progressKey{record.UserID, record.PaperID}] = record
	return nil
}

func (r *fakeProgressRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

type fakeWatchRepo struct {
	mu        sync.RWMutex
	records   map[progressKey]entity.WatchRecord
	listErr   error
	upsertErr error
	calls     atomic.Int32
}

func newFakeWatchRepo() *fakeWatchRepo {
	return &fakeWatchRepo{records: make(map[progressKey]entity.WatchRecord)}
}

func (r *fakeWatchRepo) ListWatchedVideoIDs(ctx context.Context, userID string) ([]string, error) {
	r.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var ids []string
	for k := range r.records {
		if k.user == userID {
			ids = append(ids, k.item)
		}
	}
	return ids, nil
}

func (r *fakeWatchRepo) Upsert(ctx context.Context, record entity.WatchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.records[progressKey{record.UserID, record.VideoID}] = record
	return nil
}

type fixture struct {
	subjects *fakeSubjectRepo
	papers   *fakePaperRepo
	videos   *fakeVideoRepo
	progress *fakeProgressRepo
	watches  *fakeWatchRepo
}

func newFixture() *fixture {
	str := func(s string) *string { return &s }
	return &fixture{
		subjects: &fakeSubjectRepo{items: []entity.Subject{
			{ID: "DS1", Name: "Data Structures"},
			{ID: "PH1", Name: "Physics"},
		}},
		papers: &fakePaperRepo{items: []entity.QuestionPaper{
			{ID: "p-late", Title: "Final", Date: date(2024, 6, 1), SubjectID: "DS1", Year: 2024, FileURL: str("https://files/final.pdf")},
			{ID: "p-undated", Title: "Practice", SubjectID: "DS1", Year: 2024},
			{ID: "p-early", Title: "Midterm", Date: date(2024, 2, 1), SubjectID: "DS1", Year: 2024, FileURL: str("https://files/mid.pdf")},
			{ID: "p-other-year", Title: "Old Final", Date: date(2023, 6, 1), SubjectID: "DS1", Year: 2023},
			{ID: "p-other-subject", Title: "Optics", Date: date(2024, 3, 1), SubjectID: "PH1", Year: 2024},
		}},
		videos: &fakeVideoRepo{items: []entity.VideoLink{
			{ID: "v-trees", Title: "Trees", SubjectID: "DS1", Year: 2024, VideoURL: str("https://videos/trees")},
			{ID: "v-arrays", Title: "Arrays", SubjectID: "DS1", Year: 2024},
			{ID: "v-waves", Title: "Waves", SubjectID: "PH1", Year: 2024},
		}},
		progress: newFakeProgressRepo(),
		watches:  newFakeWatchRepo(),
	}
}

func (f *fixture) materials() MaterialsUsecase {
	return NewMaterialsUsecase(f.subjects, f.papers, f.videos, f.progress, f.watches, quietLogger())
}

func (f *fixture) progressUsecase() ProgressUsecase {
	return NewProgressUsecase(f.progress, f.watches)
}
