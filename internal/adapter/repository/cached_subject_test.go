package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/platform/cache"
	"github.com/eslsoft/examprep/internal/repository"
)

// memoryCache stores JSON like the redis-backed cache does.
type memoryCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	getErr  error
	purgeFn func(prefix string) error
	purges  []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dst any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return c.getErr
	}
	raw, ok := c.values[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(raw, dst)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = raw
	return nil
}

func (c *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purges = append(c.purges, prefix)
	if c.purgeFn != nil {
		if err := c.purgeFn(prefix); err != nil {
			return err
		}
	}
	for k := range c.values {
		if strings.HasPrefix(k, prefix) {
			delete(c.values, k)
		}
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}

type countingSubjects struct {
	subjects []entity.Subject
	err      error
	calls    int
}

func (r *countingSubjects) FindByName(context.Context, string) ([]entity.Subject, error) {
	r.calls++
	return r.subjects, r.err
}

func (r *countingSubjects) List(context.Context, *repository.ListSubjectQuery) ([]entity.Subject, error) {
	return r.subjects, nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCachedSubjectRepositoryHitAndMiss(t *testing.T) {
	ctx := context.Background()
	next := &countingSubjects{subjects: []entity.Subject{{ID: "DS1", Name: "Data Structures"}}}
	c := newMemoryCache()
	repo := newCachedSubjectRepository(next, c, time.Minute, quietLogger())

	got, err := repo.FindByName(ctx, "Data Structures")
	if err != nil || len(got) != 1 || got[0].ID != "DS1" {
		t.Fatalf("miss: got %v, %v", got, err)
	}
	if !c.has("examprep:subject:name:data structures") {
		t.Fatalf("miss did not populate the cache: %v", c.values)
	}

	got, err = repo.FindByName(ctx, "  data STRUCTURES ")
	if err != nil || len(got) != 1 || got[0].ID != "DS1" {
		t.Fatalf("hit: got %v, %v", got, err)
	}
	if next.calls != 1 {
		t.Fatalf("hit reached the database: %d calls", next.calls)
	}
}

func TestCachedSubjectRepositorySkipsEmptyAndFailedLookups(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()

	empty := &countingSubjects{}
	if got, err := newCachedSubjectRepository(empty, c, time.Minute, quietLogger()).FindByName(ctx, "Chemistry"); err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
	if c.has("examprep:subject:name:chemistry") {
		t.Fatal("an unknown subject must not be cached")
	}

	broken := &countingSubjects{err: errors.New("db down")}
	if _, err := newCachedSubjectRepository(broken, c, time.Minute, quietLogger()).FindByName(ctx, "Physics"); err == nil {
		t.Fatal("expected the database error")
	}
	if c.has("examprep:subject:name:physics") {
		t.Fatal("a failed lookup must not be cached")
	}
}

func TestCachedSubjectRepositoryFallsThroughOnCacheError(t *testing.T) {
	next := &countingSubjects{subjects: []entity.Subject{{ID: "PH1", Name: "Physics"}}}
	c := newMemoryCache()
	c.getErr = errors.New("connection refused")
	repo := newCachedSubjectRepository(next, c, time.Minute, quietLogger())

	for i := 0; i < 2; i++ {
		got, err := repo.FindByName(context.Background(), "Physics")
		if err != nil || len(got) != 1 {
			t.Fatalf("call %d: got %v, %v", i, got, err)
		}
	}
	if next.calls != 2 {
		t.Fatalf("unreadable cache must fall through every time, got %d calls", next.calls)
	}
}

func TestNilCacheLeavesRepositoriesUnwrapped(t *testing.T) {
	next := &countingSubjects{}
	if got := NewCachedSubjectRepository(next, nil, time.Minute, quietLogger()); got != repository.SubjectRepository(next) {
		t.Fatalf("expected the inner subject repository, got %T", got)
	}
	catalog := &recordingCatalog{}
	if got := NewInvalidatingCatalogRepository(catalog, nil, quietLogger()); got != repository.CatalogRepository(catalog) {
		t.Fatalf("expected the inner catalog repository, got %T", got)
	}
}

type recordingCatalog struct {
	subjects int
	err      error
}

func (r *recordingCatalog) UpsertSubjects(_ context.Context, items []entity.Subject) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.subjects += len(items)
	return len(items), nil
}

func (r *recordingCatalog) UpsertPapers(_ context.Context, items []entity.QuestionPaper) (int, error) {
	return len(items), nil
}

func (r *recordingCatalog) UpsertVideos(_ context.Context, items []entity.VideoLink) (int, error) {
	return len(items), nil
}

func TestInvalidatingCatalogRepositoryPurgesOnlyAfterSubjectWrites(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()
	repo := newInvalidatingCatalogRepository(&recordingCatalog{}, c, quietLogger())

	if _, err := repo.UpsertPapers(ctx, []entity.QuestionPaper{{ID: "p1"}}); err != nil {
		t.Fatalf("UpsertPapers: %v", err)
	}
	if _, err := repo.UpsertSubjects(ctx, nil); err != nil {
		t.Fatalf("UpsertSubjects(nil): %v", err)
	}
	if len(c.purges) != 0 {
		t.Fatalf("no subject was written, purges = %v", c.purges)
	}

	if _, err := repo.UpsertSubjects(ctx, []entity.Subject{{ID: "PH1", Name: "Physics"}}); err != nil {
		t.Fatalf("UpsertSubjects: %v", err)
	}
	if len(c.purges) != 1 || c.purges[0] != subjectNameKeyPrefix {
		t.Fatalf("purges = %v", c.purges)
	}

	failing := newInvalidatingCatalogRepository(&recordingCatalog{err: errors.New("tx aborted")}, c, quietLogger())
	if _, err := failing.UpsertSubjects(ctx, []entity.Subject{{ID: "PH1", Name: "Physics"}}); err == nil {
		t.Fatal("expected the write error")
	}
	if len(c.purges) != 1 {
		t.Fatalf("a failed write must not purge, purges = %v", c.purges)
	}
}

func TestInvalidatingCatalogRepositoryReportsPurgeFailure(t *testing.T) {
	c := newMemoryCache()
	c.purgeFn = func(string) error { return errors.New("READONLY") }
	repo := newInvalidatingCatalogRepository(&recordingCatalog{}, c, quietLogger())

	n, err := repo.UpsertSubjects(context.Background(), []entity.Subject{{ID: "PH1", Name: "Physics"}})
	if err == nil || n != 1 {
		t.Fatalf("got n=%d err=%v, want the written count and an error", n, err)
	}
}

func TestImportedDuplicateNameIsNotHiddenByCache(t *testing.T) {
	ctx := context.Background()
	drv := openTestDriver(t)
	c := newMemoryCache()
	writer := newInvalidatingCatalogRepository(NewCatalogRepository(drv), c, quietLogger())
	subjects := newCachedSubjectRepository(NewSubjectRepository(drv), c, time.Hour, quietLogger())

	if _, err := writer.UpsertSubjects(ctx, []entity.Subject{{ID: "DS1", Name: "Data Structures"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := subjects.FindByName(ctx, "Data Structures")
	if err != nil || len(got) != 1 {
		t.Fatalf("first lookup: got %v, %v", got, err)
	}

	if _, err := writer.UpsertSubjects(ctx, []entity.Subject{{ID: "DS2", Name: "data structures"}}); err != nil {
		t.Fatalf("import duplicate: %v", err)
	}
	got, err = subjects.FindByName(ctx, "Data Structures")
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("duplicate name hidden by the cache: got %v", got)
	}
}
