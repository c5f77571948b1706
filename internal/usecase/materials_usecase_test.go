package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/examprep/internal/entity"
)

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestFetchMaterialsResolvesSubjectAndScopes(t *testing.T) {
	f := newFixture()
	snap, err := f.materials().FetchMaterials(context.Background(), "2024", "data-structures", "u1")
	if err != nil {
		t.Fatalf("FetchMaterials returned error: %v", err)
	}
	if snap.Subject.ID != "DS1" {
		t.Fatalf("expected subject DS1, got %+v", snap.Subject)
	}
	for _, p := range snap.Papers {
		if p.SubjectID != "DS1" || p.Year != 2024 {
			t.Fatalf("paper out of scope: %+v", p)
		}
	}
	for _, v := range snap.Videos {
		if v.SubjectID != "DS1" || v.Year != 2024 {
			t.Fatalf("video out of scope: %+v", v)
		}
	}

	gotPapers := lo.Map(snap.Papers, func(p entity.QuestionPaper, _ int) string { return p.ID })
	if want := []string{"p-early", "p-late", "p-undated"}; !reflect.DeepEqual(gotPapers, want) {
		t.Fatalf("papers order = %v, want %v", gotPapers, want)
	}
	gotVideos := lo.Map(snap.Videos, func(v entity.VideoLink, _ int) string { return v.ID })
	if want := []string{"v-arrays", "v-trees"}; !reflect.DeepEqual(gotVideos, want) {
		t.Fatalf("videos order = %v, want %v", gotVideos, want)
	}
	if snap.Degraded() {
		t.Fatalf("unexpected warnings: %+v", snap.Warnings)
	}
}

func TestFetchMaterialsMergesProgress(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if err := f.progress.Upsert(ctx, entity.ProgressRecord{UserID: "u1", PaperID: "p-early", Completed: true}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if err := f.progress.Upsert(ctx, entity.ProgressRecord{UserID: "u1", PaperID: "p-late", Completed: false}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if err := f.progress.Upsert(ctx, entity.ProgressRecord{UserID: "u2", PaperID: "p-undated", Completed: true}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if err := f.watches.Upsert(ctx, entity.WatchRecord{UserID: "u1", VideoID: "v-trees"}); err != nil {
		t.Fatalf("seed watches: %v", err)
	}

	snap, err := f.materials().FetchMaterials(ctx, "2024", "data-structures", "u1")
	if err != nil {
		t.Fatalf("FetchMaterials returned error: %v", err)
	}
	if got := snap.CompletedPaperIDs.Sorted(); !reflect.DeepEqual(got, []string{"p-early"}) {
		t.Fatalf("completed = %v", got)
	}
	if got := snap.WatchedVideoIDs.Sorted(); !reflect.DeepEqual(got, []string{"v-trees"}) {
		t.Fatalf("watched = %v", got)
	}
}

func TestFetchMaterialsSubjectNotFoundStopsEarly(t *testing.T) {
	f := newFixture()
	_, err := f.materials().FetchMaterials(context.Background(), "2024", "nonexistent-subject", "u1")
	if !errors.Is(err, entity.ErrSubjectNotFound) || !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
	if n := f.papers.calls.Load() + f.videos.calls.Load() + f.progress.calls.Load() + f.watches.calls.Load(); n != 0 {
		t.Fatalf("expected no resource fetches after failed resolution, got %d", n)
	}
}

func TestFetchMaterialsAmbiguousSubject(t *testing.T) {
	f := newFixture()
	f.subjects.items = append(f.subjects.items, entity.Subject{ID: "DS2", Name: "data structures"})

	_, err := f.materials().FetchMaterials(context.Background(), "2024", "data-structures", "u1")
	if !errors.Is(err, entity.ErrAmbiguousSubject) {
		t.Fatalf("expected ErrAmbiguousSubject, got %v", err)
	}
	if f.papers.calls.Load() != 0 {
		t.Fatal("papers must not be fetched for an ambiguous subject")
	}
}

func TestFetchMaterialsRequiredFailures(t *testing.T) {
	boom := errors.New("connection reset")
	tests := []struct {
		name   string
		mutate func(*fixture)
		op     string
	}{
		{"subject", func(f *fixture) { f.subjects.err = boom }, OpResolveSubject},
		{"papers", func(f *fixture) { f.papers.err = boom }, OpLoadPapers},
		{"videos", func(f *fixture) { f.videos.err = boom }, OpLoadVideos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.mutate(f)
			snap, err := f.materials().FetchMaterials(context.Background(), "2024", "data-structures", "u1")
			if snap != nil {
				t.Fatalf("expected no snapshot, got %+v", snap)
			}
			var remote *entity.RemoteError
			if !errors.As(err, &remote) || remote.Op != tt.op {
				t.Fatalf("expected RemoteError %q, got %v", tt.op, err)
			}
			if !errors.Is(err, boom) {
				t.Fatalf("expected cause to be preserved, got %v", err)
			}
		})
	}
}

func TestFetchMaterialsOptionalFailuresDegrade(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if err := f.watches.Upsert(ctx, entity.WatchRecord{UserID: "u1", VideoID: "v-trees"}); err != nil {
		t.Fatalf("seed watches: %v", err)
	}
	f.progress.listErr = errors.New("progress table locked")

	snap, err := f.materials().FetchMaterials(ctx, "2024", "data-structures", "u1")
	if err != nil {
		t.Fatalf("optional failure must not abort the load: %v", err)
	}
	if snap.CompletedPaperIDs.Len() != 0 {
		t.Fatalf("expected empty completed set, got %v", snap.CompletedPaperIDs.Sorted())
	}
	if !snap.WatchedVideoIDs.Has("v-trees") {
		t.Fatal("watch history should still be loaded")
	}
	if len(snap.Warnings) != 1 || snap.Warnings[0].Title != "Could not load progress" {
		t.Fatalf("expected one progress warning, got %+v", snap.Warnings)
	}
	if len(snap.Papers) == 0 {
		t.Fatal("papers should still be loaded")
	}

	f.watches.listErr = errors.New("timeout")
	snap, err = f.materials().FetchMaterials(ctx, "2024", "data-structures", "u1")
	if err != nil {
		t.Fatalf("FetchMaterials returned error: %v", err)
	}
	if len(snap.Warnings) != 2 || snap.WatchedVideoIDs.Len() != 0 {
		t.Fatalf("expected both optional fetches degraded, got %+v", snap)
	}
}

func TestFetchMaterialsDropsLeakedRows(t *testing.T) {
	f := newFixture()
	f.videos.leak = true

	snap, err := f.materials().FetchMaterials(context.Background(), "2024", "data-structures", "u1")
	if err != nil {
		t.Fatalf("FetchMaterials returned error: %v", err)
	}
	for _, v := range snap.Videos {
		if v.SubjectID != "DS1" {
			t.Fatalf("leaked video %+v", v)
		}
	}
	if len(snap.Videos) != 2 {
		t.Fatalf("expected 2 scoped videos, got %d", len(snap.Videos))
	}
}

func TestFetchMaterialsValidatesInput(t *testing.T) {
	uc := newFixture().materials()
	ctx := context.Background()

	if _, err := uc.FetchMaterials(ctx, "2024", "data-structures", " "); !errors.Is(err, entity.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	for _, year := range []string{"", "twenty", "-1", "0"} {
		if _, err := uc.FetchMaterials(ctx, year, "data-structures", "u1"); !errors.Is(err, entity.ErrInvalidYear) {
			t.Fatalf("year %q: expected ErrInvalidYear, got %v", year, err)
		}
	}
	if _, err := uc.FetchMaterials(ctx, "2024", "---", "u1"); !errors.Is(err, entity.ErrInvalidSlug) {
		t.Fatalf("expected ErrInvalidSlug, got %v", err)
	}
}

func TestListSubjects(t *testing.T) {
	f := newFixture()
	items, err := f.materials().ListSubjects(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListSubjects returned error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Data Structures" {
		t.Fatalf("unexpected subjects %+v", items)
	}

	f.subjects.err = errors.New("down")
	if _, err := f.materials().ListSubjects(context.Background(), nil); !entity.IsRemote(err) {
		t.Fatalf("expected remote error, got %v", err)
	}
}
