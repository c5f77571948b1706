package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/entity"
)

const sampleCatalog = `
subjects:
  - id: DS1
    name: Data Structures
    color: blue
    papers:
      - id: p1
        title: Final Exam
        year: 2024
        date: 2024-06-01
        pages: 12
        difficulty: Medium
        file_url: https://files/final.pdf
      - title: Practice Set
        year: 2024
    videos:
      - id: v1
        title: Trees
        year: 2024
        duration: "12:30"
        video_url: https://videos/trees
  - name: Physics
`

func TestLoadFlattensCatalog(t *testing.T) {
	c, err := Load(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(c.Subjects) != 2 || len(c.Papers) != 2 || len(c.Videos) != 1 {
		t.Fatalf("unexpected sizes: %d subjects, %d papers, %d videos", len(c.Subjects), len(c.Papers), len(c.Videos))
	}
	if c.Subjects[1].ID == "" {
		t.Fatal("expected a generated subject id")
	}

	final := c.Papers[0]
	if final.SubjectID != "DS1" || final.Date == nil || final.Date.Month() != 6 || *final.Pages != 12 || *final.Difficulty != "Medium" {
		t.Fatalf("unexpected paper %+v", final)
	}
	practice := c.Papers[1]
	if practice.ID == "" || practice.Date != nil || practice.FileURL != nil || practice.Difficulty != nil {
		t.Fatalf("unexpected optional fields %+v", practice)
	}
	if v := c.Videos[0]; v.SubjectID != "DS1" || *v.Duration != "12:30" || v.Instructor != nil {
		t.Fatalf("unexpected video %+v", v)
	}
}

func TestLoadRejectsInvalidCatalogs(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "no subjects", body: "subjects: []\n"},
		{name: "unknown key", body: "subjects:\n  - name: A\n    colour: red\n"},
		{name: "duplicate name ignoring case", body: "subjects:\n  - name: Physics\n  - name: physics\n"},
		{name: "missing name", body: "subjects:\n  - icon: x\n"},
		{name: "duplicate id", body: "subjects:\n  - id: S\n    name: A\n    papers:\n      - id: S\n        title: T\n        year: 2024\n"},
		{name: "bad year", body: "subjects:\n  - name: A\n    videos:\n      - title: T\n"},
		{name: "bad date", body: "subjects:\n  - name: A\n    papers:\n      - title: T\n        year: 2024\n        date: June\n"},
		{name: "missing title", body: "subjects:\n  - name: A\n    papers:\n      - year: 2024\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tc.body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

type recordingCatalogRepo struct {
	mu       sync.Mutex
	batches  []string
	subjects []entity.Subject
	papers   []entity.QuestionPaper
	videos   []entity.VideoLink
	err      error
}

func (r *recordingCatalogRepo) UpsertSubjects(ctx context.Context, items []entity.Subject) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, "subjects")
	r.subjects = append(r.subjects, items...)
	return len(items), ctx.Err()
}

func (r *recordingCatalogRepo) UpsertPapers(ctx context.Context, items []entity.QuestionPaper) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.batches = append(r.batches, "papers")
	r.papers = append(r.papers, items...)
	return len(items), ctx.Err()
}

func (r *recordingCatalogRepo) UpsertVideos(ctx context.Context, items []entity.VideoLink) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, "videos")
	r.videos = append(r.videos, items...)
	return len(items), ctx.Err()
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestImporterWritesInDependencyOrder(t *testing.T) {
	c, err := Load(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	repo := &recordingCatalogRepo{}
	sum, err := NewImporter(repo, WithBatchSize(1), WithLogger(quietLogger())).Import(context.Background(), c)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if sum != (Summary{Subjects: 2, Papers: 2, Videos: 1}) {
		t.Fatalf("unexpected summary %+v", sum)
	}
	want := []string{"subjects", "subjects", "papers", "papers", "videos"}
	if strings.Join(repo.batches, ",") != strings.Join(want, ",") {
		t.Fatalf("batches = %v, want %v", repo.batches, want)
	}
}

func TestImporterStopsOnError(t *testing.T) {
	c, err := Load(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	boom := errors.New("boom")
	repo := &recordingCatalogRepo{err: boom}
	sum, err := NewImporter(repo, WithLogger(quietLogger())).Import(context.Background(), c)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if sum.Subjects != 2 || sum.Papers != 0 || len(repo.videos) != 0 {
		t.Fatalf("unexpected partial import %+v", sum)
	}
}
