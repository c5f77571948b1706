package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/repository"
	"github.com/eslsoft/examprep/pkg/slug"
)

// Remote operation names carried by entity.RemoteError.
const (
	OpResolveSubject = "resolve subject"
	OpListSubjects   = "list subjects"
	OpLoadPapers     = "load question papers"
	OpLoadVideos     = "load video links"
	OpMarkComplete   = "mark paper complete"
	OpMarkWatched    = "mark video watched"
)

// Optional resources that degrade to an empty set when unavailable.
const (
	ResourceProgress     = "progress"
	ResourceWatchHistory = "watch history"
)

// MaterialsUsecase resolves a subject and aggregates its materials with the caller's progress.
type MaterialsUsecase interface {
	FetchMaterials(ctx context.Context, year, subjectSlug, userID string) (*entity.MaterialsSnapshot, error)
	ListSubjects(ctx context.Context, query *repository.ListSubjectQuery) ([]entity.Subject, error)
}

// NewMaterialsUsecase wires the read-side repositories.
func NewMaterialsUsecase(
	subjects repository.SubjectRepository,
	papers repository.QuestionPaperRepository,
	videos repository.VideoLinkRepository,
	progress repository.ProgressRepository,
	watches repository.WatchHistoryRepository,
	logger logrus.FieldLogger,
) MaterialsUsecase {
	return &materialsUsecase{
		subjects: subjects,
		papers:   papers,
		videos:   videos,
		progress: progress,
		watches:  watches,
		logger:   logger,
	}
}

type materialsUsecase struct {
	subjects repository.SubjectRepository
	papers   repository.QuestionPaperRepository
	videos   repository.VideoLinkRepository
	progress repository.ProgressRepository
	watches  repository.WatchHistoryRepository
	logger   logrus.FieldLogger
}

// ParseYear validates the academic year router parameter.
func ParseYear(raw string) (int32, error) {
	year, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%w: %q", entity.ErrInvalidYear, raw)
	}
	return int32(year), nil
}

func (u *materialsUsecase) FetchMaterials(ctx context.Context, year, subjectSlug, userID string) (*entity.MaterialsSnapshot, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, entity.ErrInvalidUserID
	}
	yr, err := ParseYear(year)
	if err != nil {
		return nil, err
	}

	subject, err := u.resolveSubject(ctx, subjectSlug)
	if err != nil {
		return nil, err
	}

	var (
		papers      []entity.QuestionPaper
		videos      []entity.VideoLink
		completed   []string
		watched     []string
		progressErr error
		watchErr    error
	)

	// Each goroutine writes only its own variables; Wait orders those writes before the reads below.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.papers.ListBySubjectYear(gctx, subject.ID, yr)
		if err != nil {
			return entity.NewRemoteError(OpLoadPapers, err)
		}
		papers = items
		return nil
	})
	g.Go(func() error {
		items, err := u.videos.ListBySubjectYear(gctx, subject.ID, yr)
		if err != nil {
			return entity.NewRemoteError(OpLoadVideos, err)
		}
		videos = items
		return nil
	})
	g.Go(func() error {
		completed, progressErr = u.progress.ListCompletedPaperIDs(gctx, userID)
		return nil
	})
	g.Go(func() error {
		watched, watchErr = u.watches.ListWatchedVideoIDs(gctx, userID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := u.logger.WithFields(logrus.Fields{"subject_id": subject.ID, "year": yr, "user_id": userID})
	snapshot := &entity.MaterialsSnapshot{
		Subject: subject,
		Year:    yr,
		Papers:  scopePapers(papers, subject.ID, yr, log),
		Videos:  scopeVideos(videos, subject.ID, yr, log),
	}
	sortPapers(snapshot.Papers)
	sortVideos(snapshot.Videos)

	for _, degraded := range []*entity.DegradedFetch{
		degrade(ResourceProgress, progressErr),
		degrade(ResourceWatchHistory, watchErr),
	} {
		if degraded == nil {
			continue
		}
		log.WithError(degraded.Err).WithField("resource", degraded.Resource).Warn("optional fetch failed, continuing without it")
		snapshot.Warnings = append(snapshot.Warnings, degraded.Notification())
	}
	if progressErr == nil {
		snapshot.CompletedPaperIDs = entity.NewIDSet(completed...)
	}
	if watchErr == nil {
		snapshot.WatchedVideoIDs = entity.NewIDSet(watched...)
	}

	return snapshot, nil
}

func (u *materialsUsecase) ListSubjects(ctx context.Context, query *repository.ListSubjectQuery) ([]entity.Subject, error) {
	if query == nil {
		query = &repository.ListSubjectQuery{}
	}
	items, err := u.subjects.List(ctx, query)
	if errors.Is(err, entity.ErrInvalidFilter) {
		return nil, err
	}
	if err != nil {
		return nil, entity.NewRemoteError(OpListSubjects, err)
	}
	return items, nil
}

func (u *materialsUsecase) resolveSubject(ctx context.Context, subjectSlug string) (entity.Subject, error) {
	name := slug.ToDisplayName(subjectSlug)
	if name == "" {
		return entity.Subject{}, fmt.Errorf("%w: %q", entity.ErrInvalidSlug, subjectSlug)
	}

	matches, err := u.subjects.FindByName(ctx, name)
	if err != nil {
		return entity.Subject{}, entity.NewRemoteError(OpResolveSubject, err)
	}
	switch len(matches) {
	case 0:
		return entity.Subject{}, fmt.Errorf("%w: %q", entity.ErrSubjectNotFound, name)
	case 1:
		return matches[0], nil
	default:
		ids := lo.Map(matches, func(s entity.Subject, _ int) string { return s.ID })
		return entity.Subject{}, fmt.Errorf("%w: %q matches %s", entity.ErrAmbiguousSubject, name, strings.Join(ids, ", "))
	}
}

func degrade(resource string, err error) *entity.DegradedFetch {
	if err == nil {
		return nil
	}
	return &entity.DegradedFetch{Resource: resource, Err: err}
}

func scopePapers(items []entity.QuestionPaper, subjectID string, year int32, log logrus.FieldLogger) []entity.QuestionPaper {
	kept := lo.Filter(items, func(p entity.QuestionPaper, _ int) bool { return p.InScope(subjectID, year) })
	if dropped := len(items) - len(kept); dropped > 0 {
		log.WithField("dropped", dropped).Warn("store returned question papers outside the requested subject/year")
	}
	return kept
}

func scopeVideos(items []entity.VideoLink, subjectID string, year int32, log logrus.FieldLogger) []entity.VideoLink {
	kept := lo.Filter(items, func(v entity.VideoLink, _ int) bool { return v.InScope(subjectID, year) })
	if dropped := len(items) - len(kept); dropped > 0 {
		log.WithField("dropped", dropped).Warn("store returned video links outside the requested subject/year")
	}
	return kept
}

// sortPapers orders by date ascending; undated papers go last, ties fall back to title then ID.
func sortPapers(papers []entity.QuestionPaper) {
	sort.SliceStable(papers, func(i, j int) bool {
		a, b := papers[i], papers[j]
		switch {
		case a.Date == nil && b.Date != nil:
			return false
		case a.Date != nil && b.Date == nil:
			return true
		case a.Date != nil && b.Date != nil && !a.Date.Equal(*b.Date):
			return a.Date.Before(*b.Date)
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
}

func sortVideos(videos []entity.VideoLink) {
	sort.SliceStable(videos, func(i, j int) bool {
		if videos[i].Title != videos[j].Title {
			return videos[i].Title < videos[j].Title
		}
		return videos[i].ID < videos[j].ID
	})
}
