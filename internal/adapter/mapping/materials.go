package mapping

import (
	"github.com/samber/lo"

	examprepv1 "github.com/eslsoft/examprep/api/gen/examprep/v1"
	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/pkg/slug"
)

const dateLayout = "2006-01-02"

func ToPbSubject(s entity.Subject) *examprepv1.Subject {
	return &examprepv1.Subject{
		Id:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		Color:       s.Color,
		Slug:        slug.ToSlug(s.Name),
	}
}

func ToPbSubjects(items []entity.Subject) []*examprepv1.Subject {
	return lo.Map(items, func(s entity.Subject, _ int) *examprepv1.Subject { return ToPbSubject(s) })
}

func ToPbNotice(n entity.Notification) *examprepv1.Notice {
	return &examprepv1.Notice{Title: n.Title, Description: n.Description, Severity: string(n.Severity)}
}

func ToPbNotices(items []entity.Notification) []*examprepv1.Notice {
	if len(items) == 0 {
		return nil
	}
	return lo.Map(items, func(n entity.Notification, _ int) *examprepv1.Notice { return ToPbNotice(n) })
}

// ToPbMaterials flattens a snapshot and marks each item with its completion state.
// Absent optional attributes become empty strings or zero.
func ToPbMaterials(snap *entity.MaterialsSnapshot, year string) *examprepv1.GetMaterialsResponse {
	papers := lo.Map(snap.Papers, func(p entity.QuestionPaper, _ int) *examprepv1.QuestionPaper {
		out := &examprepv1.QuestionPaper{
			Id:             p.ID,
			Title:          p.Title,
			Pages:          lo.FromPtr(p.Pages),
			Difficulty:     lo.FromPtr(p.Difficulty),
			DifficultyTone: entity.DifficultyTone(p.Difficulty),
			FileUrl:        lo.FromPtr(p.FileURL),
			Completed:      snap.CompletedPaperIDs.Has(p.ID),
		}
		if p.Date != nil {
			out.Date = p.Date.Format(dateLayout)
		}
		return out
	})
	videos := lo.Map(snap.Videos, func(v entity.VideoLink, _ int) *examprepv1.VideoLink {
		return &examprepv1.VideoLink{
			Id:         v.ID,
			Title:      v.Title,
			Duration:   lo.FromPtr(v.Duration),
			Instructor: lo.FromPtr(v.Instructor),
			Views:      lo.FromPtr(v.Views),
			VideoUrl:   lo.FromPtr(v.VideoURL),
			Watched:    snap.WatchedVideoIDs.Has(v.ID),
		}
	})
	return &examprepv1.GetMaterialsResponse{
		Subject:           ToPbSubject(snap.Subject),
		Year:              snap.Year,
		Papers:            papers,
		Videos:            videos,
		CompletedPaperIds: snap.CompletedPaperIDs.Sorted(),
		WatchedVideoIds:   snap.WatchedVideoIDs.Sorted(),
		BackPath:          entity.SubjectsPath(year).Path,
		Notices:           ToPbNotices(snap.Warnings),
	}
}
