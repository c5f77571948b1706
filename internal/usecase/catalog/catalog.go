package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/eslsoft/examprep/internal/entity"
)

const dateLayout = "2006-01-02"

var errEmptyCatalog = errors.New("catalog: no subjects")

// File is the on-disk catalog layout: subjects with their papers and videos nested.
type File struct {
	Subjects []SubjectEntry `yaml:"subjects"`
}

type SubjectEntry struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Icon        string       `yaml:"icon"`
	Color       string       `yaml:"color"`
	Papers      []PaperEntry `yaml:"papers"`
	Videos      []VideoEntry `yaml:"videos"`
}

type PaperEntry struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Year       int32  `yaml:"year"`
	Date       string `yaml:"date"`
	Pages      *int32 `yaml:"pages"`
	Difficulty string `yaml:"difficulty"`
	FileURL    string `yaml:"file_url"`
}

type VideoEntry struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Year       int32  `yaml:"year"`
	Duration   string `yaml:"duration"`
	Instructor string `yaml:"instructor"`
	Views      string `yaml:"views"`
	VideoURL   string `yaml:"video_url"`
}

// Catalog is a validated, flattened catalog ready to be written.
type Catalog struct {
	Subjects []entity.Subject
	Papers   []entity.QuestionPaper
	Videos   []entity.VideoLink
}

// Decode reads a YAML catalog. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &f, nil
}

// Load decodes and flattens a catalog in one step.
func Load(r io.Reader) (*Catalog, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return f.Flatten()
}

// Flatten validates the file and assigns random IDs to rows that have none.
// Subject names must be unique ignoring case because materials are resolved by name.
func (f *File) Flatten() (*Catalog, error) {
	if len(f.Subjects) == 0 {
		return nil, errEmptyCatalog
	}

	out := &Catalog{}
	names := make(map[string]int, len(f.Subjects))
	ids := make(map[string]string)
	claim := func(id, what string) error {
		if prev, ok := ids[id]; ok {
			return fmt.Errorf("catalog: duplicate id %q (%s and %s)", id, prev, what)
		}
		ids[id] = what
		return nil
	}

	for i, entry := range f.Subjects {
		subject := entity.Subject{
			ID:          orNewID(entry.ID),
			Name:        entry.Name,
			Description: entry.Description,
			Icon:        entry.Icon,
			Color:       entry.Color,
		}
		subject.Normalize()
		if subject.Name == "" {
			return nil, fmt.Errorf("catalog: subject #%d has no name", i+1)
		}
		key := strings.ToLower(subject.Name)
		if prev, ok := names[key]; ok {
			return nil, fmt.Errorf("catalog: subject %q duplicates subject #%d", subject.Name, prev+1)
		}
		names[key] = i
		if err := claim(subject.ID, "subject "+subject.Name); err != nil {
			return nil, err
		}
		out.Subjects = append(out.Subjects, subject)

		for j, p := range entry.Papers {
			paper, err := p.toEntity(subject.ID)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s paper #%d: %w", subject.Name, j+1, err)
			}
			if err := claim(paper.ID, "paper "+paper.Title); err != nil {
				return nil, err
			}
			out.Papers = append(out.Papers, paper)
		}
		for j, v := range entry.Videos {
			video, err := v.toEntity(subject.ID)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s video #%d: %w", subject.Name, j+1, err)
			}
			if err := claim(video.ID, "video "+video.Title); err != nil {
				return nil, err
			}
			out.Videos = append(out.Videos, video)
		}
	}
	return out, nil
}

func (p PaperEntry) toEntity(subjectID string) (entity.QuestionPaper, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return entity.QuestionPaper{}, errors.New("title is required")
	}
	if p.Year <= 0 {
		return entity.QuestionPaper{}, fmt.Errorf("%w: %d", entity.ErrInvalidYear, p.Year)
	}
	paper := entity.QuestionPaper{
		ID:         orNewID(p.ID),
		Title:      title,
		Pages:      p.Pages,
		Difficulty: optional(p.Difficulty),
		FileURL:    optional(p.FileURL),
		SubjectID:  subjectID,
		Year:       p.Year,
	}
	if raw := strings.TrimSpace(p.Date); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return entity.QuestionPaper{}, fmt.Errorf("parse date %q: %w", raw, err)
		}
		paper.Date = &d
	}
	return paper, nil
}

func (v VideoEntry) toEntity(subjectID string) (entity.VideoLink, error) {
	title := strings.TrimSpace(v.Title)
	if title == "" {
		return entity.VideoLink{}, errors.New("title is required")
	}
	if v.Year <= 0 {
		return entity.VideoLink{}, fmt.Errorf("%w: %d", entity.ErrInvalidYear, v.Year)
	}
	return entity.VideoLink{
		ID:         orNewID(v.ID),
		Title:      title,
		Duration:   optional(v.Duration),
		Instructor: optional(v.Instructor),
		Views:      optional(v.Views),
		VideoURL:   optional(v.VideoURL),
		SubjectID:  subjectID,
		Year:       v.Year,
	}, nil
}

func orNewID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
