package entity

import (
	"strings"
	"time"
)

// Difficulty labels used by the content pipeline for question papers.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// QuestionPaper is a past exam paper scoped to one subject and one academic year.
type QuestionPaper struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Date       *time.Time `json:"date,omitempty"`
	Pages      *int32     `json:"pages,omitempty"`
	Difficulty *string    `json:"difficulty,omitempty"`
	FileURL    *string    `json:"file_url,omitempty"`
	SubjectID  string     `json:"subject_id"`
	Year       int32      `json:"year"`
}

// VideoLink is an instructional video scoped the same way as QuestionPaper.
type VideoLink struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Duration   *string `json:"duration,omitempty"`
	Instructor *string `json:"instructor,omitempty"`
	Views      *string `json:"views,omitempty"`
	VideoURL   *string `json:"video_url,omitempty"`
	SubjectID  string  `json:"subject_id"`
	Year       int32   `json:"year"`
}

// InScope reports whether the paper belongs to the given subject and year.
func (p QuestionPaper) InScope(subjectID string, year int32) bool {
	return p.SubjectID == subjectID && p.Year == year
}

// InScope reports whether the video belongs to the given subject and year.
func (v VideoLink) InScope(subjectID string, year int32) bool {
	return v.SubjectID == subjectID && v.Year == year
}

// HasFile reports whether the paper can be opened.
func (p QuestionPaper) HasFile() bool {
	return p.FileURL != nil && strings.TrimSpace(*p.FileURL) != ""
}

// HasVideo reports whether the video can be opened.
func (v VideoLink) HasVideo() bool {
	return v.VideoURL != nil && strings.TrimSpace(*v.VideoURL) != ""
}

// DifficultyTone maps a difficulty label to the badge tone shown next to a paper.
// Unknown labels fall back to the "hard" tone, absent labels to none.
func DifficultyTone(difficulty *string) string {
	if difficulty == nil || *difficulty == "" {
		return ""
	}
	switch *difficulty {
	case DifficultyEasy:
		return "green"
	case DifficultyMedium:
		return "yellow"
	default:
		return "red"
	}
}
