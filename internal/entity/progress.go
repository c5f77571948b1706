package entity

import "time"

// ProgressRecord marks a question paper as completed by a user.
// At most one record exists per (UserID, PaperID).
type ProgressRecord struct {
	UserID      string    `json:"user_id"`
	PaperID     string    `json:"paper_id"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at"`
}

// WatchRecord marks a video as watched by a user.
// At most one record exists per (UserID, VideoID).
type WatchRecord struct {
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	WatchedAt time.Time `json:"watched_at"`
}
