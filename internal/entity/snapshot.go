package entity

// MaterialsSnapshot is the aggregated, read-only result of one materials load.
// It is built fresh per navigation and owned by the caller.
type MaterialsSnapshot struct {
	Subject           Subject
	Year              int32
	Papers            []QuestionPaper
	Videos            []VideoLink
	CompletedPaperIDs IDSet
	WatchedVideoIDs   IDSet
	Warnings          []Notification
}

// Degraded reports whether an optional fetch failed while building the snapshot.
func (s *MaterialsSnapshot) Degraded() bool {
	return s != nil && len(s.Warnings) > 0
}

// WithProgress returns a shallow copy carrying the given completion sets.
func (s MaterialsSnapshot) WithProgress(completed, watched IDSet) MaterialsSnapshot {
	s.CompletedPaperIDs = completed
	s.WatchedVideoIDs = watched
	return s
}
