package entity

import "strings"

// Subject is a course area (e.g. "Data Structures") that groups papers and videos.
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Normalize trims the free-text fields before persistence.
func (s *Subject) Normalize() {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	s.Icon = strings.TrimSpace(s.Icon)
	s.Color = strings.TrimSpace(s.Color)
}
