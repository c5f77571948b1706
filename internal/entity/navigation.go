package entity

import (
	"fmt"
	"net/url"
)

// HomePath is where unauthenticated users are sent.
const HomePath = "/"

// Navigation is a routing intent emitted by the core; the router performs it.
type Navigation struct {
	Path string `json:"path"`
}

// SubjectsPath is the subject picker for an academic year.
func SubjectsPath(year string) Navigation {
	return Navigation{Path: fmt.Sprintf("/subjects/%s", url.PathEscape(year))}
}

// MaterialsPath is the materials page of one subject in one year.
func MaterialsPath(year, subjectSlug string) Navigation {
	return Navigation{Path: fmt.Sprintf("/materials/%s/%s", url.PathEscape(year), url.PathEscape(subjectSlug))}
}
