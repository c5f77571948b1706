package entity

import (
	"errors"
	"fmt"
)

// Domain errors for materials browsing and progress tracking.
var (
	ErrNotFound          = errors.New("not found")
	ErrSubjectNotFound   = fmt.Errorf("subject %w", ErrNotFound)
	ErrAmbiguousSubject  = fmt.Errorf("subject name is ambiguous: %w", ErrNotFound)
	ErrInvalidYear       = errors.New("invalid academic year")
	ErrInvalidSlug       = errors.New("invalid subject slug")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidMaterialID = errors.New("invalid material ID")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrStaleNavigation   = errors.New("navigation superseded by a newer request")
	ErrMissingFileURL    = errors.New("paper has no file URL")
	ErrMissingVideoURL   = errors.New("video has no URL")
)

// RemoteError reports a failed required fetch or a failed upsert against the store.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// NewRemoteError wraps err unless it is nil.
func NewRemoteError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Op: op, Err: err}
}

// IsRemote reports whether err carries a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// DegradedFetch describes an optional fetch that failed and was replaced by an empty result.
// It is never returned as an error from a load; it becomes a warning on the snapshot.
type DegradedFetch struct {
	Resource string
	Err      error
}

func (d *DegradedFetch) Error() string {
	return fmt.Sprintf("%s unavailable: %v", d.Resource, d.Err)
}

func (d *DegradedFetch) Unwrap() error { return d.Err }

// Notification converts the degradation into a user-facing warning.
func (d *DegradedFetch) Notification() Notification {
	return InfoNotification(fmt.Sprintf("Could not load %s", d.Resource), d.Err.Error())
}
