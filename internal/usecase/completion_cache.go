package usecase

import (
	"sync/atomic"

	"github.com/eslsoft/examprep/internal/entity"
)

type completionState struct {
	completed entity.IDSet
	watched   entity.IDSet
}

// CompletionCache holds the completed-paper and watched-video sets of one user session.
// State is replaced wholesale through compare-and-swap; readers always observe a fully
// formed previous or next state and concurrent additions never erase each other.
type CompletionCache struct {
	state atomic.Pointer[completionState]
}

// NewCompletionCache seeds the cache with confirmed remote state.
func NewCompletionCache(completed, watched entity.IDSet) *CompletionCache {
	c := &CompletionCache{}
	c.state.Store(&completionState{completed: completed, watched: watched})
	return c
}

// Snapshot returns the current sets.
func (c *CompletionCache) Snapshot() (completed, watched entity.IDSet) {
	s := c.load()
	return s.completed, s.watched
}

// CompletedPapers returns the current completed-paper set.
func (c *CompletionCache) CompletedPapers() entity.IDSet { return c.load().completed }

// WatchedVideos returns the current watched-video set.
func (c *CompletionCache) WatchedVideos() entity.IDSet { return c.load().watched }

// AddCompletedPaper installs completed ∪ {id} and returns the resulting set.
func (c *CompletionCache) AddCompletedPaper(id string) entity.IDSet {
	return c.update(func(s completionState) completionState {
		s.completed = s.completed.WithAdded(id)
		return s
	}).completed
}

// AddWatchedVideo installs watched ∪ {id} and returns the resulting set.
func (c *CompletionCache) AddWatchedVideo(id string) entity.IDSet {
	return c.update(func(s completionState) completionState {
		s.watched = s.watched.WithAdded(id)
		return s
	}).watched
}

// Merge unions freshly fetched remote state into the cache. Entries already present,
// including optimistic ones, are kept.
func (c *CompletionCache) Merge(completed, watched entity.IDSet) {
	c.update(func(s completionState) completionState {
		s.completed = s.completed.Union(completed)
		s.watched = s.watched.Union(watched)
		return s
	})
}

func (c *CompletionCache) load() completionState {
	if s := c.state.Load(); s != nil {
		return *s
	}
	return completionState{}
}

func (c *CompletionCache) update(fn func(completionState) completionState) completionState {
	for {
		prev := c.state.Load()
		var base completionState
		if prev != nil {
			base = *prev
		}
		next := fn(base)
		if c.state.CompareAndSwap(prev, &next) {
			return next
		}
	}
}
