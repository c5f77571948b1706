package usecase

import (
	"fmt"
	"sync"
	"testing"

	"github.com/eslsoft/examprep/internal/entity"
)

func TestCompletionCacheAddsAreCopyOnWrite(t *testing.T) {
	cache := NewCompletionCache(entity.NewIDSet("p1"), entity.IDSet{})
	before := cache.CompletedPapers()

	after := cache.AddCompletedPaper("p2")
	if before.Has("p2") {
		t.Fatal("earlier snapshot observed a later addition")
	}
	if !after.Has("p1") || !after.Has("p2") {
		t.Fatalf("expected p1 and p2, got %v", after.Sorted())
	}
	if cache.WatchedVideos().Len() != 0 {
		t.Fatal("paper addition leaked into watched set")
	}
}

func TestCompletionCacheConcurrentAdditionsAreKept(t *testing.T) {
	cache := NewCompletionCache(entity.IDSet{}, entity.IDSet{})

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			cache.AddCompletedPaper(fmt.Sprintf("p%d", i))
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.AddWatchedVideo(fmt.Sprintf("v%d", i))
		}(i)
	}
	wg.Wait()

	completed, watched := cache.Snapshot()
	if completed.Len() != 64 || watched.Len() != 64 {
		t.Fatalf("lost additions: completed=%d watched=%d", completed.Len(), watched.Len())
	}
}

func TestCompletionCacheMergeKeepsOptimisticEntries(t *testing.T) {
	cache := NewCompletionCache(entity.IDSet{}, entity.IDSet{})
	cache.AddCompletedPaper("optimistic")

	cache.Merge(entity.NewIDSet("confirmed"), entity.NewIDSet("v1"))

	completed, watched := cache.Snapshot()
	if !completed.Has("optimistic") || !completed.Has("confirmed") {
		t.Fatalf("merge dropped entries: %v", completed.Sorted())
	}
	if !watched.Has("v1") {
		t.Fatalf("merge dropped watched entries: %v", watched.Sorted())
	}
}

func TestCompletionCacheZeroValue(t *testing.T) {
	var cache CompletionCache
	if cache.CompletedPapers().Len() != 0 {
		t.Fatal("zero cache should be empty")
	}
	if !cache.AddWatchedVideo("v").Has("v") {
		t.Fatal("zero cache should accept additions")
	}
}
