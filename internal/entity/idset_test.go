package entity

import (
	"reflect"
	"testing"
)

func TestIDSetWithAddedIsCopyOnWrite(t *testing.T) {
	base := NewIDSet("p1")
	next := base.WithAdded("p2")

	if base.Has("p2") {
		t.Fatal("WithAdded mutated the receiver")
	}
	if !next.Has("p1") || !next.Has("p2") {
		t.Fatalf("expected union, got %v", next.Sorted())
	}
}

func TestIDSetIgnoresDuplicatesAndEmpty(t *testing.T) {
	s := NewIDSet("a", "a", "", "b").WithAdded("a").WithAdded("")
	if s.Len() != 2 {
		t.Fatalf("expected 2 members, got %d (%v)", s.Len(), s.Sorted())
	}
}

func TestIDSetZeroValue(t *testing.T) {
	var s IDSet
	if s.Has("x") || s.Len() != 0 {
		t.Fatal("zero value should be empty")
	}
	if got := s.WithAdded("x").Sorted(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("unexpected members %v", got)
	}
}

func TestIDSetUnion(t *testing.T) {
	a := NewIDSet("1", "2")
	b := NewIDSet("2", "3")
	if got := a.Union(b).Sorted(); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("unexpected union %v", got)
	}
	if a.Len() != 2 || b.Len() != 2 {
		t.Fatal("union mutated an operand")
	}
}

func TestDifficultyTone(t *testing.T) {
	str := func(s string) *string { return &s }
	cases := []struct {
		in   *string
		want string
	}{
		{nil, ""},
		{str("Easy"), "green"},
		{str("Medium"), "yellow"},
		{str("Hard"), "red"},
		{str("Brutal"), "red"},
	}
	for _, c := range cases {
		if got := DifficultyTone(c.in); got != c.want {
			t.Fatalf("DifficultyTone(%v) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestNavigationPaths(t *testing.T) {
	if got := SubjectsPath("2024").Path; got != "/subjects/2024" {
		t.Fatalf("unexpected subjects path %q", got)
	}
	if got := MaterialsPath("2024", "data-structures").Path; got != "/materials/2024/data-structures" {
		t.Fatalf("unexpected materials path %q", got)
	}
}
