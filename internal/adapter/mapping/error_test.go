package mapping

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eslsoft/examprep/internal/entity"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"missing-user", entity.ErrInvalidUserID, connect.CodeUnauthenticated},
		{"subject-not-found", fmt.Errorf("%w: %q", entity.ErrSubjectNotFound, "Chemistry"), connect.CodeNotFound},
		{"ambiguous", entity.ErrAmbiguousSubject, connect.CodeNotFound},
		{"bad-year", entity.ErrInvalidYear, connect.CodeInvalidArgument},
		{"bad-filter", fmt.Errorf("%w: nope", entity.ErrInvalidFilter), connect.CodeInvalidArgument},
		{"missing-file", entity.ErrMissingFileURL, connect.CodeFailedPrecondition},
		{"stale", entity.ErrStaleNavigation, connect.CodeAborted},
		{"remote", entity.NewRemoteError("load question papers", errors.New("timeout")), connect.CodeUnavailable},
		{"canceled", entity.NewRemoteError("load video links", context.Canceled), connect.CodeCanceled},
		{"other", errors.New("boom"), connect.CodeInternal},
		{"passthrough", connect.NewError(connect.CodePermissionDenied, errors.New("no")), connect.CodePermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connect.CodeOf(ToConnectError(tt.err)); got != tt.want {
				t.Fatalf("code = %v, want %v", got, tt.want)
			}
		})
	}
	if ToConnectError(nil) != nil {
		t.Fatal("nil must map to nil")
	}
}

func TestToPbError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"missing-user", entity.ErrInvalidUserID, codes.Unauthenticated},
		{"subject-not-found", fmt.Errorf("%w: %q", entity.ErrSubjectNotFound, "Chemistry"), codes.NotFound},
		{"bad-slug", entity.ErrInvalidSlug, codes.InvalidArgument},
		{"missing-video", entity.ErrMissingVideoURL, codes.FailedPrecondition},
		{"stale", entity.ErrStaleNavigation, codes.Aborted},
		{"remote", entity.NewRemoteError("load progress", errors.New("reset")), codes.Unavailable},
		{"deadline", entity.NewRemoteError("load progress", context.DeadlineExceeded), codes.DeadlineExceeded},
		{"other", errors.New("boom"), codes.Internal},
		{"passthrough", status.Error(codes.PermissionDenied, "no"), codes.PermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPbError(tt.err)
			if status.Code(got) != tt.want {
				t.Fatalf("code = %v, want %v", status.Code(got), tt.want)
			}
			if tt.name != "passthrough" && status.Convert(got).Message() != tt.err.Error() {
				t.Fatalf("message = %q, want %q", status.Convert(got).Message(), tt.err.Error())
			}
		})
	}
	if ToPbError(nil) != nil {
		t.Fatal("nil must map to nil")
	}
}

func TestToPbMaterials(t *testing.T) {
	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	hard := "Hard"
	snap := &entity.MaterialsSnapshot{
		Subject:           entity.Subject{ID: "DS1", Name: "Data Structures"},
		Year:              2024,
		Papers:            []entity.QuestionPaper{{ID: "p1", Title: "Final", Date: &d, Difficulty: &hard}, {ID: "p2", Title: "Practice"}},
		Videos:            []entity.VideoLink{{ID: "v1", Title: "Trees"}},
		CompletedPaperIDs: entity.NewIDSet("p1"),
		WatchedVideoIDs:   entity.NewIDSet(),
		Warnings:          []entity.Notification{entity.InfoNotification("Could not load progress", "offline")},
	}

	got := ToPbMaterials(snap, "2024")
	if got.Subject.Slug != "data-structures" || got.BackPath != "/subjects/2024" {
		t.Fatalf("unexpected header %+v back=%q", got.Subject, got.BackPath)
	}
	if !got.Papers[0].Completed || got.Papers[1].Completed || got.Papers[0].Date != "2024-06-01" || got.Papers[0].DifficultyTone != "red" {
		t.Fatalf("unexpected papers %+v %+v", got.Papers[0], got.Papers[1])
	}
	if got.Videos[0].Watched || len(got.WatchedVideoIds) != 0 || got.WatchedVideoIds == nil {
		t.Fatalf("unexpected videos %+v %v", got.Videos[0], got.WatchedVideoIds)
	}
	if got.Papers[1].Pages != 0 || got.Papers[1].FileUrl != "" || got.Papers[1].Date != "" || got.Papers[1].DifficultyTone != "" {
		t.Fatalf("absent attributes must flatten to zero values: %+v", got.Papers[1])
	}
	if got.Videos[0].VideoUrl != "" || got.Videos[0].Duration != "" {
		t.Fatalf("absent video attributes must flatten to zero values: %+v", got.Videos[0])
	}
	if got.GetCompletedPaperIds()[0] != "p1" {
		t.Fatalf("completed ids = %v", got.GetCompletedPaperIds())
	}
	if len(got.Notices) != 1 || got.Notices[0].Severity != "info" {
		t.Fatalf("unexpected notices %+v", got.Notices)
	}
}

func TestFromUserID(t *testing.T) {
	if id, err := FromUserID("  u1 "); err != nil || id != "u1" {
		t.Fatalf("FromUserID = %q, %v", id, err)
	}
	if _, err := FromUserID(" \t"); !errors.Is(err, entity.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if UserIDMetadataKey != "x-user-id" {
		t.Fatalf("metadata key = %q", UserIDMetadataKey)
	}
}
