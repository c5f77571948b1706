package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protojson"

	examprepv1 "github.com/eslsoft/examprep/api/gen/examprep/v1"
	"github.com/eslsoft/examprep/api/gen/examprep/v1/examprepv1connect"
	"github.com/eslsoft/examprep/internal/adapter/connectrpc"
	adaptergrpc "github.com/eslsoft/examprep/internal/adapter/grpc"
	"github.com/eslsoft/examprep/internal/adapter/mapping"
	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/repository"
)

type fakeMaterials struct{}

func (fakeMaterials) FetchMaterials(_ context.Context, _, slug, _ string) (*entity.MaterialsSnapshot, error) {
	if slug != "physics" {
		return nil, entity.ErrSubjectNotFound
	}
	return &entity.MaterialsSnapshot{
		Subject:           entity.Subject{ID: "PH1", Name: "Physics"},
		Year:              2024,
		Papers:            []entity.QuestionPaper{{ID: "p1", Title: "Mock"}},
		CompletedPaperIDs: entity.NewIDSet(),
		WatchedVideoIDs:   entity.NewIDSet(),
	}, nil
}

func (fakeMaterials) ListSubjects(context.Context, *repository.ListSubjectQuery) ([]entity.Subject, error) {
	return []entity.Subject{{ID: "PH1", Name: "Physics"}}, nil
}

type fakeProgress struct{}

func (fakeProgress) MarkPaperComplete(_ context.Context, userID, paperID string) (entity.ProgressRecord, error) {
	return entity.ProgressRecord{UserID: userID, PaperID: paperID, Completed: true}, nil
}

func (fakeProgress) MarkVideoWatched(_ context.Context, userID, videoID string) (entity.WatchRecord, error) {
	return entity.WatchRecord{UserID: userID, VideoID: videoID}, nil
}

// newTestServer serves the full HTTP chain and, on a loopback listener, gRPC for the gateway.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	cfg := &config.Config{Server: config.ServerConfig{
		Host:           "127.0.0.1",
		GRPCPort:       lis.Addr().(*net.TCPAddr).Port,
		AllowedOrigins: []string{"https://app.example"},
	}}
	s := NewServer(cfg, logger,
		connectrpc.NewMaterialsServiceServer(fakeMaterials{}, fakeProgress{}, logger),
		adaptergrpc.NewMaterialsServiceServer(fakeMaterials{}, fakeProgress{}, logger),
	)
	go func() { _ = s.ServeGRPC(lis) }()
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return srv
}

func withUser[T any](msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set(mapping.UserIDHeader, "u1")
	return req
}

func TestServerRoutesConnectAndHealth(t *testing.T) {
	srv := newTestServer(t)

	client := examprepv1connect.NewMaterialsServiceClient(srv.Client(), srv.URL)
	resp, err := client.ListSubjects(context.Background(), withUser(&examprepv1.ListSubjectsRequest{}))
	if err != nil {
		t.Fatalf("ListSubjects returned error: %v", err)
	}
	if len(resp.Msg.GetSubjects()) != 1 || resp.Msg.GetSubjects()[0].GetSlug() != "physics" {
		t.Fatalf("unexpected subjects %+v", resp.Msg.GetSubjects())
	}

	health, err := srv.Client().Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	health.Body.Close()
	if health.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", health.StatusCode)
	}
}

func TestServerReportsFailedConnectCalls(t *testing.T) {
	srv := newTestServer(t)
	client := examprepv1connect.NewMaterialsServiceClient(srv.Client(), srv.URL)

	_, err := client.GetMaterials(context.Background(), withUser(&examprepv1.GetMaterialsRequest{Year: "2024", SubjectSlug: "chemistry"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = client.GetMaterials(context.Background(), withUser(&examprepv1.GetMaterialsRequest{Year: "24a", SubjectSlug: "physics"}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestBuildLogFieldsSkipsTypedNilResponse(t *testing.T) {
	req := connect.NewRequest(&examprepv1.GetMaterialsRequest{})
	req.Header().Set(mapping.UserIDHeader, "u1")
	var resp *connect.Response[examprepv1.GetMaterialsResponse]

	fields := buildLogFields(req, resp, connect.CodeNotFound, time.Millisecond, connect.NewError(connect.CodeNotFound, entity.ErrSubjectNotFound))
	if _, ok := fields["response_bytes"]; ok {
		t.Fatalf("failed call must not report response bytes: %v", fields)
	}
	if fields["user_id"] != "u1" || fields["status"] != connect.CodeNotFound.String() {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func postGateway(t *testing.T, srv *httptest.Server, path, body, user string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(mapping.UserIDHeader, user)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestGatewayServesMaterials(t *testing.T) {
	srv := newTestServer(t)

	resp := postGateway(t, srv, "/v1/materials/get", `{"year":"2024","subjectSlug":"physics"}`, "u1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out examprepv1.GetMaterialsResponse
	if err := protojson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	if out.GetSubject().GetSlug() != "physics" || out.GetBackPath() != "/subjects/2024" || len(out.GetPapers()) != 1 {
		t.Fatalf("unexpected body %s", raw)
	}
}

func TestGatewayMapsErrorsToHTTPStatus(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		path string
		body string
		user string
		want int
	}{
		{"unknown-subject", "/v1/materials/get", `{"year":"2024","subjectSlug":"chemistry"}`, "u1", http.StatusNotFound},
		{"bad-year", "/v1/materials/get", `{"year":"20x4","subjectSlug":"physics"}`, "u1", http.StatusBadRequest},
		{"no-user", "/v1/progress/papers/complete", `{"paperId":"p1"}`, "", http.StatusUnauthorized},
		{"marks-paper", "/v1/progress/papers/complete", `{"paperId":"p1"}`, "u1", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := postGateway(t, srv, tt.path, tt.body, tt.user); resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestServerCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+examprepv1connect.MaterialsServiceGetMaterialsProcedure, nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-user-id")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestGatewayHeaderMatcher(t *testing.T) {
	if key, ok := gatewayHeaderMatcher("X-User-Id"); !ok || key != "x-user-id" {
		t.Fatalf("user header = %q, %v", key, ok)
	}
	if _, ok := gatewayHeaderMatcher("X-Random"); ok {
		t.Fatal("unknown headers must not be forwarded")
	}
}

func TestDetermineLogLevel(t *testing.T) {
	if determineLogLevel(connect.CodeUnknown, nil) != logrus.InfoLevel {
		t.Fatal("success should log at info")
	}
	if determineLogLevel(connect.CodeNotFound, context.Canceled) != logrus.WarnLevel {
		t.Fatal("client errors should log at warn")
	}
	if determineLogLevel(connect.CodeUnavailable, context.Canceled) != logrus.ErrorLevel {
		t.Fatal("server errors should log at error")
	}
}
