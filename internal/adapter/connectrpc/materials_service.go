package connectrpc

import (
	"context"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"

	examprepv1 "github.com/eslsoft/examprep/api/gen/examprep/v1"
	"github.com/eslsoft/examprep/api/gen/examprep/v1/examprepv1connect"
	"github.com/eslsoft/examprep/internal/adapter/mapping"
	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/repository"
	"github.com/eslsoft/examprep/internal/usecase"
)

var _ examprepv1connect.MaterialsServiceHandler = (*MaterialsServiceServer)(nil)

type MaterialsServiceServer struct {
	examprepv1connect.UnimplementedMaterialsServiceHandler

	materials usecase.MaterialsUsecase
	progress  usecase.ProgressUsecase
	logger    logrus.FieldLogger
}

func NewMaterialsServiceServer(materials usecase.MaterialsUsecase, progress usecase.ProgressUsecase, logger logrus.FieldLogger) *MaterialsServiceServer {
	return &MaterialsServiceServer{materials: materials, progress: progress, logger: logger}
}

func (s *MaterialsServiceServer) ListSubjects(ctx context.Context, req *connect.Request[examprepv1.ListSubjectsRequest]) (*connect.Response[examprepv1.ListSubjectsResponse], error) {
	if _, err := userID(req.Header().Get(mapping.UserIDHeader)); err != nil {
		return nil, err
	}
	query := &repository.ListSubjectQuery{
		FilterOrder: repository.FilterOrder{
			Filter:  req.Msg.GetFilter(),
			OrderBy: req.Msg.GetOrderBy(),
		},
	}
	items, err := s.materials.ListSubjects(ctx, query)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&examprepv1.ListSubjectsResponse{Subjects: mapping.ToPbSubjects(items)}), nil
}

func (s *MaterialsServiceServer) GetMaterials(ctx context.Context, req *connect.Request[examprepv1.GetMaterialsRequest]) (*connect.Response[examprepv1.GetMaterialsResponse], error) {
	uid, err := userID(req.Header().Get(mapping.UserIDHeader))
	if err != nil {
		return nil, err
	}
	snap, err := s.materials.FetchMaterials(ctx, req.Msg.GetYear(), req.Msg.GetSubjectSlug(), uid)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbMaterials(snap, req.Msg.GetYear())), nil
}

func (s *MaterialsServiceServer) MarkPaperComplete(ctx context.Context, req *connect.Request[examprepv1.MarkPaperCompleteRequest]) (*connect.Response[examprepv1.MutationResponse], error) {
	uid, err := userID(req.Header().Get(mapping.UserIDHeader))
	if err != nil {
		return nil, err
	}
	dispatcher, rec := newDispatcher(s.progress, s.logger)
	if err := dispatcher.MarkPaperComplete(ctx, req.Msg.GetPaperId(), uid); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&examprepv1.MutationResponse{Notices: mapping.ToPbNotices(rec.Notifications())}), nil
}

func (s *MaterialsServiceServer) MarkVideoWatched(ctx context.Context, req *connect.Request[examprepv1.MarkVideoWatchedRequest]) (*connect.Response[examprepv1.MutationResponse], error) {
	uid, err := userID(req.Header().Get(mapping.UserIDHeader))
	if err != nil {
		return nil, err
	}
	dispatcher, rec := newDispatcher(s.progress, s.logger)
	if err := dispatcher.MarkVideoWatched(ctx, req.Msg.GetVideoId(), uid); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&examprepv1.MutationResponse{Notices: mapping.ToPbNotices(rec.Notifications())}), nil
}

// newDispatcher builds a request-scoped dispatcher; the server keeps no per-user cache.
func newDispatcher(progress usecase.ProgressUsecase, logger logrus.FieldLogger) (*usecase.Dispatcher, *usecase.NotificationRecorder) {
	rec := &usecase.NotificationRecorder{}
	cache := usecase.NewCompletionCache(entity.IDSet{}, entity.IDSet{})
	return usecase.NewDispatcher(cache, progress, rec, logger), rec
}

func userID(raw string) (string, error) {
	id, err := mapping.FromUserID(raw)
	if err != nil {
		return "", mapping.ToConnectError(err)
	}
	return id, nil
}
