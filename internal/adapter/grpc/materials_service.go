package grpc

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/metadata"

	examprepv1 "github.com/eslsoft/examprep/api/gen/examprep/v1"
	"github.com/eslsoft/examprep/internal/adapter/mapping"
	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/repository"
	"github.com/eslsoft/examprep/internal/usecase"
)

var _ examprepv1.MaterialsServiceServer = (*MaterialsServiceServer)(nil)

// MaterialsServiceServer serves MaterialsService over gRPC and, through the gateway, REST.
type MaterialsServiceServer struct {
	examprepv1.UnimplementedMaterialsServiceServer

	materials usecase.MaterialsUsecase
	progress  usecase.ProgressUsecase
	logger    logrus.FieldLogger
}

func NewMaterialsServiceServer(materials usecase.MaterialsUsecase, progress usecase.ProgressUsecase, logger logrus.FieldLogger) *MaterialsServiceServer {
	return &MaterialsServiceServer{materials: materials, progress: progress, logger: logger}
}

func (s *MaterialsServiceServer) ListSubjects(ctx context.Context, req *examprepv1.ListSubjectsRequest) (*examprepv1.ListSubjectsResponse, error) {
	if _, err := userID(ctx); err != nil {
		return nil, err
	}
	items, err := s.materials.ListSubjects(ctx, &repository.ListSubjectQuery{
		FilterOrder: repository.FilterOrder{
			Filter:  req.GetFilter(),
			OrderBy: req.GetOrderBy(),
		},
	})
	if err != nil {
		return nil, mapping.ToPbError(err)
	}
	return &examprepv1.ListSubjectsResponse{Subjects: mapping.ToPbSubjects(items)}, nil
}

func (s *MaterialsServiceServer) GetMaterials(ctx context.Context, req *examprepv1.GetMaterialsRequest) (*examprepv1.GetMaterialsResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.materials.FetchMaterials(ctx, req.GetYear(), req.GetSubjectSlug(), uid)
	if err != nil {
		return nil, mapping.ToPbError(err)
	}
	return mapping.ToPbMaterials(snap, req.GetYear()), nil
}

func (s *MaterialsServiceServer) MarkPaperComplete(ctx context.Context, req *examprepv1.MarkPaperCompleteRequest) (*examprepv1.MutationResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	dispatcher, rec := s.dispatcher()
	if err := dispatcher.MarkPaperComplete(ctx, req.GetPaperId(), uid); err != nil {
		return nil, mapping.ToPbError(err)
	}
	return &examprepv1.MutationResponse{Notices: mapping.ToPbNotices(rec.Notifications())}, nil
}

func (s *MaterialsServiceServer) MarkVideoWatched(ctx context.Context, req *examprepv1.MarkVideoWatchedRequest) (*examprepv1.MutationResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	dispatcher, rec := s.dispatcher()
	if err := dispatcher.MarkVideoWatched(ctx, req.GetVideoId(), uid); err != nil {
		return nil, mapping.ToPbError(err)
	}
	return &examprepv1.MutationResponse{Notices: mapping.ToPbNotices(rec.Notifications())}, nil
}

func (s *MaterialsServiceServer) dispatcher() (*usecase.Dispatcher, *usecase.NotificationRecorder) {
	rec := &usecase.NotificationRecorder{}
	cache := usecase.NewCompletionCache(entity.IDSet{}, entity.IDSet{})
	return usecase.NewDispatcher(cache, s.progress, rec, s.logger), rec
}

// userID reads the caller from incoming metadata; the gateway forwards the HTTP header there.
func userID(ctx context.Context) (string, error) {
	var raw string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(mapping.UserIDMetadataKey); len(vals) > 0 {
			raw = vals[0]
		}
	}
	id, err := mapping.FromUserID(raw)
	if err != nil {
		return "", mapping.ToPbError(err)
	}
	return id, nil
}
