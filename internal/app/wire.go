//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	examprepv1 "github.com/eslsoft/examprep/api/gen/examprep/v1"
	"github.com/eslsoft/examprep/api/gen/examprep/v1/examprepv1connect"
	"github.com/eslsoft/examprep/internal/adapter/connectrpc"
	adaptergrpc "github.com/eslsoft/examprep/internal/adapter/grpc"
	"github.com/eslsoft/examprep/internal/adapter/repository"
	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/infrastructure/server"
	"github.com/eslsoft/examprep/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var loggerSet = wire.NewSet(
	server.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var databaseSet = wire.NewSet(
	ProvideMigratedDriver,
	ProvideCache,
)

var repositorySet = wire.NewSet(
	ProvideSubjectRepository,
	repository.NewQuestionPaperRepository,
	repository.NewVideoLinkRepository,
	repository.NewProgressRepository,
	repository.NewWatchHistoryRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewMaterialsUsecase,
	usecase.NewProgressUsecase,
)

var serviceSet = wire.NewSet(
	connectrpc.NewMaterialsServiceServer,
	wire.Bind(new(examprepv1connect.MaterialsServiceHandler), new(*connectrpc.MaterialsServiceServer)),
	adaptergrpc.NewMaterialsServiceServer,
	wire.Bind(new(examprepv1.MaterialsServiceServer), new(*adaptergrpc.MaterialsServiceServer)),
)

var serverSet = wire.NewSet(
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		loggerSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}

// InitializeUsecases builds the materials and progress usecases without the server.
func InitializeUsecases() (*Usecases, func(), error) {
	wire.Build(
		configSet,
		loggerSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Usecases), "Logger", "Materials", "Progress"),
	)
	return nil, nil, nil
}
