package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/infrastructure/server"
	"github.com/eslsoft/examprep/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger *logrus.Logger
	Server *server.Server
}

// Usecases is the slimmer container used by CLI commands that run without the server.
type Usecases struct {
	Logger    *logrus.Logger
	Materials usecase.MaterialsUsecase
	Progress  usecase.ProgressUsecase
}
