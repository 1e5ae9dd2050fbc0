package app

import (
	"github.com/eslsoft/lingopick/internal/infrastructure/server"
	"github.com/eslsoft/lingopick/internal/usecase"
	"github.com/sirupsen/logrus"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger    *logrus.Logger
	Server    *server.Server
	Recommend usecase.RecommendUsecase
	Catalog   usecase.CatalogUsecase
}
