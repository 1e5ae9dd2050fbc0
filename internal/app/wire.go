//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/lingopick/internal/adapter/httpapi"
	adapterrepo "github.com/eslsoft/lingopick/internal/adapter/repository"
	"github.com/eslsoft/lingopick/internal/infrastructure/config"
	"github.com/eslsoft/lingopick/internal/infrastructure/server"
	"github.com/eslsoft/lingopick/internal/repository"
	"github.com/eslsoft/lingopick/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var repositorySet = wire.NewSet(
	provideCatalogSource,
	adapterrepo.NewCatalogRepository,
	wire.Bind(new(repository.CatalogRepository), new(*adapterrepo.CatalogRepository)),
	adapterrepo.NewLogResultRepository,
)

var usecaseSet = wire.NewSet(
	provideWeights,
	usecase.NewRecommendUsecase,
	usecase.NewCatalogUsecase,
)

var httpSet = wire.NewSet(
	provideHandler,
	httpapi.NewRouter,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		repositorySet,
		usecaseSet,
		httpSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server", "Recommend", "Catalog"),
	)
	return nil, nil, nil
}
