package app

import (
	"github.com/eslsoft/lingopick/internal/adapter/httpapi"
	adapterrepo "github.com/eslsoft/lingopick/internal/adapter/repository"
	"github.com/eslsoft/lingopick/internal/infrastructure/config"
	"github.com/eslsoft/lingopick/internal/infrastructure/database"
	"github.com/eslsoft/lingopick/internal/usecase"
	"github.com/sirupsen/logrus"
)

// provideCatalogSource selects the catalog source declared in the config.
// The cleanup closes the sqlite handle when one was opened.
func provideCatalogSource(cfg *config.Config) (adapterrepo.CatalogSource, func(), error) {
	switch cfg.Catalog.Source {
	case "sqlite":
		db, cleanup, err := database.NewConnection(cfg)
		if err != nil {
			if cleanup != nil {
				cleanup()
			}
			return nil, nil, err
		}
		return adapterrepo.NewSQLiteSource(db), cleanup, nil
	default:
		return adapterrepo.NewEmbeddedSource(), func() {}, nil
	}
}

// provideWeights converts the configured weight distribution and rejects
// invalid scoring setups before any request is served.
func provideWeights(cfg *config.Config) (usecase.Weights, error) {
	w := usecase.Weights{
		CulturalMatch:   cfg.Engine.Weights.CulturalMatch,
		DifficultyFit:   cfg.Engine.Weights.DifficultyFit,
		GoalAlignment:   cfg.Engine.Weights.GoalAlignment,
		TimeFeasibility: cfg.Engine.Weights.TimeFeasibility,
		PracticalValue:  cfg.Engine.Weights.PracticalValue,
	}
	if err := usecase.ValidateScoring(w); err != nil {
		return usecase.Weights{}, err
	}
	return w, nil
}

func provideHandler(
	recommend usecase.RecommendUsecase,
	catalog usecase.CatalogUsecase,
	cfg *config.Config,
	logger *logrus.Logger,
) *httpapi.Handler {
	return httpapi.NewHandler(recommend, catalog, cfg.Engine.TopK, logger)
}
