package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/repository"
)

// CatalogUsecase exposes read and reload access to the language catalog.
type CatalogUsecase interface {
	ListLanguages(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageProfile, int64, error)
	GetLanguage(ctx context.Context, id string) (*entity.LanguageProfile, error)
	Reload(ctx context.Context) (int, error)
}

func NewCatalogUsecase(catalog repository.CatalogRepository) CatalogUsecase {
	return &catalogUsecase{catalog: catalog}
}

type catalogUsecase struct {
	catalog repository.CatalogRepository
}

func (u *catalogUsecase) ListLanguages(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageProfile, int64, error) {
	return u.catalog.List(ctx, query)
}

func (u *catalogUsecase) GetLanguage(ctx context.Context, id string) (*entity.LanguageProfile, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, entity.ErrLanguageNotFound
	}
	return u.catalog.GetByID(ctx, id)
}

func (u *catalogUsecase) Reload(ctx context.Context) (int, error) {
	return u.catalog.Reload(ctx)
}
