package repository

import (
	"context"

	"github.com/eslsoft/lingopick/internal/entity"
)

type ListLanguageQuery struct {
	Pagination
	FilterOrder
}

// CatalogRepository serves the immutable language descriptors the scoring
// pipeline runs over. All returns empty or ErrCatalogUnavailable when no
// descriptors loaded.
type CatalogRepository interface {
	All(ctx context.Context) ([]*entity.LanguageProfile, error)
	GetByID(ctx context.Context, id string) (*entity.LanguageProfile, error)
	List(ctx context.Context, query *ListLanguageQuery) ([]*entity.LanguageProfile, int64, error)
	Reload(ctx context.Context) (int, error)
}
