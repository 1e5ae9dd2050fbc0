package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/repository"
	"github.com/eslsoft/lingopick/pkg/filterexpr"
)

// CatalogSource produces the raw language descriptors for one backing
// store. Load must return the full descriptor set on every call.
type CatalogSource interface {
	Load(ctx context.Context) ([]*entity.LanguageProfile, error)
}

// CatalogRepository caches a validated descriptor snapshot in memory. The
// snapshot loads lazily on first access and is replaced only by Reload.
type CatalogRepository struct {
	source CatalogSource

	mu     sync.RWMutex
	loaded bool
	items  []*entity.LanguageProfile
	byID   map[string]*entity.LanguageProfile
}

// NewCatalogRepository constructs a repository over the given source.
func NewCatalogRepository(source CatalogSource) *CatalogRepository {
	return &CatalogRepository{source: source}
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) All(ctx context.Context) ([]*entity.LanguageProfile, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return nil, entity.ErrCatalogUnavailable
	}
	return append([]*entity.LanguageProfile(nil), r.items...), nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*entity.LanguageProfile, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if lang, ok := r.byID[id]; ok {
		return lang, nil
	}
	return nil, entity.ErrLanguageNotFound
}

func (r *CatalogRepository) List(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageProfile, int64, error) {
	items, err := r.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	if query == nil {
		query = &repository.ListLanguageQuery{}
	}

	pred, err := filterexpr.Compile(query.GetFilter(), languageSchema)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: filter: %v", entity.ErrInvalidQuery, err)
	}
	less, err := filterexpr.Comparator(query.GetOrderBy(), languageSchema.Order)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: order_by: %v", entity.ErrInvalidQuery, err)
	}

	filtered := make([]*entity.LanguageProfile, 0, len(items))
	for _, item := range items {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })

	total := int64(len(filtered))
	return paginate(filtered, query.Pagination), total, nil
}

// Reload discards the snapshot and loads fresh from the source. A failed
// load keeps the previous snapshot in place.
func (r *CatalogRepository) Reload(ctx context.Context) (int, error) {
	items, byID, err := r.loadValidated(ctx)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	r.items = items
	r.byID = byID
	r.loaded = true
	r.mu.Unlock()
	return len(items), nil
}

func (r *CatalogRepository) ensureLoaded(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}

	items, byID, err := r.loadValidated(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have won the load race; first snapshot wins.
	if !r.loaded {
		r.items = items
		r.byID = byID
		r.loaded = true
	}
	return nil
}

func (r *CatalogRepository) loadValidated(ctx context.Context) ([]*entity.LanguageProfile, map[string]*entity.LanguageProfile, error) {
	items, err := r.source.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	byID := make(map[string]*entity.LanguageProfile, len(items))
	for _, lang := range items {
		lang.Normalize()
		if err := lang.Validate(); err != nil {
			return nil, nil, err
		}
		if _, dup := byID[lang.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate language id %q: %w", lang.ID, entity.ErrInvalidLanguage)
		}
		byID[lang.ID] = lang
	}
	return items, byID, nil
}

func paginate(items []*entity.LanguageProfile, p repository.Pagination) []*entity.LanguageProfile {
	if p.PageSize <= 0 {
		return items
	}
	pageNo := p.PageNo
	if pageNo <= 0 {
		pageNo = 1
	}
	start := int(pageNo-1) * int(p.PageSize)
	if start >= len(items) {
		return []*entity.LanguageProfile{}
	}
	end := start + int(p.PageSize)
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
