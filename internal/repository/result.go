package repository

import (
	"context"

	"github.com/eslsoft/lingopick/internal/entity"
)

// ResultRepository records finished recommendation runs. Saving is
// best-effort; a failed save never fails the run that produced it.
type ResultRepository interface {
	Save(ctx context.Context, profile *entity.UserProfile, recommendations []*entity.Recommendation) error
}
