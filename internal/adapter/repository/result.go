package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/repository"
)

// LogResultRepository records recommendation runs as structured log lines.
// Runs carry no user identity, so there is nothing durable to key a table
// on; the log stream is the audit trail.
type LogResultRepository struct {
	logger *logrus.Logger
}

func NewLogResultRepository(logger *logrus.Logger) repository.ResultRepository {
	return &LogResultRepository{logger: logger}
}

func (r *LogResultRepository) Save(ctx context.Context, profile *entity.UserProfile, recs []*entity.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields := logrus.Fields{
		"native_language": profile.NativeLanguage,
		"motivation":      profile.Motivation.Primary,
		"time_commitment": profile.TimeCommitment,
		"languages":       len(recs),
	}
	if len(recs) > 0 {
		fields["top_language"] = recs[0].Language.ID
		fields["top_score"] = recs[0].MatchScore
	}
	r.logger.WithFields(fields).Info("recommendation run completed")
	return nil
}
