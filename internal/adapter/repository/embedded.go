package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/eslsoft/lingopick/internal/entity"
)

//go:embed data/languages.json
var embeddedLanguages []byte

// EmbeddedSource serves the descriptor set baked into the binary. It is
// the default catalog source and needs no external files.
type EmbeddedSource struct{}

func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

func (s *EmbeddedSource) Load(ctx context.Context) ([]*entity.LanguageProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var items []*entity.LanguageProfile
	if err := json.Unmarshal(embeddedLanguages, &items); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return items, nil
}
