package interfaces

import (
	"context"

	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

type AnswerRepository interface {
	Versioned

	// Set records the answer of a country for a practice
	Set(ctx context.Context, country types.CountryCode, practiceID types.EntryID, answer bool) error

	// Get retrieves the answers of a country. Unknown countries yield an
	// empty map.
	Get(ctx context.Context, country types.CountryCode) (model.Answers, error)

	// All retrieves the answers of every country
	All(ctx context.Context) (model.AnswerSheet, error)
}
