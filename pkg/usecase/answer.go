package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/interfaces"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

type AnswerUseCase struct {
	repo      interfaces.Repository
	countries *model.CountryRegistry
}

func NewAnswerUseCase(repo interfaces.Repository, countries *model.CountryRegistry) *AnswerUseCase {
	return &AnswerUseCase{
		repo:      repo,
		countries: countries,
	}
}

// SetAnswer records whether a country has implemented a practice
func (uc *AnswerUseCase) SetAnswer(ctx context.Context, country types.CountryCode, practiceID types.EntryID, answer bool) error {
	if !uc.countries.Has(country) {
		return goerr.Wrap(ErrUnknownCountry, "country is not benchmarked", goerr.V(CountryKey, country))
	}

	entry, err := getEntry(ctx, uc.repo.Catalog(), practiceID)
	if err != nil {
		return err
	}
	if !entry.IsPractice() {
		return goerr.Wrap(ErrNotPractice, "only practices can be answered",
			goerr.V(EntryIDKey, practiceID), goerr.V(CountryKey, country))
	}

	if err := uc.repo.Answer().Set(ctx, country, practiceID, answer); err != nil {
		return goerr.Wrap(err, "failed to set answer",
			goerr.V(CountryKey, country), goerr.V(EntryIDKey, practiceID))
	}
	return nil
}

// Answers returns the answers of a country; unanswered practices are absent
func (uc *AnswerUseCase) Answers(ctx context.Context, country types.CountryCode) (model.Answers, error) {
	if !uc.countries.Has(country) {
		return nil, goerr.Wrap(ErrUnknownCountry, "country is not benchmarked", goerr.V(CountryKey, country))
	}

	answers, err := uc.repo.Answer().Get(ctx, country)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get answers", goerr.V(CountryKey, country))
	}
	return answers, nil
}
