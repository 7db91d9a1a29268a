package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

type answerRepository struct {
	mu      sync.RWMutex
	answers map[types.CountryCode]map[types.EntryID]bool
	version uint64
}

func newAnswerRepository() *answerRepository {
	return &answerRepository{
		answers: make(map[types.CountryCode]map[types.EntryID]bool),
	}
}

func (r *answerRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *answerRepository) Set(ctx context.Context, country types.CountryCode, practiceID types.EntryID, answer bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.answers[country]; !exists {
		r.answers[country] = make(map[types.EntryID]bool)
	}
	r.answers[country][practiceID] = answer
	r.version++
	return nil
}

func (r *answerRepository) Get(ctx context.Context, country types.CountryCode) (model.Answers, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyAnswers(r.answers[country]), nil
}

func (r *answerRepository) All(ctx context.Context) (model.AnswerSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sheet := make(model.AnswerSheet, len(r.answers))
	for country, answers := range r.answers {
		sheet[country] = copyAnswers(answers)
	}
	return sheet, nil
}

func copyAnswers(src map[types.EntryID]bool) model.Answers {
	dst := make(model.Answers, len(src))
	for id, v := range src {
		dst[id] = v
	}
	return dst
}
