package memory

import (
	"github.com/secmon-lab/roadmap/pkg/domain/interfaces"
)

// Memory keeps the session state in process memory
type Memory struct {
	catalog *catalogRepository
	answer  *answerRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		catalog: newCatalogRepository(),
		answer:  newAnswerRepository(),
	}
}

func (m *Memory) Catalog() interfaces.CatalogRepository {
	return m.catalog
}

func (m *Memory) Answer() interfaces.AnswerRepository {
	return m.answer
}
