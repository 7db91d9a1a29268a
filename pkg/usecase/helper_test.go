package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/repository/memory"
	"github.com/secmon-lab/roadmap/pkg/usecase"
)

var testCountries = []model.Country{
	{Code: "BR", Name: "Brasil"},
	{Code: "AR", Name: "Argentina"},
}

func testEntries() []*model.CatalogEntry {
	return []*model.CatalogEntry{
		{ID: "1", Kind: types.EntryKindPractice, Name: "ERP control", Level: 1, Weight: 5, Priority: 2, Description: "d", AssociatedRisk: "High inventory cost"},
		{ID: "2", Kind: types.EntryKindPractice, Name: "Mapped processes", Level: 1.2, Weight: 5, Priority: 1, Description: "d", AssociatedRisk: "Frequent stockouts"},
		{ID: "101", Kind: types.EntryKindRisk, Name: "High inventory cost", Level: 1, Y: 595, Description: "d"},
		{ID: "3", Kind: types.EntryKindPractice, Name: "ABC policy", Level: 2, Weight: 7, Priority: 1, Description: "d", AssociatedRisk: "Unreliable data"},
		{ID: "102", Kind: types.EntryKindRisk, Name: "Frequent stockouts", Level: 1.2, Y: 610, Description: "d"},
		{ID: "5", Kind: types.EntryKindPractice, Name: "Reliable MRP", Level: 3, Weight: 8, Priority: 1, Description: "d"},
	}
}

func setup(t *testing.T) (*usecase.UseCases, *memory.Memory) {
	t.Helper()
	repo := memory.New()
	gt.NoError(t, repo.Catalog().Replace(context.Background(), testEntries())).Required()
	uc := usecase.New(repo,
		usecase.WithCountries(testCountries...),
		usecase.WithLevels([]model.LevelDescriptor{
			{Level: 1, Title: "Reactive"},
			{Level: 2, Title: "Standardization"},
		}),
		usecase.WithAcronyms([]model.Acronym{{Term: "ERP", Definition: "Enterprise Resource Planning"}}),
	)
	return uc, repo
}
