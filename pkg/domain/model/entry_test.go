package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

func TestCatalogEntry_ScoringWeight(t *testing.T) {
	tests := []struct {
		name  string
		entry model.CatalogEntry
		want  float64
	}{
		{
			name:  "practice with weight",
			entry: model.CatalogEntry{Kind: types.EntryKindPractice, Weight: 7},
			want:  7,
		},
		{
			name:  "practice without weight",
			entry: model.CatalogEntry{Kind: types.EntryKindPractice},
			want:  0,
		},
		{
			name:  "negative weight",
			entry: model.CatalogEntry{Kind: types.EntryKindPractice, Weight: -3},
			want:  0,
		},
		{
			name:  "nan weight",
			entry: model.CatalogEntry{Kind: types.EntryKindPractice, Weight: math.NaN()},
			want:  0,
		},
		{
			name:  "risk is never weighted",
			entry: model.CatalogEntry{Kind: types.EntryKindRisk, Weight: 5},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.entry.ScoringWeight()).Equal(tt.want)
		})
	}
}

func TestCatalogEntry_Validate(t *testing.T) {
	valid := func() model.CatalogEntry {
		return model.CatalogEntry{
			ID:     "1",
			Kind:   types.EntryKindPractice,
			Name:   "Inventory control in ERP",
			Level:  1.2,
			Weight: 5,
		}
	}

	t.Run("valid practice", func(t *testing.T) {
		e := valid()
		gt.NoError(t, e.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		e := valid()
		e.Name = ""
		err := e.Validate()
		gt.Bool(t, errors.Is(err, model.ErrMissingName)).True()
	})

	t.Run("level above range", func(t *testing.T) {
		e := valid()
		e.Level = 5.5
		gt.Bool(t, errors.Is(e.Validate(), model.ErrLevelOutOfRange)).True()
	})

	t.Run("level below range", func(t *testing.T) {
		e := valid()
		e.Level = 0.9
		gt.Bool(t, errors.Is(e.Validate(), model.ErrLevelOutOfRange)).True()
	})

	t.Run("unknown kind", func(t *testing.T) {
		e := valid()
		e.Kind = "kpi"
		gt.Error(t, e.Validate())
	})

	t.Run("invalid action status", func(t *testing.T) {
		e := valid()
		e.Actions = []model.Action{{ID: "a1", Description: "Count stock", Status: "DONE", Country: "BR"}}
		gt.Bool(t, errors.Is(e.Validate(), model.ErrInvalidActionStatus)).True()
	})
}

func TestCatalogEntry_Copy(t *testing.T) {
	orig := &model.CatalogEntry{
		ID:      "1",
		Kind:    types.EntryKindPractice,
		Name:    "Mapped processes",
		Actions: []model.Action{{ID: "a1", Description: "Map value stream", Status: types.ActionStatusPending, Country: "AR"}},
	}

	c := orig.Copy()
	c.Actions[0].Description = "changed"
	c.Name = "changed"

	gt.Value(t, orig.Actions[0].Description).Equal("Map value stream")
	gt.Value(t, orig.Name).Equal("Mapped processes")
}

func TestCatalogEntry_DisplayName(t *testing.T) {
	e := model.CatalogEntry{Name: "Structured S&OP process"}
	gt.Value(t, e.DisplayName()).Equal("Structured S&OP process")
	e.ShortName = "S&OP"
	gt.Value(t, e.DisplayName()).Equal("S&OP")
}

func TestAnswers_Get(t *testing.T) {
	var nilAnswers model.Answers
	gt.Bool(t, nilAnswers.Get("1")).False()

	sheet := model.AnswerSheet{"BR": {"1": true, "2": false}}
	gt.Bool(t, sheet.Of("BR").Get("1")).True()
	gt.Bool(t, sheet.Of("BR").Get("2")).False()
	gt.Bool(t, sheet.Of("BR").Get("3")).False()
	gt.Bool(t, sheet.Of("AR").Get("1")).False()
	gt.Value(t, sheet.Of("AR")).NotNil()
}
