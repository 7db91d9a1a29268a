package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/domain/interfaces"
	"github.com/secmon-lab/roadmap/pkg/repository/memory"
)

func runAnswerRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Get returns empty answers for unknown country", func(t *testing.T) {
		repo := newRepo(t)
		answers, err := repo.Answer().Get(context.Background(), "BR")
		gt.NoError(t, err).Required()
		gt.Value(t, answers).NotNil()
		gt.Number(t, len(answers)).Equal(0)
	})

	t.Run("Set records and overwrites answers", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Answer().Set(ctx, "BR", "1", true)).Required()
		gt.NoError(t, repo.Answer().Set(ctx, "BR", "2", true)).Required()
		gt.NoError(t, repo.Answer().Set(ctx, "BR", "2", false)).Required()
		gt.NoError(t, repo.Answer().Set(ctx, "AR", "1", true)).Required()

		br, err := repo.Answer().Get(ctx, "BR")
		gt.NoError(t, err).Required()
		gt.Bool(t, br.Get("1")).True()
		gt.Bool(t, br.Get("2")).False()

		sheet, err := repo.Answer().All(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(sheet)).Equal(2)
		gt.Bool(t, sheet.Of("AR").Get("1")).True()
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Answer().Set(ctx, "CL", "1", true)).Required()
		answers, err := repo.Answer().Get(ctx, "CL")
		gt.NoError(t, err).Required()
		answers["1"] = false

		again, err := repo.Answer().Get(ctx, "CL")
		gt.NoError(t, err).Required()
		gt.Bool(t, again.Get("1")).True()
	})

	t.Run("Version increments on Set", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		v0 := repo.Answer().Version()
		_, _ = repo.Answer().All(ctx)
		gt.Value(t, repo.Answer().Version()).Equal(v0)

		gt.NoError(t, repo.Answer().Set(ctx, "UY", "1", true)).Required()
		gt.Value(t, repo.Answer().Version()).NotEqual(v0)
	})
}

func TestMemoryAnswerRepository(t *testing.T) {
	runAnswerRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}
