package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func parseRepository(t *testing.T, args ...string) *config.Repository {
	t.Helper()
	var cfg config.Repository
	cmd := &cli.Command{
		Name:   "test",
		Flags:  cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
	return &cfg
}

func TestRepository_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("seed catalog without answers", func(t *testing.T) {
		cfg := parseRepository(t)
		catalog, err := cfg.LoadCatalog(ctx)
		gt.NoError(t, err).Required()

		repo, err := cfg.Configure(ctx, catalog)
		gt.NoError(t, err).Required()

		entries, err := repo.Catalog().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(len(catalog.Entries))

		sheet, err := repo.Answer().All(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, len(sheet)).Equal(0)
	})

	t.Run("preloads answers", func(t *testing.T) {
		answers := writeFile(t, "answers.toml", `
[answers.BR]
"1" = true
"2" = true
`)
		cfg := parseRepository(t, "--answers", answers)
		catalog, err := cfg.LoadCatalog(ctx)
		gt.NoError(t, err).Required()

		repo, err := cfg.Configure(ctx, catalog)
		gt.NoError(t, err).Required()

		got, err := repo.Answer().Get(ctx, "BR")
		gt.NoError(t, err).Required()
		gt.Bool(t, got.Get("1")).True()
		gt.Bool(t, got.Get("2")).True()
	})

	t.Run("rejects answers for unknown practice", func(t *testing.T) {
		answers := writeFile(t, "answers.toml", `
[answers.BR]
"101" = true
`)
		cfg := parseRepository(t, "--answers", answers)
		catalog, err := cfg.LoadCatalog(ctx)
		gt.NoError(t, err).Required()

		_, err = cfg.Configure(ctx, catalog)
		gt.Error(t, err).Is(config.ErrUnknownAnswerEntry)
	})

	t.Run("catalog file", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", `
[[entry]]
id = "1"
kind = "practice"
name = "ERP"
level = 1.0
weight = 1.0
description = "d"
`)
		cfg := parseRepository(t, "--catalog", path)
		gt.Value(t, cfg.CatalogPath()).Equal(path)

		catalog, err := cfg.LoadCatalog(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, catalog.Entries).Length(1)
	})
}

func TestSentry_Disabled(t *testing.T) {
	var cfg config.Sentry
	gt.Bool(t, cfg.IsEnabled()).False()

	flush, err := cfg.Configure("test")
	gt.NoError(t, err).Required()
	flush()
}
