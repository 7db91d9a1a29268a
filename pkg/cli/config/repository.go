package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/data"
	"github.com/secmon-lab/roadmap/pkg/domain/interfaces"
	"github.com/secmon-lab/roadmap/pkg/repository/memory"
	"github.com/secmon-lab/roadmap/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for the in-memory state: the catalog it is
// seeded with and optional initial answers
type Repository struct {
	catalogPath string
	answersPath string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Aliases:     []string{"c"},
			Usage:       "Catalog TOML file; the embedded seed catalog is used when empty",
			Sources:     cli.EnvVars("ROADMAP_CATALOG"),
			Destination: &r.catalogPath,
		},
		&cli.StringFlag{
			Name:        "answers",
			Usage:       "Answers file (TOML or YAML) preloaded into the answer store",
			Sources:     cli.EnvVars("ROADMAP_ANSWERS"),
			Destination: &r.answersPath,
		},
	}
}

// CatalogPath returns the configured catalog path
func (r *Repository) CatalogPath() string {
	return r.catalogPath
}

// LoadCatalog returns the configured catalog, or the embedded seed
func (r *Repository) LoadCatalog(ctx context.Context) (*data.Catalog, error) {
	if r.catalogPath == "" {
		logging.From(ctx).Info("Using embedded seed catalog")
		return data.Seed()
	}
	catalog, err := LoadCatalog(ctx, r.catalogPath)
	if err != nil {
		return nil, err
	}
	logging.From(ctx).Info("Loaded catalog", "path", r.catalogPath, "entries", len(catalog.Entries))
	return catalog, nil
}

// Configure builds an in-memory repository holding the catalog entries and
// the preloaded answers
func (r *Repository) Configure(ctx context.Context, catalog *data.Catalog) (interfaces.Repository, error) {
	repo := memory.New()
	if err := repo.Catalog().Replace(ctx, catalog.EntryPointers()); err != nil {
		return nil, goerr.Wrap(err, "failed to seed catalog")
	}

	if r.answersPath == "" {
		return repo, nil
	}

	sheet, err := LoadAnswers(ctx, r.answersPath)
	if err != nil {
		return nil, err
	}
	if err := ValidateAnswers(sheet, catalog); err != nil {
		return nil, goerr.Wrap(err, "invalid answers file", goerr.V(ConfigPathKey, r.answersPath))
	}
	for country, answers := range sheet {
		for id, v := range answers {
			if err := repo.Answer().Set(ctx, country, id, v); err != nil {
				return nil, goerr.Wrap(err, "failed to preload answer")
			}
		}
	}
	logging.From(ctx).Info("Preloaded answers", "path", r.answersPath, "countries", len(sheet))

	return repo, nil
}
