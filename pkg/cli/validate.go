package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/cli/config"
	"github.com/secmon-lab/roadmap/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var catalogPath string
	var answersPath string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a catalog file and optionally an answers file against it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "catalog",
				Aliases:     []string{"c"},
				Usage:       "Catalog TOML file; the embedded seed catalog is checked when empty",
				Sources:     cli.EnvVars("ROADMAP_CATALOG"),
				Destination: &catalogPath,
			},
			&cli.StringFlag{
				Name:        "answers",
				Aliases:     []string{"a"},
				Usage:       "Answers file (TOML or YAML) to check against the catalog",
				Destination: &answersPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			catalog, err := loadCatalog(ctx, catalogPath)
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}
			if err := config.ValidateCatalog(catalog); err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			practices, risks := 0, 0
			for _, e := range catalog.EntryPointers() {
				if e.IsPractice() {
					practices++
				} else {
					risks++
				}
			}
			logger.Info("Catalog validation passed",
				"practices", practices,
				"risks", risks,
				"countries", len(catalog.Countries),
				"levels", len(catalog.Levels),
			)

			if answersPath == "" {
				return nil
			}

			sheet, err := config.LoadAnswers(ctx, answersPath)
			if err != nil {
				return goerr.Wrap(err, "answers validation failed")
			}
			if err := config.ValidateAnswers(sheet, catalog); err != nil {
				return goerr.Wrap(err, "answers validation failed")
			}
			logger.Info("Answers validation passed", "countries", len(sheet))
			return nil
		},
	}
}
