package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/cli/config"
	"github.com/secmon-lab/roadmap/pkg/data"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/layout"
	"github.com/secmon-lab/roadmap/pkg/scoring"
	"github.com/urfave/cli/v3"
)

type countryScore struct {
	Code types.CountryCode `json:"code"`
	Name string            `json:"name"`
	model.CountryMaturityScore
}

func cmdScore() *cli.Command {
	var answersPath string
	var catalogPath string
	var format string

	return &cli.Command{
		Name:  "score",
		Usage: "Compute the maturity score of every country from an answers file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "answers",
				Aliases:     []string{"a"},
				Usage:       "Answers file (TOML or YAML)",
				Required:    true,
				Sources:     cli.EnvVars("ROADMAP_ANSWERS"),
				Destination: &answersPath,
			},
			&cli.StringFlag{
				Name:        "catalog",
				Aliases:     []string{"c"},
				Usage:       "Catalog TOML file; the embedded seed catalog is used when empty",
				Sources:     cli.EnvVars("ROADMAP_CATALOG"),
				Destination: &catalogPath,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (text, json)",
				Value:       "text",
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != "text" && format != "json" {
				return goerr.New("unknown output format", goerr.V("format", format))
			}

			catalog, err := loadCatalog(ctx, catalogPath)
			if err != nil {
				return err
			}

			sheet, err := config.LoadAnswers(ctx, answersPath)
			if err != nil {
				return goerr.Wrap(err, "failed to load answers")
			}
			if err := config.ValidateAnswers(sheet, catalog); err != nil {
				return goerr.Wrap(err, "invalid answers file", goerr.V("path", answersPath))
			}

			entries := catalog.EntryPointers()
			results := make([]countryScore, 0, len(catalog.Countries))
			for _, country := range catalog.Countries {
				results = append(results, countryScore{
					Code:                 country.Code,
					Name:                 country.Name,
					CountryMaturityScore: scoring.Compute(entries, sheet, country.Code),
				})
			}

			w := c.Root().Writer
			if format == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return goerr.Wrap(err, "failed to write scores")
				}
				return nil
			}
			printScores(w, results)
			return nil
		},
	}
}

func loadCatalog(ctx context.Context, path string) (*data.Catalog, error) {
	if path == "" {
		return data.Seed()
	}
	catalog, err := config.LoadCatalog(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog")
	}
	return catalog, nil
}

func scoreColor(score float64) *color.Color {
	switch {
	case score >= 4:
		return color.New(color.FgGreen, color.Bold)
	case score >= 3:
		return color.New(color.FgBlue)
	case score >= 2:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printScores(w io.Writer, results []countryScore) {
	header := color.New(color.Bold)
	_, _ = header.Fprintf(w, "%-4s %-12s %6s  %s\n", "CODE", "COUNTRY", "SCORE", "INCOMPLETE")

	for _, r := range results {
		_, _ = fmt.Fprintf(w, "%-4s %-12s ", r.Code, r.Name)
		_, _ = scoreColor(r.Score).Fprintf(w, "%6.2f", r.Score)
		_, _ = fmt.Fprintf(w, "  %s\n", layout.Caption(r.IncompleteLevels))
	}
}
