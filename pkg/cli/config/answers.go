package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/roadmap/pkg/data"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/utils/safe"
	"gopkg.in/yaml.v3"
)

// answersFile is the on-disk shape of an answers file, e.g.
//
//	[answers.BR]
//	"1" = true
type answersFile struct {
	Answers map[string]map[string]bool `toml:"answers" yaml:"answers"`
}

// LoadAnswers reads an answers file. The format is chosen by extension:
// .toml, or .yaml / .yml.
func LoadAnswers(ctx context.Context, path string) (model.AnswerSheet, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "answers file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to open answers file", goerr.V(ConfigPathKey, path))
	}
	defer safe.Close(ctx, f)

	var file answersFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewDecoder(f).Decode(&file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse answers TOML", goerr.V(ConfigPathKey, path))
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse answers YAML", goerr.V(ConfigPathKey, path))
		}
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "answers file must be TOML or YAML",
			goerr.V(ConfigPathKey, path), goerr.V(FormatKey, ext))
	}

	sheet := make(model.AnswerSheet, len(file.Answers))
	for code, answers := range file.Answers {
		country := types.CountryCode(code)
		if err := country.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid country in answers file",
				goerr.V(ConfigPathKey, path), goerr.V(CountryKey, code))
		}
		a := make(model.Answers, len(answers))
		for id, v := range answers {
			a[types.EntryID(id)] = v
		}
		sheet[country] = a
	}

	return sheet, nil
}

// ValidateAnswers rejects answers for countries outside the catalog or for
// IDs that are not practices of the catalog
func ValidateAnswers(sheet model.AnswerSheet, catalog *data.Catalog) error {
	countries := make(map[types.CountryCode]bool, len(catalog.Countries))
	for _, c := range catalog.Countries {
		countries[c.Code] = true
	}
	practices := make(map[types.EntryID]bool, len(catalog.Entries))
	for _, e := range catalog.EntryPointers() {
		if e.IsPractice() {
			practices[e.ID] = true
		}
	}

	for code, answers := range sheet {
		if !countries[code] {
			return goerr.Wrap(model.ErrCountryNotFound, "answers given for unknown country",
				goerr.V(CountryKey, code))
		}
		for id := range answers {
			if !practices[id] {
				return goerr.Wrap(ErrUnknownAnswerEntry, "answer refers to an unknown practice",
					goerr.V(CountryKey, code), goerr.V(EntryIDKey, id))
			}
		}
	}
	return nil
}
