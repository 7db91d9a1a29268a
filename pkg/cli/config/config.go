package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/data"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/utils/safe"
)

// LoadCatalog loads and validates a catalog file in TOML
func LoadCatalog(ctx context.Context, path string) (*data.Catalog, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "catalog file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to open catalog file", goerr.V(ConfigPathKey, path))
	}
	defer safe.Close(ctx, f)

	catalog, err := data.Decode(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog", goerr.V(ConfigPathKey, path))
	}

	if err := ValidateCatalog(catalog); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V(ConfigPathKey, path))
	}

	return catalog, nil
}

// ValidateCatalog checks every entry, country and level descriptor, and
// rejects duplicates
func ValidateCatalog(c *data.Catalog) error {
	levels := make(map[types.Level]bool)
	for _, l := range c.Levels {
		if !l.Level.Valid() {
			return goerr.Wrap(ErrInvalidLevel, "invalid level descriptor", goerr.V(LevelKey, l.Level))
		}
		if levels[l.Level] {
			return goerr.Wrap(ErrDuplicateLevel, "level described twice", goerr.V(LevelKey, l.Level))
		}
		levels[l.Level] = true
	}

	countries := make(map[types.CountryCode]bool)
	for _, country := range c.Countries {
		if err := country.Code.Validate(); err != nil {
			return goerr.Wrap(err, "invalid country", goerr.V(CountryKey, country.Code))
		}
		if country.Name == "" {
			return goerr.Wrap(ErrInvalidConfig, "country name is required", goerr.V(CountryKey, country.Code))
		}
		if countries[country.Code] {
			return goerr.Wrap(ErrDuplicateCountry, "country listed twice", goerr.V(CountryKey, country.Code))
		}
		countries[country.Code] = true
	}

	ids := make(map[types.EntryID]bool)
	for _, e := range c.EntryPointers() {
		if err := e.ID.Validate(); err != nil {
			return goerr.Wrap(err, "invalid entry ID", goerr.V(EntryIDKey, e.ID))
		}
		if err := e.Validate(); err != nil {
			return goerr.Wrap(err, "invalid entry")
		}
		if ids[e.ID] {
			return goerr.Wrap(ErrDuplicateEntryID, "entry ID used twice", goerr.V(EntryIDKey, e.ID))
		}
		ids[e.ID] = true
	}

	return nil
}
