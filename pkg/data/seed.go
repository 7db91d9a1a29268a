// Package data holds the reference catalog shipped with the binary.
package data

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
)

//go:embed seed.toml
var seed []byte

// Catalog is the on-disk shape of a catalog file
type Catalog struct {
	Levels    []model.LevelDescriptor `toml:"level"`
	Countries []model.Country         `toml:"country"`
	Acronyms  []model.Acronym         `toml:"acronym"`
	Entries   []model.CatalogEntry    `toml:"entry"`
}

// EntryPointers returns the entries as pointers, the form repositories take
func (c *Catalog) EntryPointers() []*model.CatalogEntry {
	out := make([]*model.CatalogEntry, len(c.Entries))
	for i := range c.Entries {
		out[i] = &c.Entries[i]
	}
	return out
}

// Seed returns a fresh copy of the embedded catalog
func Seed() (*Catalog, error) {
	c, err := Decode(bytes.NewReader(seed))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode embedded seed catalog")
	}
	return c, nil
}

// Decode reads a catalog in TOML. Unknown keys are rejected so typos in
// hand edited files surface early.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog TOML")
	}
	return &c, nil
}
