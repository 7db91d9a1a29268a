package usecase

import (
	"github.com/secmon-lab/roadmap/pkg/domain/interfaces"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/layout"
)

type UseCases struct {
	repo       interfaces.Repository
	countries  *model.CountryRegistry
	levels     []model.LevelDescriptor
	acronyms   []model.Acronym
	markerOpts layout.MarkerOptions

	Catalog   *CatalogUseCase
	Answer    *AnswerUseCase
	Dashboard *DashboardUseCase
}

type Option func(*UseCases)

// WithCountries sets the benchmarked countries, in display order
func WithCountries(countries ...model.Country) Option {
	return func(uc *UseCases) {
		uc.countries = model.NewCountryRegistry(countries...)
	}
}

// WithLevels sets the level descriptors shown on maturity cards
func WithLevels(levels []model.LevelDescriptor) Option {
	return func(uc *UseCases) {
		uc.levels = levels
	}
}

func WithAcronyms(acronyms []model.Acronym) Option {
	return func(uc *UseCases) {
		uc.acronyms = acronyms
	}
}

// WithMarkerOptions overrides the country marker geometry
func WithMarkerOptions(opts layout.MarkerOptions) Option {
	return func(uc *UseCases) {
		uc.markerOpts = opts
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		countries:  model.NewCountryRegistry(),
		markerOpts: layout.DefaultMarkerOptions(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Catalog = NewCatalogUseCase(repo)
	uc.Answer = NewAnswerUseCase(repo, uc.countries)
	uc.Dashboard = NewDashboardUseCase(repo, uc.countries, uc.levels, uc.markerOpts)

	return uc
}

// Countries returns the benchmarked countries
func (uc *UseCases) Countries() []model.Country {
	return uc.countries.List()
}

// Levels returns the level descriptors
func (uc *UseCases) Levels() []model.LevelDescriptor {
	out := make([]model.LevelDescriptor, len(uc.levels))
	copy(out, uc.levels)
	return out
}

// Acronyms returns the glossary abbreviations
func (uc *UseCases) Acronyms() []model.Acronym {
	out := make([]model.Acronym, len(uc.acronyms))
	copy(out, uc.acronyms)
	return out
}
