package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/interfaces"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/layout"
	"github.com/secmon-lab/roadmap/pkg/scoring"
	"github.com/secmon-lab/roadmap/pkg/utils/logging"
	"golang.org/x/sync/singleflight"
)

// DashboardUseCase serves every value derived from the catalog and the
// answers. Derived values are computed once per pair of repository versions.
type DashboardUseCase struct {
	repo       interfaces.Repository
	countries  *model.CountryRegistry
	levels     []model.LevelDescriptor
	markerOpts layout.MarkerOptions

	group    singleflight.Group
	mu       sync.RWMutex
	cached   *dashboard
	computed atomic.Int64
}

type dashboard struct {
	catalogVersion uint64
	answerVersion  uint64

	scores     map[types.CountryCode]model.CountryMaturityScore
	positioned []*model.CatalogEntry
	markers    []layout.Marker
	levels     []model.MaturityLevel
}

func NewDashboardUseCase(repo interfaces.Repository, countries *model.CountryRegistry, levels []model.LevelDescriptor, markerOpts layout.MarkerOptions) *DashboardUseCase {
	return &DashboardUseCase{
		repo:       repo,
		countries:  countries,
		levels:     levels,
		markerOpts: markerOpts,
	}
}

// Scores returns the maturity score of every benchmarked country
func (uc *DashboardUseCase) Scores(ctx context.Context) (map[types.CountryCode]model.CountryMaturityScore, error) {
	d, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[types.CountryCode]model.CountryMaturityScore, len(d.scores))
	for code, s := range d.scores {
		out[code] = s.Copy()
	}
	return out, nil
}

// Score returns the maturity score of a single country
func (uc *DashboardUseCase) Score(ctx context.Context, country types.CountryCode) (*model.CountryMaturityScore, error) {
	if !uc.countries.Has(country) {
		return nil, goerr.Wrap(ErrUnknownCountry, "country is not benchmarked", goerr.V(CountryKey, country))
	}

	d, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}

	s := d.scores[country].Copy()
	return &s, nil
}

// PositionedEntries returns the catalog with horizontal positions assigned
func (uc *DashboardUseCase) PositionedEntries(ctx context.Context) ([]*model.CatalogEntry, error) {
	d, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.CatalogEntry, len(d.positioned))
	for i, e := range d.positioned {
		out[i] = e.Copy()
	}
	return out, nil
}

// Markers returns the country markers placed on the roadmap curve
func (uc *DashboardUseCase) Markers(ctx context.Context) ([]layout.Marker, error) {
	d, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]layout.Marker, len(d.markers))
	for i, m := range d.markers {
		out[i] = m
		out[i].Score = m.Score.Copy()
	}
	return out, nil
}

// MaturityLevels returns one card per level with its practices and the
// risks they mitigate
func (uc *DashboardUseCase) MaturityLevels(ctx context.Context) ([]model.MaturityLevel, error) {
	d, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.MaturityLevel, len(d.levels))
	for i, l := range d.levels {
		out[i] = l
		out[i].Practices = make([]model.PracticeProgress, len(l.Practices))
		for j, p := range l.Practices {
			out[i].Practices[j] = p.Copy()
		}
		out[i].Risks = append([]string{}, l.Risks...)
	}
	return out, nil
}

func (uc *DashboardUseCase) current(ctx context.Context) (*dashboard, error) {
	cv := uc.repo.Catalog().Version()
	av := uc.repo.Answer().Version()

	uc.mu.RLock()
	cached := uc.cached
	uc.mu.RUnlock()
	if cached != nil && cached.catalogVersion == cv && cached.answerVersion == av {
		return cached, nil
	}

	key := fmt.Sprintf("%d:%d", cv, av)
	v, err, _ := uc.group.Do(key, func() (any, error) {
		uc.mu.RLock()
		cached := uc.cached
		uc.mu.RUnlock()
		if cached != nil && cached.catalogVersion == cv && cached.answerVersion == av {
			return cached, nil
		}

		d, err := uc.compute(ctx, cv, av)
		if err != nil {
			return nil, err
		}

		uc.mu.Lock()
		if uc.cached == nil || (uc.cached.catalogVersion <= cv && uc.cached.answerVersion <= av) {
			uc.cached = d
		}
		uc.mu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dashboard), nil
}

func (uc *DashboardUseCase) compute(ctx context.Context, cv, av uint64) (*dashboard, error) {
	entries, err := uc.repo.Catalog().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list catalog entries")
	}
	sheet, err := uc.repo.Answer().All(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get answers")
	}

	scores := scoring.ComputeAll(entries, sheet, uc.countries.Codes())
	d := &dashboard{
		catalogVersion: cv,
		answerVersion:  av,
		scores:         scores,
		positioned:     layout.PositionEntries(entries),
		markers:        layout.PlaceMarkers(scores, uc.countries.List(), uc.markerOpts),
		levels:         uc.maturityLevels(entries),
	}

	uc.computed.Add(1)
	logging.From(ctx).Debug("dashboard recomputed",
		"catalog_version", cv,
		"answer_version", av,
		"entries", len(entries),
	)
	return d, nil
}

func (uc *DashboardUseCase) maturityLevels(entries []*model.CatalogEntry) []model.MaturityLevel {
	descriptors := make(map[types.Level]model.LevelDescriptor, len(uc.levels))
	for _, l := range uc.levels {
		descriptors[l.Level] = l
	}

	levels := make([]model.MaturityLevel, 0, types.MaxLevel)
	for _, level := range types.AllLevels() {
		desc, ok := descriptors[level]
		if !ok {
			desc = model.LevelDescriptor{Level: level}
		}

		ml := model.MaturityLevel{
			LevelDescriptor: desc,
			Practices:       []model.PracticeProgress{},
			Risks:           []string{},
		}
		risks := make(map[string]bool)
		for _, e := range entries {
			if !e.IsPractice() || e.Tier() != level {
				continue
			}
			ml.Practices = append(ml.Practices, model.WithProgress(e))
			if e.AssociatedRisk != "" && !risks[e.AssociatedRisk] {
				risks[e.AssociatedRisk] = true
				ml.Risks = append(ml.Risks, e.AssociatedRisk)
			}
		}

		sort.SliceStable(ml.Practices, func(i, j int) bool {
			return ml.Practices[i].Name < ml.Practices[j].Name
		})
		sort.Strings(ml.Risks)
		levels = append(levels, ml)
	}
	return levels
}
