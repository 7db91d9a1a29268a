package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
	"github.com/secmon-lab/roadmap/pkg/layout"
)

const (
	defaultCurveSamples = 100
	maxCurveSamples     = 1000
)

func (s *Server) listScores(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Scores map[types.CountryCode]model.CountryMaturityScore `json:"scores"`
	}

	scores, err := s.uc.Dashboard.Scores(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Scores: scores})
}

func (s *Server) getScore(w http.ResponseWriter, r *http.Request) {
	score, err := s.uc.Dashboard.Score(r.Context(), countryCode(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, score)
}

func (s *Server) layoutEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.uc.Dashboard.PositionedEntries(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entriesResponse{Entries: entries})
}

func (s *Server) layoutMarkers(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Markers []layout.Marker `json:"markers"`
	}

	markers, err := s.uc.Dashboard.Markers(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Markers: markers})
}

func curveHandler(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Points   []layout.Point `json:"points"`
		Dividers []float64      `json:"dividers"`
	}

	samples := defaultCurveSamples
	if v := r.URL.Query().Get("samples"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 || n > maxCurveSamples {
			handleError(w, r, goerr.Wrap(errBadRequest, "samples must be an integer between 2 and 1000",
				goerr.V("samples", v)))
			return
		}
		samples = n
	}

	writeJSON(w, r, http.StatusOK, response{
		Points:   layout.Curve(samples),
		Dividers: layout.LevelDividers(),
	})
}

func pointHandler(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.ParseFloat(r.URL.Query().Get("score"), 64)
	if err != nil {
		handleError(w, r, goerr.Wrap(errBadRequest, "score must be a number",
			goerr.V("score", r.URL.Query().Get("score"))))
		return
	}
	writeJSON(w, r, http.StatusOK, layout.PointOnCurve(score))
}
