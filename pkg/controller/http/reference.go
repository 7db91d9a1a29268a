package http

import (
	"net/http"

	"github.com/secmon-lab/roadmap/pkg/domain/model"
)

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// listLevels serves the maturity cards: level descriptors with the
// practices and risks of each level
func (s *Server) listLevels(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Levels []model.MaturityLevel `json:"levels"`
	}

	levels, err := s.uc.Dashboard.MaturityLevels(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Levels: levels})
}

func (s *Server) listCountries(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Countries []model.Country `json:"countries"`
	}
	writeJSON(w, r, http.StatusOK, response{Countries: s.uc.Countries()})
}

func (s *Server) listAcronyms(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Acronyms []model.Acronym `json:"acronyms"`
	}
	writeJSON(w, r, http.StatusOK, response{Acronyms: s.uc.Acronyms()})
}
