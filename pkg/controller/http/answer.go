package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

func countryCode(r *http.Request) types.CountryCode {
	return types.CountryCode(chi.URLParam(r, "country"))
}

func (s *Server) getAnswers(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Country types.CountryCode `json:"country"`
		Answers model.Answers     `json:"answers"`
	}

	country := countryCode(r)
	answers, err := s.uc.Answer.Answers(r.Context(), country)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response{Country: country, Answers: answers})
}

func (s *Server) setAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer *bool `json:"answer"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Answer == nil {
		handleError(w, r, errBadRequest)
		return
	}

	practiceID := types.EntryID(chi.URLParam(r, "practiceID"))
	if err := s.uc.Answer.SetAnswer(r.Context(), countryCode(r), practiceID, *req.Answer); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
