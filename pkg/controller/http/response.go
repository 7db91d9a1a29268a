package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/usecase"
	"github.com/secmon-lab/roadmap/pkg/utils/errutil"
	"github.com/secmon-lab/roadmap/pkg/utils/safe"
)

const maxBodyBytes = 1 << 20

var errBadRequest = goerr.New("bad request")

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(errors.Join(errBadRequest, err), "failed to decode request body")
	}
	return nil
}

// handleError maps use case errors onto HTTP status codes
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, usecase.ErrInvalidEntry),
		errors.Is(err, usecase.ErrInvalidAction),
		errors.Is(err, usecase.ErrNotPractice):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrEntryNotFound),
		errors.Is(err, usecase.ErrActionNotFound),
		errors.Is(err, usecase.ErrUnknownCountry):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
