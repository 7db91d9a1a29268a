package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

type entriesResponse struct {
	Entries []*model.CatalogEntry `json:"entries"`
}

func entryID(r *http.Request) types.EntryID {
	return types.EntryID(chi.URLParam(r, "id"))
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.uc.Catalog.ListEntries(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entriesResponse{Entries: entries})
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.uc.Catalog.GetEntry(r.Context(), entryID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entry)
}

func (s *Server) saveEntry(w http.ResponseWriter, r *http.Request) {
	var entry model.CatalogEntry
	if err := decodeJSON(w, r, &entry); err != nil {
		handleError(w, r, err)
		return
	}

	saved, err := s.uc.Catalog.SaveEntry(r.Context(), &entry)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, saved)
}

// deleteEntry requires ?confirm=true; without it the entry is kept and 409
// is returned
func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := s.uc.Catalog.DeleteEntry(r.Context(), entryID(r), confirmed); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setPriority(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Priority int `json:"priority"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	saved, err := s.uc.Catalog.SetPriority(r.Context(), entryID(r), req.Priority)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, saved)
}

func (s *Server) addAction(w http.ResponseWriter, r *http.Request) {
	var action model.Action
	if err := decodeJSON(w, r, &action); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.uc.Catalog.AddAction(r.Context(), entryID(r), action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateAction(w http.ResponseWriter, r *http.Request) {
	var action model.Action
	if err := decodeJSON(w, r, &action); err != nil {
		handleError(w, r, err)
		return
	}
	action.ID = types.ActionID(chi.URLParam(r, "actionID"))

	updated, err := s.uc.Catalog.UpdateAction(r.Context(), entryID(r), action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteAction(w http.ResponseWriter, r *http.Request) {
	actionID := types.ActionID(chi.URLParam(r, "actionID"))
	if err := s.uc.Catalog.DeleteAction(r.Context(), entryID(r), actionID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) diagnosis(w http.ResponseWriter, r *http.Request) {
	d, err := s.uc.Catalog.DiagnosisPractices(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, d)
}
