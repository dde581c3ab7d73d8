package server

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/heritagecraft/sousuo/internal/models"
	"github.com/heritagecraft/sousuo/internal/source"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request",
		zap.String("text", query.Text),
		zap.String("language", query.Language),
		zap.Int("limit", query.Limit),
	)
	response, err := s.engine.Search(r.Context(), &query)
	if err != nil {
		if models.IsValidationError(err) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var input models.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	record, err := s.store.Add(&input)
	if err != nil {
		if models.IsValidationError(err) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("create record failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, record)
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := s.store.Get(id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "record not found")
		return
	}
	s.respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	record, err := s.store.Update(id, &input)
	if err != nil {
		switch {
		case errors.Is(err, source.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "record not found")
		case models.IsValidationError(err):
			s.respondError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error("update record failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Remove(id); err != nil {
		if errors.Is(err, source.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "record not found")
			return
		}
		s.logger.Error("delete record failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": s.store.Size(),
	})
}
