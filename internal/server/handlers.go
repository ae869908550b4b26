package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MitulNakrani003/GroupBillSplitter/internal/service"
)

type newBillRequest struct {
	Description string `json:"description"`
}

type addParticipantRequest struct {
	Name string `json:"name" validate:"required"`
}

type addItemRequest struct {
	Name         string   `json:"name" validate:"required"`
	Price        float64  `json:"price" validate:"gte=0"`
	Participants []string `json:"participants" validate:"dive,required"`
	Group        string   `json:"group"`
}

// handleNewBill starts a fresh bill, replacing the current one wholesale.
func (s *Server) handleNewBill(w http.ResponseWriter, r *http.Request) {
	var req newBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.svc.NewBill(req.Description)
	writeJSON(w, http.StatusCreated, map[string]string{"bill_title": req.Description})
}

// handleSummary returns the interchange document for the current bill.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	doc := s.svc.Document()
	data, err := json.Marshal(doc)
	if err != nil {
		slog.Error("Summary encoding failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to encode summary")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleTotals returns the per-participant totals snapshot.
func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"totals": s.svc.Totals()})
}

// handleExport streams the summary document as a download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="bill_summary.json"`)

	// Export encodes before writing, so a failure here has not touched
	// the response yet and a clean error reply is still possible.
	if err := s.svc.Export(w); err != nil {
		slog.Error("Export failed", "error", err)
		w.Header().Del("Content-Disposition")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.Exports.Inc()
}

// handleAddItem validates and adds one line item.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	duplicate, err := s.svc.AddItem(r.Context(), service.AddItemInput{
		Name:         req.Name,
		Price:        req.Price,
		Participants: req.Participants,
		Group:        req.Group,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.metrics.ItemsAdded.Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"duplicate_name": duplicate,
		"totals":         s.svc.Totals(),
	})
}

// handleRemoveItem removes the first item matching the name. A miss is
// reported, not an error.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	removed := s.svc.RemoveItem(name)
	if removed {
		s.metrics.ItemsRemoved.Inc()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"removed": removed,
		"totals":  s.svc.Totals(),
	})
}

// handleAddParticipant registers a participant on the current bill.
func (s *Server) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.svc.AddParticipant(r.Context(), req.Name); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

// handleKnownParticipants returns the names remembered across sessions.
func (s *Server) handleKnownParticipants(w http.ResponseWriter, r *http.Request) {
	names, err := s.svc.KnownParticipants(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"participants": names})
}

// handleGroups returns the stored group presets.
func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.svc.Groups(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

// handleSaveGroups replaces the stored group presets.
func (s *Server) handleSaveGroups(w http.ResponseWriter, r *http.Request) {
	var groups map[string][]string
	if err := json.NewDecoder(r.Body).Decode(&groups); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.svc.SaveGroups(r.Context(), groups); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": len(groups)})
}

// writeServiceError maps service errors to HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrNoParticipants):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encoding failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
