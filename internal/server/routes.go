package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softsage/chatembed/internal/store"
)

// renderRequest is the body of POST /api/v1/render.
type renderRequest struct {
	Markdown string `json:"markdown"`
	// Unsafe opts into raw HTML rendering. Only honored for trusted
	// deployments; the widget itself always uses the sanitizing path.
	Unsafe bool `json:"unsafe,omitempty"`
}

// renderResponse is the rendered HTML payload.
type renderResponse struct {
	HTML string `json:"html"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	renderer := s.safe
	if req.Unsafe {
		renderer = s.unsafe
	}
	writeJSON(w, http.StatusOK, renderResponse{HTML: renderer.Parse(req.Markdown)})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.theme)
}

// putConversationRequest carries the record to persist. ChatID is merged
// into the record by the store.
type putConversationRequest struct {
	ChatID string       `json:"chatId"`
	Record store.Record `json:"record"`
}

func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	chatflowID := chi.URLParam(r, "chatflowID")
	writeJSON(w, http.StatusOK, s.store.Load(chatflowID))
}

func (s *Server) handlePutConversation(w http.ResponseWriter, r *http.Request) {
	chatflowID := chi.URLParam(r, "chatflowID")

	var req putConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Record == nil {
		req.Record = store.Record{}
	}

	s.store.Save(chatflowID, req.ChatID, req.Record)
	// Echo back what is actually stored: the save may have been dropped by
	// the size cap.
	writeJSON(w, http.StatusOK, s.store.Load(chatflowID))
}

func (s *Server) handleClearConversation(w http.ResponseWriter, r *http.Request) {
	chatflowID := chi.URLParam(r, "chatflowID")
	s.store.ClearHistory(chatflowID)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
