package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/softsage/chatembed/internal/request"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	ChatflowID string `json:"chatflowId"` // empty falls back to the configured default
	ChatID     string `json:"chatId"`     // empty for new conversations
	Content    string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type    string `json:"type"` // "response" or "error"
	ChatID  string `json:"chatId"`
	Content string `json:"content"` // rendered HTML for responses
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "", "invalid message format")
			continue
		}

		if req.Content == "" {
			s.sendError(conn, req.ChatID, "content is required")
			continue
		}

		s.handleChatMessage(conn, r, req)
	}
}

func (s *Server) handleChatMessage(conn *websocket.Conn, r *http.Request, req chatRequest) {
	chatflowID := req.ChatflowID
	if chatflowID == "" {
		chatflowID = s.cfg.ChatflowID
	}
	if chatflowID == "" {
		s.sendError(conn, req.ChatID, "no chatflow configured")
		return
	}

	chatID := req.ChatID
	if chatID == "" {
		chatID = uuid.New().String()
	}

	s.appendMessage(chatflowID, chatID, "user", req.Content)

	reply, err := s.predict(r, chatflowID, chatID, req.Content)
	if err != nil {
		s.sendError(conn, chatID, "prediction failed: "+err.Error())
		return
	}

	s.appendMessage(chatflowID, chatID, "assistant", reply)

	s.sendResponse(conn, chatResponse{
		Type:    "response",
		ChatID:  chatID,
		Content: s.safe.Parse(reply),
	})
}

// predict asks the upstream chatflow for an answer. Without an upstream
// host the server runs in echo mode, which is enough for widget
// development against a local page.
func (s *Server) predict(r *http.Request, chatflowID, chatID, question string) (string, error) {
	if s.cfg.APIHost == "" {
		return question, nil
	}

	res := request.Do(r.Context(), request.Options{
		URL:    s.cfg.APIHost + "/api/v1/prediction/" + chatflowID,
		Method: http.MethodPost,
		Body: map[string]string{
			"question": question,
			"chatId":   chatID,
		},
	})
	if res.Err != nil {
		return "", res.Err
	}

	if m, ok := res.Data.(map[string]any); ok {
		if text, ok := m["text"].(string); ok {
			return text, nil
		}
	}
	if text, ok := res.Data.(string); ok {
		return text, nil
	}
	return "", errors.New("unexpected prediction payload")
}

// appendMessage loads the conversation, appends one history entry and saves
// it back through the capped store.
func (s *Server) appendMessage(chatflowID, chatID, role, content string) {
	rec := s.store.Load(chatflowID)

	history, _ := rec["chatHistory"].([]any)
	history = append(history, map[string]any{
		"role":      role,
		"content":   content,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	rec["chatHistory"] = history

	s.store.Save(chatflowID, chatID, rec)
}

func (s *Server) sendResponse(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, chatID, message string) {
	resp := chatResponse{
		Type:    "error",
		ChatID:  chatID,
		Content: message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write error: %v", err)
	}
}
