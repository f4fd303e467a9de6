package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Nischal699/spotify-api/internal/hub"
	"github.com/Nischal699/spotify-api/internal/service"
)

const (
	defaultHistoryLimit  = 20
	defaultHistoryOffset = 0
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatHandler serves the websocket endpoint and the history query surface.
type ChatHandler struct {
	hub            *hub.Hub
	userService    service.IUserService
	messageService service.IMessageService
	verifier       service.ITokenVerifier
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(h *hub.Hub, userService service.IUserService, messageService service.IMessageService, verifier service.ITokenVerifier) *ChatHandler {
	return &ChatHandler{
		hub:            h,
		userService:    userService,
		messageService: messageService,
		verifier:       verifier,
	}
}

// HandleConnection upgrades GET /ws/chat/{user_id}?token=... to a websocket
// session. The token must verify and belong to the user id in the path.
func (h *ChatHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["user_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	claims, err := h.verifier.Verify(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	if claims.UserID != userID {
		http.Error(w, "token does not match user", http.StatusForbidden)
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade error for user %d: %v", userID, err)
		return
	}

	h.hub.HandleNewClient(conn, userID)
}

// HandleHistory serves GET /chat/history?user_id&other_user_id&limit&offset.
// Messages come back oldest first with reaction counts; reading history
// marks the other user's prior messages seen.
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		http.Error(w, "'user_id' must be provided", http.StatusBadRequest)
		return
	}
	otherUserID, err := strconv.ParseInt(r.URL.Query().Get("other_user_id"), 10, 64)
	if err != nil {
		http.Error(w, "'other_user_id' must be provided", http.StatusBadRequest)
		return
	}

	limit := queryInt(r, "limit", defaultHistoryLimit)
	offset := queryInt(r, "offset", defaultHistoryOffset)

	history, err := h.messageService.GetConversation(r.Context(), userID, otherUserID, limit, offset)
	if err != nil {
		log.Printf("history for users %d/%d: %v", userID, otherUserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(history); err != nil {
		log.Printf("history encode: %v", err)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
