package hub

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Nischal699/spotify-api/internal/domain"
	"github.com/Nischal699/spotify-api/internal/metrics"
	"github.com/Nischal699/spotify-api/internal/service"
)

// Hub is the delivery protocol engine. It owns session lifecycle, decodes
// nothing itself (clients hand it decoded events), validates and applies
// business rules, persists through the message store and dispatches the
// resulting outbound events.
//
// Each connection's events are handled on that connection's read goroutine,
// so a slow persistence call stalls only its own session.
type Hub struct {
	registry    *Registry
	dispatcher  *Dispatcher
	userService service.IUserService
	messageRepo service.IMessageRepository
}

// NewHub creates a new Hub.
func NewHub(registry *Registry, dispatcher *Dispatcher, userService service.IUserService, messageRepo service.IMessageRepository) *Hub {
	return &Hub{
		registry:    registry,
		dispatcher:  dispatcher,
		userService: userService,
		messageRepo: messageRepo,
	}
}

// HandleNewClient registers a fresh connection for userID and starts its
// pumps. A second connection for the same user silently takes over the
// registry mapping.
func (h *Hub) HandleNewClient(conn *websocket.Conn, userID int64) {
	client := &Client{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Hub:       h,
		Conn:      conn,
		Send:      make(chan []byte, sendBufferSize),
	}

	h.registry.Register(userID, client)
	metrics.ConnectedClients.Inc()
	log.Printf("user %d connected (session %s), %d online", userID, client.SessionID, h.registry.Len())

	h.dispatcher.BroadcastExcept(userID, domain.PresenceEvent{
		Type:   domain.EventPresence,
		UserID: userID,
		Status: domain.PresenceOnline,
	})

	go client.writePump()
	go client.readPump()
}

// disconnect tears down a session. The registry mapping is removed only if
// it still points at this client, so a takeover by a newer connection is
// never undone by the old one going away.
func (h *Hub) disconnect(client *Client) {
	if h.registry.Lookup(client.UserID) == client {
		h.registry.Unregister(client.UserID)
		h.dispatcher.BroadcastExcept(client.UserID, domain.PresenceEvent{
			Type:   domain.EventPresence,
			UserID: client.UserID,
			Status: domain.PresenceOffline,
		})
	}
	client.close()
	metrics.ConnectedClients.Dec()
	log.Printf("user %d disconnected (session %s)", client.UserID, client.SessionID)
}

// Shutdown closes every live session and clears the registry.
func (h *Hub) Shutdown() {
	for userID, client := range h.registry.snapshot() {
		h.registry.Unregister(userID)
		client.close()
		if client.Conn != nil {
			client.Conn.Close()
		}
	}
}

// handleEvent applies one inbound event. Errors never tear the connection
// down; the client gets a local notice and the next event proceeds.
func (h *Hub) handleEvent(client *Client, event *domain.ClientEvent) {
	switch event.Type {
	case domain.EventTyping:
		metrics.EventsTotal.WithLabelValues(domain.EventTyping).Inc()
		h.handleTyping(client, event)
	case domain.EventMarkSeen:
		metrics.EventsTotal.WithLabelValues(domain.EventMarkSeen).Inc()
		h.handleMarkSeen(client, event)
	case domain.EventAddReaction:
		metrics.EventsTotal.WithLabelValues(domain.EventAddReaction).Inc()
		h.handleAddReaction(client, event)
	case domain.EventRemoveReaction:
		metrics.EventsTotal.WithLabelValues(domain.EventRemoveReaction).Inc()
		h.handleRemoveReaction(client, event)
	default:
		// Legacy clients omit the type field on chat messages; unknown
		// kinds fall through here as well.
		metrics.EventsTotal.WithLabelValues(domain.EventChatMessage).Inc()
		h.handleChatMessage(client, event)
	}
}

func (h *Hub) handleTyping(client *Client, event *domain.ClientEvent) {
	if event.ReceiverID == nil {
		client.sendError("'receiver_id' must be provided")
		return
	}
	h.dispatcher.SendTo(*event.ReceiverID, domain.TypingEvent{
		Type:     domain.EventTyping,
		SenderID: client.UserID,
	})
}

func (h *Hub) handleChatMessage(client *Client, event *domain.ClientEvent) {
	if event.ReceiverID == nil || event.Message == nil {
		client.sendError("'receiver_id' and 'message' must be provided")
		return
	}
	receiverID := *event.ReceiverID
	if receiverID == client.UserID {
		client.sendError("cannot send a message to yourself")
		return
	}

	// Persistence runs on a background context: a socket dropping mid-event
	// must not roll back a committed message.
	ctx := context.Background()

	receiver, err := h.userService.GetUserByID(ctx, receiverID)
	if err != nil {
		log.Printf("chat_message from user %d: lookup receiver %d: %v", client.UserID, receiverID, err)
		client.sendError("failed to send message")
		return
	}
	if receiver == nil {
		client.sendError("user not found")
		return
	}

	message := &domain.Message{
		SenderID:   client.UserID,
		ReceiverID: receiverID,
		Content:    *event.Message,
		Timestamp:  time.Now().UTC(),
		Delivered:  true,
		Seen:       false,
	}
	if err := h.messageRepo.CreateMessage(ctx, message); err != nil {
		log.Printf("chat_message from user %d: save: %v", client.UserID, err)
		client.sendError("failed to send message")
		return
	}
	metrics.MessagesPersisted.Inc()

	// The message is durable before anyone hears about it.
	payload := domain.ChatMessageEvent{
		Type:       domain.EventChatMessage,
		SenderID:   client.UserID,
		ReceiverID: receiverID,
		Message:    message.Content,
	}
	h.dispatcher.SendTo(receiverID, payload)
	h.dispatcher.SendTo(client.UserID, payload)
}

func (h *Hub) handleMarkSeen(client *Client, event *domain.ClientEvent) {
	if event.SenderID == nil {
		client.sendError("'sender_id' must be provided")
		return
	}
	senderID := *event.SenderID

	if err := h.messageRepo.MarkSeen(context.Background(), senderID, client.UserID); err != nil {
		log.Printf("mark_seen by user %d for sender %d: %v", client.UserID, senderID, err)
		client.sendError("failed to mark messages seen")
		return
	}

	h.dispatcher.SendTo(senderID, domain.SeenAckEvent{
		Type:       domain.EventSeenAck,
		ReceiverID: client.UserID,
	})
}

func (h *Hub) handleAddReaction(client *Client, event *domain.ClientEvent) {
	if event.MessageID == nil || event.Emoji == nil {
		client.sendError("'message_id' and 'emoji' must be provided")
		return
	}

	ctx := context.Background()
	message, err := h.messageRepo.GetMessageByID(ctx, *event.MessageID)
	if err != nil {
		log.Printf("add_reaction by user %d: lookup message %d: %v", client.UserID, *event.MessageID, err)
		client.sendError("failed to add reaction")
		return
	}
	if message == nil {
		client.sendError("message not found")
		return
	}

	reaction := &domain.Reaction{
		MessageID: message.ID,
		UserID:    client.UserID,
		Emoji:     *event.Emoji,
		Timestamp: time.Now().UTC(),
	}
	created, err := h.messageRepo.AddReaction(ctx, reaction)
	if err != nil {
		log.Printf("add_reaction by user %d on message %d: %v", client.UserID, message.ID, err)
		client.sendError("failed to add reaction")
		return
	}
	if !created {
		// Duplicate reaction: no row, no notification.
		return
	}

	h.notifyReaction(message, client.UserID, reaction.Emoji, domain.ReactionAdd)
}

func (h *Hub) handleRemoveReaction(client *Client, event *domain.ClientEvent) {
	if event.MessageID == nil || event.Emoji == nil {
		client.sendError("'message_id' and 'emoji' must be provided")
		return
	}

	ctx := context.Background()
	removed, err := h.messageRepo.RemoveReaction(ctx, *event.MessageID, client.UserID, *event.Emoji)
	if err != nil {
		log.Printf("remove_reaction by user %d on message %d: %v", client.UserID, *event.MessageID, err)
		client.sendError("failed to remove reaction")
		return
	}
	if !removed {
		// Nothing matched: no mutation, no notification.
		return
	}

	message, err := h.messageRepo.GetMessageByID(ctx, *event.MessageID)
	if err != nil || message == nil {
		return
	}
	h.notifyReaction(message, client.UserID, *event.Emoji, domain.ReactionRemove)
}

// notifyReaction pushes a reaction_update to both participants of a message.
func (h *Hub) notifyReaction(message *domain.Message, userID int64, emoji, action string) {
	update := domain.ReactionUpdateEvent{
		Type:      domain.EventReactionUpdate,
		MessageID: message.ID,
		UserID:    userID,
		Emoji:     emoji,
		Action:    action,
	}
	h.dispatcher.SendTo(message.SenderID, update)
	h.dispatcher.SendTo(message.ReceiverID, update)
}
