package domain

// Event kinds carried in the "type" field of the websocket protocol.
const (
	EventTyping         = "typing"
	EventChatMessage    = "chat_message"
	EventMarkSeen       = "mark_seen"
	EventSeenAck        = "seen_ack"
	EventAddReaction    = "add_reaction"
	EventRemoveReaction = "remove_reaction"
	EventReactionUpdate = "reaction_update"
	EventPresence       = "presence"
	EventError          = "error"
)

// Reaction update actions.
const (
	ReactionAdd    = "add"
	ReactionRemove = "remove"
)

// Presence statuses.
const (
	PresenceOnline  = "online"
	PresenceOffline = "offline"
)

// ClientEvent is the inbound frame read from a connection. Fields are
// pointers so a missing field can be told apart from a zero value; which
// fields are required depends on Type.
type ClientEvent struct {
	Type       string  `json:"type"`
	ReceiverID *int64  `json:"receiver_id,omitempty"`
	Message    *string `json:"message,omitempty"`
	SenderID   *int64  `json:"sender_id,omitempty"`
	MessageID  *int64  `json:"message_id,omitempty"`
	Emoji      *string `json:"emoji,omitempty"`
}

// ChatMessageEvent is pushed to the receiver of a new direct message and
// echoed back to its sender.
type ChatMessageEvent struct {
	Type       string `json:"type"`
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	Message    string `json:"message"`
}

// TypingEvent is an ephemeral notice that the sender is typing.
type TypingEvent struct {
	Type     string `json:"type"`
	SenderID int64  `json:"sender_id"`
}

// SeenAckEvent tells the original sender that ReceiverID has seen their
// messages.
type SeenAckEvent struct {
	Type       string `json:"type"`
	ReceiverID int64  `json:"receiver_id"`
}

// ReactionUpdateEvent notifies the two participants of a message that a
// reaction was added or removed.
type ReactionUpdateEvent struct {
	Type      string `json:"type"`
	MessageID int64  `json:"message_id"`
	UserID    int64  `json:"user_id"`
	Emoji     string `json:"emoji"`
	Action    string `json:"action"`
}

// PresenceEvent announces a user going online or offline.
type PresenceEvent struct {
	Type   string `json:"type"`
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}

// ErrorEvent is a local notice sent back to the connection that caused it.
type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
