package domain

import "time"

// Message represents a single direct message between two users.
// Content and timestamp are immutable once stored; the delivered and seen
// flags only ever flip from false to true.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Delivered  bool      `json:"is_delivered"`
	Seen       bool      `json:"is_seen"`
}

// Reaction is a single emoji annotation a user attached to a message.
// At most one row exists per (message, user, emoji) triple.
type Reaction struct {
	ID        int64     `json:"id"`
	MessageID int64     `json:"message_id"`
	UserID    int64     `json:"user_id"`
	Emoji     string    `json:"emoji"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageWithReactions is a history entry: the stored message plus an
// emoji -> count aggregation of its reactions.
type MessageWithReactions struct {
	Message
	Reactions map[string]int `json:"reactions"`
}
