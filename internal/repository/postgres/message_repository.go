package postgres

import (
	"context"
	"database/sql"

	"github.com/Nischal699/spotify-api/internal/domain"
)

// MessageRepository handles database operations for messages and reactions.
type MessageRepository struct {
	DB *sql.DB
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

// CreateMessage inserts a new message and fills in its store-assigned ID.
func (r *MessageRepository) CreateMessage(ctx context.Context, message *domain.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, content, timestamp, is_delivered, is_seen)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.DB.QueryRowContext(ctx, query,
		message.SenderID, message.ReceiverID, message.Content,
		message.Timestamp, message.Delivered, message.Seen,
	).Scan(&message.ID)
}

// GetMessageByID retrieves a message by its ID.
func (r *MessageRepository) GetMessageByID(ctx context.Context, id int64) (*domain.Message, error) {
	message := &domain.Message{}
	query := `SELECT id, sender_id, receiver_id, content, timestamp, is_delivered, is_seen
		FROM messages WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&message.ID, &message.SenderID, &message.ReceiverID, &message.Content,
		&message.Timestamp, &message.Delivered, &message.Seen,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, err
	}
	return message, nil
}

// MarkSeen flips seen to true on every unseen message from senderID to
// receiverID.
func (r *MessageRepository) MarkSeen(ctx context.Context, senderID, receiverID int64) error {
	query := `UPDATE messages SET is_seen = TRUE
		WHERE sender_id = $1 AND receiver_id = $2 AND is_seen = FALSE`
	_, err := r.DB.ExecContext(ctx, query, senderID, receiverID)
	return err
}

// GetHistory retrieves messages exchanged between userA and userB in both
// directions, newest first.
func (r *MessageRepository) GetHistory(ctx context.Context, userA, userB int64, limit, offset int) ([]*domain.Message, error) {
	query := `SELECT id, sender_id, receiver_id, content, timestamp, is_delivered, is_seen
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY timestamp DESC, id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.DB.QueryContext(ctx, query, userA, userB, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		message := &domain.Message{}
		if err := rows.Scan(
			&message.ID, &message.SenderID, &message.ReceiverID, &message.Content,
			&message.Timestamp, &message.Delivered, &message.Seen,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

// AddReaction inserts the reaction unless an identical one already exists.
// It reports whether a row was created.
func (r *MessageRepository) AddReaction(ctx context.Context, reaction *domain.Reaction) (bool, error) {
	query := `INSERT INTO message_reactions (message_id, user_id, emoji, timestamp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uq_message_reactions DO NOTHING
		RETURNING id`
	err := r.DB.QueryRowContext(ctx, query,
		reaction.MessageID, reaction.UserID, reaction.Emoji, reaction.Timestamp,
	).Scan(&reaction.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil // Duplicate reaction is a no-op
		}
		return false, err
	}
	return true, nil
}

// RemoveReaction deletes the matching reaction and reports whether a row
// existed.
func (r *MessageRepository) RemoveReaction(ctx context.Context, messageID, userID int64, emoji string) (bool, error) {
	query := `DELETE FROM message_reactions WHERE message_id = $1 AND user_id = $2 AND emoji = $3`
	result, err := r.DB.ExecContext(ctx, query, messageID, userID, emoji)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetReactionCounts returns an emoji -> count mapping for a message.
func (r *MessageRepository) GetReactionCounts(ctx context.Context, messageID int64) (map[string]int, error) {
	query := `SELECT emoji, COUNT(*) FROM message_reactions WHERE message_id = $1 GROUP BY emoji`
	rows, err := r.DB.QueryContext(ctx, query, messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var emoji string
		var count int
		if err := rows.Scan(&emoji, &count); err != nil {
			return nil, err
		}
		counts[emoji] = count
	}
	return counts, rows.Err()
}
