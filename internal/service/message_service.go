package service

import (
	"context"

	"github.com/Nischal699/spotify-api/internal/domain"
)

// MessageService provides conversation history for the HTTP query surface.
type MessageService struct {
	messageRepo IMessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo IMessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// GetConversation returns the messages exchanged between userID and
// otherUserID, oldest first, each enriched with its reaction counts.
// Reading history marks the other user's prior messages as seen.
func (s *MessageService) GetConversation(ctx context.Context, userID, otherUserID int64, limit, offset int) ([]*domain.MessageWithReactions, error) {
	if err := s.messageRepo.MarkSeen(ctx, otherUserID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.GetHistory(ctx, userID, otherUserID, limit, offset)
	if err != nil {
		return nil, err
	}

	// The repository returns newest first; the client renders oldest first.
	history := make([]*domain.MessageWithReactions, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		counts, err := s.messageRepo.GetReactionCounts(ctx, messages[i].ID)
		if err != nil {
			return nil, err
		}
		history = append(history, &domain.MessageWithReactions{
			Message:   *messages[i],
			Reactions: counts,
		})
	}

	return history, nil
}
