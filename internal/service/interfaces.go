package service

import (
	"context"

	"github.com/Nischal699/spotify-api/internal/domain"
)

// --- Service Interfaces ---

// IUserService defines the interface for user-related business logic.
type IUserService interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// IMessageService defines the interface for the history query surface.
type IMessageService interface {
	GetConversation(ctx context.Context, userID, otherUserID int64, limit, offset int) ([]*domain.MessageWithReactions, error)
}

// ITokenVerifier verifies access tokens issued by the auth service.
type ITokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}

// --- Repository Interfaces ---

// IUserRepository defines the interface for user persistence.
type IUserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// IMessageRepository defines the interface for message and reaction
// persistence. Methods returning (nil, nil) indicate a missing row rather
// than an error.
type IMessageRepository interface {
	CreateMessage(ctx context.Context, message *domain.Message) error
	GetMessageByID(ctx context.Context, id int64) (*domain.Message, error)
	// MarkSeen flips seen to true on every unseen message from senderID to
	// receiverID. Already-seen messages are untouched.
	MarkSeen(ctx context.Context, senderID, receiverID int64) error
	// GetHistory returns messages exchanged between userA and userB in both
	// directions, newest first.
	GetHistory(ctx context.Context, userA, userB int64, limit, offset int) ([]*domain.Message, error)
	// AddReaction inserts the reaction unless an identical one already
	// exists. It reports whether a row was created.
	AddReaction(ctx context.Context, reaction *domain.Reaction) (bool, error)
	// RemoveReaction deletes the matching reaction and reports whether a
	// row existed.
	RemoveReaction(ctx context.Context, messageID, userID int64, emoji string) (bool, error)
	GetReactionCounts(ctx context.Context, messageID int64) (map[string]int, error)
}
