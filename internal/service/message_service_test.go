package service

import (
	"context"
	"testing"
	"time"

	"github.com/Nischal699/spotify-api/internal/domain"
)

type stubMessageRepo struct {
	messages      []*domain.Message
	reactions     map[int64]map[string]int
	markSeenCalls [][2]int64
}

func (s *stubMessageRepo) CreateMessage(context.Context, *domain.Message) error { return nil }

func (s *stubMessageRepo) GetMessageByID(context.Context, int64) (*domain.Message, error) {
	return nil, nil
}

func (s *stubMessageRepo) MarkSeen(_ context.Context, senderID, receiverID int64) error {
	s.markSeenCalls = append(s.markSeenCalls, [2]int64{senderID, receiverID})
	return nil
}

func (s *stubMessageRepo) GetHistory(_ context.Context, userA, userB int64, limit, offset int) ([]*domain.Message, error) {
	// Newest first, both directions only, like the real repository.
	var out []*domain.Message
	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubMessageRepo) AddReaction(context.Context, *domain.Reaction) (bool, error) {
	return false, nil
}

func (s *stubMessageRepo) RemoveReaction(context.Context, int64, int64, string) (bool, error) {
	return false, nil
}

func (s *stubMessageRepo) GetReactionCounts(_ context.Context, messageID int64) (map[string]int, error) {
	return s.reactions[messageID], nil
}

func TestGetConversation_OldestFirstWithReactionCounts(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubMessageRepo{
		messages: []*domain.Message{
			{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hello", Timestamp: base},
			{ID: 2, SenderID: 2, ReceiverID: 1, Content: "hey", Timestamp: base.Add(time.Minute)},
			{ID: 3, SenderID: 1, ReceiverID: 3, Content: "other convo", Timestamp: base.Add(2 * time.Minute)},
			{ID: 4, SenderID: 1, ReceiverID: 2, Content: "how are you", Timestamp: base.Add(3 * time.Minute)},
		},
		reactions: map[int64]map[string]int{
			2: {"👍": 2, "🔥": 1},
		},
	}
	svc := NewMessageService(repo)

	history, err := svc.GetConversation(context.Background(), 2, 1, 20, 0)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}

	wantIDs := []int64{1, 2, 4}
	if len(history) != len(wantIDs) {
		t.Fatalf("got %d messages, want %d", len(history), len(wantIDs))
	}
	for i, entry := range history {
		if entry.ID != wantIDs[i] {
			t.Errorf("history[%d].ID = %d, want %d (oldest first)", i, entry.ID, wantIDs[i])
		}
	}
	if history[1].Reactions["👍"] != 2 || history[1].Reactions["🔥"] != 1 {
		t.Errorf("reactions = %v", history[1].Reactions)
	}
}

func TestGetConversation_MarksOtherUsersMessagesSeen(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo)

	if _, err := svc.GetConversation(context.Background(), 2, 1, 20, 0); err != nil {
		t.Fatalf("GetConversation: %v", err)
	}

	if len(repo.markSeenCalls) != 1 {
		t.Fatalf("MarkSeen calls = %d, want 1", len(repo.markSeenCalls))
	}
	// Messages *from* the other user *to* the reader get flipped.
	if repo.markSeenCalls[0] != [2]int64{1, 2} {
		t.Errorf("MarkSeen called with %v, want sender=1 receiver=2", repo.markSeenCalls[0])
	}
}

func TestGetConversation_LimitAndOffset(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubMessageRepo{}
	for i := int64(1); i <= 5; i++ {
		repo.messages = append(repo.messages, &domain.Message{
			ID: i, SenderID: 1, ReceiverID: 2, Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}
	svc := NewMessageService(repo)

	history, err := svc.GetConversation(context.Background(), 1, 2, 2, 1)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}

	// Newest-first window skips ID 5, takes IDs 4 and 3, exposed oldest first.
	wantIDs := []int64{3, 4}
	if len(history) != len(wantIDs) {
		t.Fatalf("got %d messages, want %d", len(history), len(wantIDs))
	}
	for i, entry := range history {
		if entry.ID != wantIDs[i] {
			t.Errorf("history[%d].ID = %d, want %d", i, entry.ID, wantIDs[i])
		}
	}
}
