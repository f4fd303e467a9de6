package hub

import (
	"testing"

	"github.com/Nischal699/spotify-api/internal/domain"
)

func TestDispatcher_SendToOnlineUser(t *testing.T) {
	registry := NewRegistry()
	dispatcher := NewDispatcher(registry)
	client := &Client{UserID: 1, Send: make(chan []byte, 1)}
	registry.Register(1, client)

	delivered := dispatcher.SendTo(1, domain.TypingEvent{Type: domain.EventTyping, SenderID: 2})

	if !delivered {
		t.Error("SendTo() = false, want true for an online user")
	}
	if len(client.Send) != 1 {
		t.Errorf("queued events = %d, want 1", len(client.Send))
	}
}

func TestDispatcher_SendToOfflineUserDropsSilently(t *testing.T) {
	registry := NewRegistry()
	dispatcher := NewDispatcher(registry)

	delivered := dispatcher.SendTo(9, domain.TypingEvent{Type: domain.EventTyping, SenderID: 2})

	if delivered {
		t.Error("SendTo() = true, want false for an offline user")
	}
}

func TestDispatcher_SendToFullBufferReportsFailure(t *testing.T) {
	registry := NewRegistry()
	dispatcher := NewDispatcher(registry)
	client := &Client{UserID: 1, Send: make(chan []byte)} // zero capacity, nobody draining
	registry.Register(1, client)

	delivered := dispatcher.SendTo(1, domain.TypingEvent{Type: domain.EventTyping, SenderID: 2})

	if delivered {
		t.Error("SendTo() = true, want false when the peer's buffer is full")
	}
}

func TestDispatcher_BroadcastExceptSkipsSender(t *testing.T) {
	registry := NewRegistry()
	dispatcher := NewDispatcher(registry)
	clients := map[int64]*Client{}
	for _, id := range []int64{1, 2, 3} {
		client := &Client{UserID: id, Send: make(chan []byte, 1)}
		registry.Register(id, client)
		clients[id] = client
	}

	dispatcher.BroadcastExcept(1, domain.PresenceEvent{Type: domain.EventPresence, UserID: 1, Status: domain.PresenceOnline})

	if len(clients[1].Send) != 0 {
		t.Error("sender must not receive its own broadcast")
	}
	for _, id := range []int64{2, 3} {
		if len(clients[id].Send) != 1 {
			t.Errorf("user %d queued events = %d, want 1", id, len(clients[id].Send))
		}
	}
}

func TestDispatcher_BroadcastSurvivesOneFullPeer(t *testing.T) {
	registry := NewRegistry()
	dispatcher := NewDispatcher(registry)
	stuck := &Client{UserID: 2, Send: make(chan []byte)} // never drained
	healthy := &Client{UserID: 3, Send: make(chan []byte, 1)}
	registry.Register(2, stuck)
	registry.Register(3, healthy)

	dispatcher.BroadcastExcept(1, domain.PresenceEvent{Type: domain.EventPresence, UserID: 1, Status: domain.PresenceOnline})

	if len(healthy.Send) != 1 {
		t.Error("a stuck peer must not abort delivery to the rest")
	}
}
