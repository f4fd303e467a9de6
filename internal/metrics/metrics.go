package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConnectedClients tracks the number of live websocket sessions.
	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chat_connected_clients",
		Help: "Number of currently connected chat clients.",
	})

	// EventsTotal counts processed inbound events by kind.
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_events_total",
		Help: "Inbound chat events processed, by event type.",
	}, []string{"type"})

	// MessagesPersisted counts messages written to the store.
	MessagesPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_persisted_total",
		Help: "Chat messages persisted to the message store.",
	})

	// DroppedPushes counts outbound events dropped because the recipient
	// was offline or their send buffer was full.
	DroppedPushes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_dropped_pushes_total",
		Help: "Outbound events dropped instead of delivered live.",
	})
)
