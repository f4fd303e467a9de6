package hub

import (
	"encoding/json"
	"log"

	"github.com/Nischal699/spotify-api/internal/metrics"
)

// Dispatcher routes outbound events to clients through the Registry.
// Delivery is best effort: offline recipients are skipped and the message
// store remains the durable record.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// SendTo pushes an event to one user. It reports whether the event was
// handed to a live connection; false means the user was offline or their
// send buffer was full.
func (d *Dispatcher) SendTo(userID int64, event interface{}) bool {
	client := d.registry.Lookup(userID)
	if client == nil {
		return false
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("dispatcher: marshal event for user %d: %v", userID, err)
		return false
	}
	if !client.push(payload) {
		metrics.DroppedPushes.Inc()
		return false
	}
	return true
}

// BroadcastExcept pushes an event to every online user other than senderID.
// A failed push to one recipient never aborts delivery to the rest.
func (d *Dispatcher) BroadcastExcept(senderID int64, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("dispatcher: marshal broadcast: %v", err)
		return
	}
	for userID, client := range d.registry.snapshot() {
		if userID == senderID {
			continue
		}
		if !client.push(payload) {
			metrics.DroppedPushes.Inc()
		}
	}
}
