package services

import (
	"sync"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
)

// DefaultSubscriberBuffer is the channel capacity given to every subscriber.
const DefaultSubscriberBuffer = 16

// ChangeHub is an in-process ChangeNotifier. Events are delivered per owner; a subscriber whose
// buffer is full misses events and is expected to reload the whole snapshot on the next one.
type ChangeHub struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]chan domain.ChangeEvent
	nextID uint64
	buffer int
}

var _ portssvc.ChangeNotifier = (*ChangeHub)(nil)

// NewChangeHub creates a hub giving every subscriber a channel of the given capacity.
func NewChangeHub(buffer int) *ChangeHub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &ChangeHub{
		subs:   make(map[string]map[uint64]chan domain.ChangeEvent),
		buffer: buffer,
	}
}

// Publish implements portssvc.ChangeNotifier.
func (h *ChangeHub) Publish(event domain.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[event.OwnerID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe implements portssvc.ChangeNotifier. The returned channel is closed by cancel.
func (h *ChangeHub) Subscribe(ownerID string) (<-chan domain.ChangeEvent, func()) {
	ch := make(chan domain.ChangeEvent, h.buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	if h.subs[ownerID] == nil {
		h.subs[ownerID] = make(map[uint64]chan domain.ChangeEvent)
	}
	h.subs[ownerID][id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[ownerID], id)
			if len(h.subs[ownerID]) == 0 {
				delete(h.subs, ownerID)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers returns the number of open subscriptions of the owner.
func (h *ChangeHub) Subscribers(ownerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[ownerID])
}
