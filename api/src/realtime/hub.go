package realtime

import (
	"sync"
	"sync/atomic"

	"ecertify/pkg/logger"
)

const DefaultSubscriberBuffer = 32

// Hub delivers events at most once to the subscriptions registered when the event is
// published. Nothing is stored, so late subscribers never see earlier events.
type Hub struct {
	mu      sync.RWMutex
	subs    map[uint64]*Subscription
	nextId  uint64
	buffer  int
	closed  bool
	dropped atomic.Uint64
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Hub{
		subs:   make(map[uint64]*Subscription),
		buffer: buffer,
	}
}

type Subscription struct {
	id      uint64
	filters []Filter
	ch      chan Event
	hub     *Hub
	dropped atomic.Uint64
}

// C is closed on Unsubscribe or when the hub closes.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Subscription) Unsubscribe() {
	s.hub.remove(s.id)
}

func (s *Subscription) matches(e Event) bool {
	for _, f := range s.filters {
		if f.Matches(e) {
			return true
		}
	}
	return false
}

// Subscribe registers interest in events matching any of the filters.
func (h *Hub) Subscribe(filters ...Filter) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextId++
	sub := &Subscription{
		id:      h.nextId,
		filters: filters,
		ch:      make(chan Event, h.buffer),
		hub:     h,
	}

	if h.closed {
		close(sub.ch)
		return sub
	}

	h.subs[sub.id] = sub
	return sub
}

// Publish never blocks: a subscriber whose buffer is full misses the event.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.matches(e) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			sub.dropped.Add(1)
			h.dropped.Add(1)
			logger.Default().Warnf("Dropped %s %s event for subscription %d: buffer full", e.Table, e.Operation, sub.id)
		}
	}
}

func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, sub := range h.subs {
		close(sub.ch)
		delete(h.subs, id)
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[id]; ok {
		close(sub.ch)
		delete(h.subs, id)
	}
}
