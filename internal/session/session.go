// Package session holds the process-wide auth session state. Editors and
// handlers take a point-in-time identity from Current; anything that needs
// to react to sign-in/sign-out subscribes once and unsubscribes explicitly
// instead of re-subscribing ad hoc.
package session

import (
	"sync"

	"github.com/google/uuid"
)

type Change struct {
	UserID   uuid.UUID
	SignedIn bool
}

type Holder struct {
	mu      sync.RWMutex
	userID  uuid.UUID
	active  bool
	nextSub int
	subs    map[int]chan Change
}

func NewHolder() *Holder {
	return &Holder{
		subs: make(map[int]chan Change),
	}
}

// Current returns the signed-in user's id, if any. This is the only call
// the upload pipeline makes.
func (h *Holder) Current() (uuid.UUID, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.userID, h.active
}

func (h *Holder) Set(userID uuid.UUID) {
	h.mu.Lock()
	h.userID = userID
	h.active = true
	h.mu.Unlock()

	h.notify(Change{UserID: userID, SignedIn: true})
}

func (h *Holder) Clear() {
	h.mu.Lock()
	cleared := h.userID
	h.userID = uuid.Nil
	h.active = false
	h.mu.Unlock()

	h.notify(Change{UserID: cleared, SignedIn: false})
}

// Subscribe registers for auth-state changes. The returned func removes
// the subscription and closes the channel; callers must invoke it.
func (h *Holder) Subscribe() (<-chan Change, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSub
	h.nextSub++

	ch := make(chan Change, 1)
	h.subs[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

func (h *Holder) notify(c Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		// Drop rather than block a slow subscriber.
		select {
		case sub <- c:
		default:
		}
	}
}
