package session

import (
	"testing"

	"github.com/google/uuid"
)

func TestHolderCurrent(t *testing.T) {
	h := NewHolder()

	if _, ok := h.Current(); ok {
		t.Fatalf("fresh holder must have no session")
	}

	userID := uuid.New()
	h.Set(userID)

	got, ok := h.Current()
	if !ok || got != userID {
		t.Fatalf("expected %s, got %s ok=%v", userID, got, ok)
	}

	h.Clear()
	if _, ok := h.Current(); ok {
		t.Fatalf("cleared holder must have no session")
	}
}

func TestHolderSubscribe(t *testing.T) {
	h := NewHolder()

	ch, unsubscribe := h.Subscribe()
	defer unsubscribe()

	userID := uuid.New()
	h.Set(userID)

	change := <-ch
	if !change.SignedIn || change.UserID != userID {
		t.Fatalf("unexpected change %+v", change)
	}

	h.Clear()
	change = <-ch
	if change.SignedIn || change.UserID != userID {
		t.Fatalf("unexpected change %+v", change)
	}
}

func TestHolderUnsubscribeClosesChannel(t *testing.T) {
	h := NewHolder()

	ch, unsubscribe := h.Subscribe()
	unsubscribe()

	if _, open := <-ch; open {
		t.Fatalf("expected closed channel after unsubscribe")
	}

	// A second call must be a no-op, not a double close.
	unsubscribe()

	// Notifies after unsubscribe must not reach the old channel.
	h.Set(uuid.New())
}
