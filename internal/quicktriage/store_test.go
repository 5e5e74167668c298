package quicktriage

import (
	"errors"
	"testing"
	"time"

	"github.com/lifeguardcard/triagecore/internal/model"
)

func newTestStore() *Store {
	return NewStore(NewEngine(), model.SessionConfig{
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	})
}

func TestStore_CreateAndAnswer(t *testing.T) {
	store := newTestStore()

	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("Expected session ID")
	}

	updated, err := store.Answer(sess.ID, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.CurrentIndex != 1 {
		t.Errorf("Expected index 1 after first answer, got %d", updated.CurrentIndex)
	}
}

func TestStore_TerminalSessionIsDiscarded(t *testing.T) {
	store := newTestStore()
	sess := store.Create()

	updated, err := store.Answer(sess.ID, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !updated.Done() {
		t.Fatal("Expected terminal session")
	}

	// The terminal session is gone; further answers are a not-found
	// error, not a silent restart.
	if _, err := store.Answer(sess.ID, false); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_UnknownSession(t *testing.T) {
	store := newTestStore()

	if _, err := store.Get("nope"); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if _, err := store.Answer("nope", true); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_Reset(t *testing.T) {
	store := newTestStore()
	sess := store.Create()

	if _, err := store.Answer(sess.ID, false); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Answer(sess.ID, false); err != nil {
		t.Fatal(err)
	}

	reset, err := store.Reset(sess.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reset.CurrentIndex != 0 || len(reset.Answers) != 0 {
		t.Errorf("Expected pristine session after reset, got %+v", reset)
	}
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := newTestStore()

	a := store.Create()
	b := store.Create()

	if _, err := store.Answer(a.ID, true); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(b.ID)
	if err != nil {
		t.Fatalf("Expected session b to survive, got %v", err)
	}
	if got.CurrentIndex != 0 || got.Done() {
		t.Error("Session b must be unaffected by session a")
	}
}
