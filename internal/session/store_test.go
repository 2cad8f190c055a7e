package session

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestSaveAndGetters(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	store.Save("tok-1", "alice", 7)

	if store.Token() != "tok-1" {
		t.Errorf("Expected token 'tok-1', got %q", store.Token())
	}
	if store.Username() != "alice" {
		t.Errorf("Expected username 'alice', got %q", store.Username())
	}
	id, ok := store.UserID()
	if !ok || id != 7 {
		t.Errorf("Expected user id 7, got %d (present=%v)", id, ok)
	}
	if !store.IsAuthenticated() {
		t.Error("Expected IsAuthenticated to be true after Save")
	}
}

func TestClear(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	store.Save("tok-1", "alice", 7)
	store.Clear()

	if store.IsAuthenticated() {
		t.Error("Expected IsAuthenticated to be false after Clear")
	}
	if store.Token() != "" || store.Username() != "" {
		t.Error("Expected token and username to be absent after Clear")
	}
	if _, ok := store.UserID(); ok {
		t.Error("Expected user id to be absent after Clear")
	}
}

func TestRestoreFromStorage(t *testing.T) {
	app := test.NewApp()

	first := NewStore(app)
	first.Save("tok-9", "bob", 42)

	// A second store over the same preferences picks up the session
	second := NewStore(app)
	if second.Token() != "tok-9" {
		t.Errorf("Expected restored token 'tok-9', got %q", second.Token())
	}
	if second.Username() != "bob" {
		t.Errorf("Expected restored username 'bob', got %q", second.Username())
	}
	id, ok := second.UserID()
	if !ok || id != 42 {
		t.Errorf("Expected restored user id 42, got %d (present=%v)", id, ok)
	}
}

func TestRestoreNonNumericUserID(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyToken, "tok-1")
	app.Preferences().SetString(KeyUsername, "alice")
	app.Preferences().SetString(KeyUserID, "not-a-number")

	store := NewStore(app)

	if _, ok := store.UserID(); ok {
		t.Error("Expected user id to be absent when the persisted value is not numeric")
	}
	// Token and username still restore; the store fails soft, not hard
	if store.Token() != "tok-1" {
		t.Errorf("Expected token 'tok-1', got %q", store.Token())
	}
}

func TestUpdateUsername(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	store.Save("tok-1", "alice", 7)
	store.UpdateUsername("alicia")

	if store.Username() != "alicia" {
		t.Errorf("Expected username 'alicia', got %q", store.Username())
	}
	if store.Token() != "tok-1" {
		t.Error("UpdateUsername must not touch the token")
	}
	id, ok := store.UserID()
	if !ok || id != 7 {
		t.Error("UpdateUsername must not touch the user id")
	}

	// Persisted too
	if app.Preferences().String(KeyUsername) != "alicia" {
		t.Error("Expected updated username to be persisted")
	}
}

func TestSubscribeNotifiedOncePerMutation(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	calls := 0
	unsubscribe := store.Subscribe(func() { calls++ })

	store.Save("tok-1", "alice", 7)
	if calls != 1 {
		t.Errorf("Expected 1 notification after Save, got %d", calls)
	}

	store.UpdateUsername("alicia")
	if calls != 2 {
		t.Errorf("Expected 2 notifications after UpdateUsername, got %d", calls)
	}

	store.Clear()
	if calls != 3 {
		t.Errorf("Expected 3 notifications after Clear, got %d", calls)
	}

	unsubscribe()
	store.Save("tok-2", "bob", 8)
	if calls != 3 {
		t.Errorf("Expected no notification after unsubscribe, got %d", calls)
	}
}
