package session

import (
	"log"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
)

// Storage keys for fyne preferences. The names are part of the persisted
// contract and must not change between releases.
const (
	KeyToken    = "token"
	KeyUsername = "username"
	KeyUserID   = "idUsuario"
)

// Store holds the authenticated user's token, username and user id. Values are
// persisted to the app's preferences before the in-memory state changes, so
// storage and memory never diverge within a single call. Observers registered
// via Subscribe are notified once per mutating call.
type Store struct {
	prefs fyne.Preferences

	mu        sync.RWMutex
	token     string
	username  string
	userID    int
	hasUserID bool

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore creates a session store backed by the app's preferences and
// restores any persisted session. A persisted user id that does not parse as
// an integer degrades to "unauthenticated" rather than failing.
func NewStore(app fyne.App) *Store {
	s := &Store{
		prefs: app.Preferences(),
		subs:  make(map[int]func()),
	}
	s.restore()
	return s
}

// restore loads persisted session values into memory
func (s *Store) restore() {
	s.token = s.prefs.String(KeyToken)
	s.username = s.prefs.String(KeyUsername)

	raw := s.prefs.String(KeyUserID)
	if raw == "" {
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("session: ignoring non-numeric persisted user id %q", raw)
		return
	}
	s.userID = id
	s.hasUserID = true
}

// Token returns the current session token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Username returns the current username, or "" when unauthenticated.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// UserID returns the current user id and whether one is present.
func (s *Store) UserID() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, s.hasUserID
}

// IsAuthenticated reports whether a session token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Save persists a new session and updates in-memory state. The three fields
// always change together.
func (s *Store) Save(token, username string, userID int) {
	s.prefs.SetString(KeyToken, token)
	s.prefs.SetString(KeyUsername, username)
	s.prefs.SetString(KeyUserID, strconv.Itoa(userID))

	s.mu.Lock()
	s.token = token
	s.username = username
	s.userID = userID
	s.hasUserID = true
	s.mu.Unlock()

	log.Printf("session: saved for user %s (id=%d)", username, userID)
	s.notify()
}

// Clear removes the persisted session and resets in-memory state.
func (s *Store) Clear() {
	s.prefs.RemoveValue(KeyToken)
	s.prefs.RemoveValue(KeyUsername)
	s.prefs.RemoveValue(KeyUserID)

	s.mu.Lock()
	s.token = ""
	s.username = ""
	s.userID = 0
	s.hasUserID = false
	s.mu.Unlock()

	log.Printf("session: cleared")
	s.notify()
}

// UpdateUsername persists a new username without touching token or user id.
// Used after a profile edit changes the login name.
func (s *Store) UpdateUsername(username string) {
	s.prefs.SetString(KeyUsername, username)

	s.mu.Lock()
	s.username = username
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers a callback invoked after every session mutation. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify invokes all subscribers once
func (s *Store) notify() {
	s.subMu.Lock()
	callbacks := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
