// Package session holds the single client-side view of who is logged in.
// The Store is the only writer of that state; views read it through
// Current and Loading and never mutate it directly.
package session

import (
	"context"
	"strconv"
	"sync"

	"github.com/vantura/vantura/internal/apiclient"
)

// EchoKey is the durable-storage key mirroring the session's user id. The
// echo is a hint for other components, never an authority: only the live
// session may authorize anything.
const EchoKey = "userId"

// AuthClient is the slice of the API client the store needs. Tests
// substitute a fake.
type AuthClient interface {
	Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.User, error)
	CurrentUser(ctx context.Context) (*apiclient.User, error)
	Register(ctx context.Context, profile apiclient.Profile) error
}

// Storage is durable key/value storage surviving reloads: localStorage in
// the browser, a localstore.Store natively. Write failures are tolerated
// because the echo is only a hint.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Result is the outcome of Login or Register. Err is a display-ready
// message; callers use Role to pick a landing destination.
type Result struct {
	Success bool
	Role    string
	Err     string
}

// Store owns the session record for one tab lifetime.
type Store struct {
	auth    AuthClient
	storage Storage

	mu      sync.RWMutex
	user    *apiclient.User
	loading bool

	initOnce sync.Once
}

// New returns a Store in the loading state; consumers must not trust
// Current until Initialize has finished.
func New(auth AuthClient, storage Storage) *Store {
	return &Store{
		auth:    auth,
		storage: storage,
		loading: true,
	}
}

// Initialize probes the backend for the identity behind the current
// cookie. It runs at most once per process; later calls return
// immediately. Whatever the outcome, the loading flag ends up cleared.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		user, err := s.auth.CurrentUser(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil || user == nil {
			s.user = nil
			s.storage.Delete(EchoKey)
		} else {
			s.user = user
			s.storage.Set(EchoKey, strconv.FormatInt(user.ID, 10))
		}
		s.loading = false
	})
}

// Current returns a copy of the session record, or nil when nobody is
// logged in. Callers never observe a partially written session.
func (s *Store) Current() *apiclient.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Loading reports whether the identity probe is still in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Login authenticates and, when the response carries a role, installs the
// session and writes the echo in one step. Any other outcome leaves the
// store untouched and carries the backend's message when it sent one.
func (s *Store) Login(ctx context.Context, creds apiclient.Credentials) Result {
	user, err := s.auth.Login(ctx, creds)
	if err != nil {
		msg := "Login failed"
		if apiErr, ok := err.(*apiclient.APIError); ok && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return Result{Err: msg}
	}
	if user == nil || user.Role == "" {
		return Result{Err: "Login failed"}
	}

	s.mu.Lock()
	s.user = user
	s.storage.Set(EchoKey, strconv.FormatInt(user.ID, 10))
	s.mu.Unlock()

	return Result{Success: true, Role: user.Role}
}

// Register creates an account. Registration and login are independent:
// success never mutates the session, the caller redirects to login.
func (s *Store) Register(ctx context.Context, profile apiclient.Profile) Result {
	if err := s.auth.Register(ctx, profile); err != nil {
		msg := "Registration failed"
		if apiErr, ok := err.(*apiclient.APIError); ok && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return Result{Err: msg}
	}
	return Result{Success: true}
}

// Logout clears the session and the echo. It needs no backend call and is
// a no-op when nobody is logged in.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.storage.Delete(EchoKey)
}
