package session

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantura/vantura/internal/apiclient"
	"github.com/vantura/vantura/internal/localstore"
)

// fakeAuth substitutes the API client; unset funcs fail the call.
type fakeAuth struct {
	login        func(apiclient.Credentials) (*apiclient.User, error)
	currentUser  func() (*apiclient.User, error)
	register     func(apiclient.Profile) error
	currentCalls int
}

func (f *fakeAuth) Login(_ context.Context, creds apiclient.Credentials) (*apiclient.User, error) {
	if f.login == nil {
		return nil, &apiclient.APIError{Status: http.StatusUnauthorized}
	}
	return f.login(creds)
}

func (f *fakeAuth) CurrentUser(_ context.Context) (*apiclient.User, error) {
	f.currentCalls++
	if f.currentUser == nil {
		return nil, &apiclient.APIError{Status: http.StatusUnauthorized}
	}
	return f.currentUser()
}

func (f *fakeAuth) Register(_ context.Context, profile apiclient.Profile) error {
	if f.register == nil {
		return &apiclient.APIError{Status: http.StatusBadRequest}
	}
	return f.register(profile)
}

func newTestStorage(t *testing.T) *localstore.Store {
	t.Helper()
	storage, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestInitializeSetsSessionAndEcho(t *testing.T) {
	alice := &apiclient.User{ID: 7, Role: "USER", FirstName: "Alice"}
	auth := &fakeAuth{currentUser: func() (*apiclient.User, error) { return alice, nil }}
	storage := newTestStorage(t)
	store := New(auth, storage)

	assert.True(t, store.Loading())
	store.Initialize(context.Background())

	assert.False(t, store.Loading())
	user := store.Current()
	assert.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)

	echo, ok := storage.Get(EchoKey)
	assert.True(t, ok)
	assert.Equal(t, "7", echo)
}

func TestInitializeFailureClearsSessionAndEcho(t *testing.T) {
	auth := &fakeAuth{} // probe answers 401
	storage := newTestStorage(t)
	storage.Set(EchoKey, "42") // stale echo from a previous run

	store := New(auth, storage)
	store.Initialize(context.Background())

	assert.False(t, store.Loading())
	assert.Nil(t, store.Current())
	_, ok := storage.Get(EchoKey)
	assert.False(t, ok)
}

func TestInitializeRunsOnce(t *testing.T) {
	auth := &fakeAuth{}
	store := New(auth, newTestStorage(t))

	store.Initialize(context.Background())
	store.Initialize(context.Background())
	store.Initialize(context.Background())

	assert.Equal(t, 1, auth.currentCalls)
}

func TestLoginSetsSessionAndEchoAtomically(t *testing.T) {
	auth := &fakeAuth{
		login: func(creds apiclient.Credentials) (*apiclient.User, error) {
			assert.Equal(t, "alice", creds.Username)
			return &apiclient.User{ID: 7, Role: "USER", FirstName: "Alice"}, nil
		},
	}
	storage := newTestStorage(t)
	store := New(auth, storage)

	result := store.Login(context.Background(), apiclient.Credentials{Username: "alice", Password: "secret"})

	assert.True(t, result.Success)
	assert.Equal(t, "USER", result.Role)
	assert.Equal(t, int64(7), store.Current().ID)
	echo, ok := storage.Get(EchoKey)
	assert.True(t, ok)
	assert.Equal(t, "7", echo)
}

func TestFailedLoginLeavesStateUntouched(t *testing.T) {
	calls := 0
	auth := &fakeAuth{
		login: func(apiclient.Credentials) (*apiclient.User, error) {
			calls++
			if calls == 1 {
				return &apiclient.User{ID: 7, Role: "USER"}, nil
			}
			return nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Bad credentials"}
		},
	}
	storage := newTestStorage(t)
	store := New(auth, storage)

	first := store.Login(context.Background(), apiclient.Credentials{Username: "alice"})
	assert.True(t, first.Success)

	second := store.Login(context.Background(), apiclient.Credentials{Username: "alice", Password: "typo"})
	assert.False(t, second.Success)
	assert.Equal(t, "Bad credentials", second.Err)

	// the earlier session and echo survive the failed attempt
	assert.Equal(t, int64(7), store.Current().ID)
	echo, ok := storage.Get(EchoKey)
	assert.True(t, ok)
	assert.Equal(t, "7", echo)
}

func TestLoginWithoutRoleFails(t *testing.T) {
	auth := &fakeAuth{
		login: func(apiclient.Credentials) (*apiclient.User, error) {
			return &apiclient.User{ID: 7}, nil
		},
	}
	store := New(auth, newTestStorage(t))

	result := store.Login(context.Background(), apiclient.Credentials{})
	assert.False(t, result.Success)
	assert.Equal(t, "Login failed", result.Err)
	assert.Nil(t, store.Current())
}

func TestLogoutIsIdempotent(t *testing.T) {
	storage := newTestStorage(t)
	store := New(&fakeAuth{}, storage)

	store.Logout()
	store.Logout()

	assert.Nil(t, store.Current())
	_, ok := storage.Get(EchoKey)
	assert.False(t, ok)
}

func TestLogoutClearsSessionAndEcho(t *testing.T) {
	auth := &fakeAuth{
		login: func(apiclient.Credentials) (*apiclient.User, error) {
			return &apiclient.User{ID: 7, Role: "USER"}, nil
		},
	}
	storage := newTestStorage(t)
	store := New(auth, storage)

	store.Login(context.Background(), apiclient.Credentials{})
	store.Logout()

	assert.Nil(t, store.Current())
	_, ok := storage.Get(EchoKey)
	assert.False(t, ok)
}

func TestRegisterDoesNotMutateSession(t *testing.T) {
	registered := false
	auth := &fakeAuth{register: func(apiclient.Profile) error {
		registered = true
		return nil
	}}
	storage := newTestStorage(t)
	store := New(auth, storage)

	result := store.Register(context.Background(), apiclient.Profile{Email: "a@b.com"})

	assert.True(t, result.Success)
	assert.True(t, registered)
	assert.Nil(t, store.Current())
	_, ok := storage.Get(EchoKey)
	assert.False(t, ok)
}

func TestRegisterFailureCarriesBackendMessage(t *testing.T) {
	auth := &fakeAuth{register: func(apiclient.Profile) error {
		return &apiclient.APIError{Status: http.StatusConflict, Message: "email already taken"}
	}}
	store := New(auth, newTestStorage(t))

	result := store.Register(context.Background(), apiclient.Profile{Email: "a@b.com"})
	assert.False(t, result.Success)
	assert.Equal(t, "email already taken", result.Err)
}

func TestCurrentReturnsACopy(t *testing.T) {
	auth := &fakeAuth{
		login: func(apiclient.Credentials) (*apiclient.User, error) {
			return &apiclient.User{ID: 7, Role: "USER"}, nil
		},
	}
	store := New(auth, newTestStorage(t))
	store.Login(context.Background(), apiclient.Credentials{})

	user := store.Current()
	user.Role = "ADMIN" // mutating the copy must not leak back

	assert.Equal(t, "USER", store.Current().Role)
}
