// Package session tracks the single admin authentication flag. Its lifetime
// is independent from the catalog document: logging out clears it, reloading
// the catalog does not.
package session

import (
	"crypto/subtle"
	"errors"
	"sync/atomic"

	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

// ErrCredentialsRequired indicates the service was built without admin credentials.
var ErrCredentialsRequired = errors.New("session: admin credentials are required")

// Credentials holds the single admin login pair.
type Credentials struct {
	Username string
	Password string
}

// State provides a concurrency-safe view of the authentication flag.
type State struct {
	authenticated atomic.Bool
}

// Authenticated reports whether the admin is logged in.
func (s *State) Authenticated() bool {
	if s == nil {
		return false
	}
	return s.authenticated.Load()
}

func (s *State) set(v bool) {
	if s == nil {
		return
	}
	s.authenticated.Store(v)
}

// Service gates admin entry with a single credential pair.
type Service struct {
	credentials Credentials
	state       *State
	logger      interfaces.Logger
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*Service)

// WithLogger injects the session logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs the session service with the configured credentials.
func NewService(credentials Credentials, opts ...ServiceOption) (*Service, error) {
	if credentials.Username == "" || credentials.Password == "" {
		return nil, ErrCredentialsRequired
	}
	s := &Service{
		credentials: credentials,
		state:       &State{},
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Login checks the supplied pair against the configured credentials and sets
// the flag on success. Comparison is constant time.
func (s *Service) Login(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credentials.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.Password)) == 1
	if !userOK || !passOK {
		s.logger.Warn("session.login.rejected", "username", username)
		return false
	}
	s.state.set(true)
	s.logger.Info("session.login.ok", "username", username)
	return true
}

// Logout clears the authentication flag.
func (s *Service) Logout() {
	s.state.set(false)
	s.logger.Info("session.logout")
}

// Authenticated reports the current flag.
func (s *Service) Authenticated() bool {
	return s.state.Authenticated()
}

// State exposes the shared flag for read-only consumers.
func (s *Service) State() *State {
	return s.state
}
