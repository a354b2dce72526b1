// Package client is the Go client of the exchange api. It keeps the
// authenticated session of one user, refreshes it on expiry and follows the
// realtime notification stream.
package client

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bitmark-inc/exchange-api/schema"
)

// ErrNoSession is returned when a call needs credentials and none are held
var ErrNoSession = errors.New("no active session")

// Credentials is the pair of tokens identifying a signed in account
type Credentials struct {
	AccountID    string `json:"account_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (c *Credentials) valid() bool {
	return c != nil && c.AccessToken != "" && c.RefreshToken != ""
}

// TokenStore persists the credentials of a session between runs
type TokenStore interface {
	Load() (*Credentials, error)
	Save(c Credentials) error
	Clear() error
}

// Session holds the credentials of the signed in account. It is written by
// login, refresh and logout and read by every api call.
type Session struct {
	sync.RWMutex

	store   TokenStore
	current *Credentials
	account *schema.Account
}

func NewSession(store TokenStore) *Session {
	return &Session{store: store}
}

// Open restores the persisted credentials. It reports whether a session was found.
func (s *Session) Open() (bool, error) {
	c, err := s.store.Load()
	if err != nil {
		return false, fmt.Errorf("load credentials: %w", err)
	}

	s.Lock()
	defer s.Unlock()
	if !c.valid() {
		s.current = nil
		return false, nil
	}
	s.current = c
	return true, nil
}

// Begin starts a session after a successful login
func (s *Session) Begin(c Credentials, account *schema.Account) error {
	s.Lock()
	defer s.Unlock()

	if err := s.store.Save(c); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	s.current = &c
	s.account = account
	return nil
}

// Replace swaps in a refreshed pair. The pair is persisted before it is
// used, so a pair that could not be saved never becomes current.
func (s *Session) Replace(c Credentials) error {
	s.Lock()
	defer s.Unlock()

	if s.current == nil {
		return ErrNoSession
	}
	if c.AccountID == "" {
		c.AccountID = s.current.AccountID
	}
	if err := s.store.Save(c); err != nil {
		return fmt.Errorf("save refreshed credentials: %w", err)
	}
	s.current = &c
	return nil
}

// End drops the credentials from memory and from the store
func (s *Session) End() error {
	s.Lock()
	defer s.Unlock()

	s.current = nil
	s.account = nil
	return s.store.Clear()
}

// Credentials returns a copy of the current credentials
func (s *Session) Credentials() (Credentials, bool) {
	s.RLock()
	defer s.RUnlock()

	if s.current == nil {
		return Credentials{}, false
	}
	return *s.current, true
}

// Account is the account fetched at login, if any
func (s *Session) Account() *schema.Account {
	s.RLock()
	defer s.RUnlock()
	return s.account
}

func (s *Session) setAccount(a *schema.Account) {
	s.Lock()
	defer s.Unlock()
	s.account = a
}
