package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the gateway's secrets in the OS keychain.
	keyringService = "internlink"
	keyringAccount = "internlink:session-token"
)

// tokenStore keeps the bearer token out of the sqlite file.
type tokenStore interface {
	get() (string, error)
	set(token string) error
	delete() error
}

type keyringTokens struct{}

func (keyringTokens) get() (string, error) {
	tok, err := keyring.Get(keyringService, keyringAccount)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(tok) == "" {
		return "", errors.New("session token in keychain is empty")
	}
	return tok, nil
}

func (keyringTokens) set(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(keyringService, keyringAccount, token)
}

func (keyringTokens) delete() error {
	err := keyring.Delete(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// memTokens backs tests; the CI keychain is not a thing.
type memTokens struct {
	mu  sync.Mutex
	tok string
}

func (m *memTokens) get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tok == "" {
		return "", errors.New("no token")
	}
	return m.tok, nil
}

func (m *memTokens) set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = token
	return nil
}

func (m *memTokens) delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = ""
	return nil
}
