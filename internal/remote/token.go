package remote

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/sheet"
)

// TokenStore keeps the GitHub token in the OS keyring.
type TokenStore struct {
	service string
	user    string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		service: constants.KeyringService,
		user:    constants.KeyringTokenUser,
	}
}

// Token returns the stored token, or "" when none is stored.
func (s *TokenStore) Token() (string, error) {
	token, err := keyring.Get(s.service, s.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

func (s *TokenStore) Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return &sheet.ValidationError{Field: "token", Message: "must not be empty"}
	}
	return keyring.Set(s.service, s.user, token)
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *TokenStore) Clear() error {
	err := keyring.Delete(s.service, s.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
