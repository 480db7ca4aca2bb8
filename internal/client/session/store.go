// Package session holds the bearer token and the derived current-user
// identity. It is the single source of truth for "am I authenticated"; the
// only writers of the token and the cached identity are the methods here.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bosphorusfellas/clubclient/internal/client/localstore"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/common"
	"github.com/bosphorusfellas/clubclient/internal/logging"
)

// Claims is the locally parsed, unverified hint extracted from the token.
// It exists so the UI can show an identity before the first profile fetch;
// the server remains authoritative.
type Claims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Store is the process-wide session state. The token is mirrored into the
// durable local store so it survives restarts within the same machine user.
type Store struct {
	mu     sync.Mutex
	local  localstore.Repository
	user   *models.User
	claims *Claims
	log    logging.Logger
}

func New(local localstore.Repository, log logging.Logger) *Store {
	s := &Store{local: local, log: log}
	// A token persisted by a previous run re-establishes the claims hint.
	if tok, ok := local.Get(common.TokenKey); ok {
		s.claims = parseClaims(tok)
	}
	return s
}

// SetToken persists the token and resets the cached identity; the profile
// is lazily re-fetched on the next CurrentUser call.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Set(common.TokenKey, token); err != nil {
		return err
	}
	s.user = nil
	s.claims = parseClaims(token)
	if s.claims != nil && !s.claims.ExpiresAt.IsZero() && s.claims.ExpiresAt.Before(time.Now()) {
		s.log.Warn(context.Background(), "stored token already expired", "exp", s.claims.ExpiresAt)
	}
	return nil
}

// Clear removes the token and drops the cached identity.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.claims = nil
	return s.local.Delete(common.TokenKey)
}

// Invalidate implements api.TokenInvalidator: the server rejected the
// credential, so it is destroyed the same way an explicit logout would.
func (s *Store) Invalidate() {
	if err := s.Clear(); err != nil {
		s.log.Error(context.Background(), "clearing rejected token failed", "error", err)
	}
}

// Token implements api.TokenSource.
func (s *Store) Token() (string, bool) {
	tok, ok := s.local.Get(common.TokenKey)
	return tok, ok && tok != ""
}

// AuthHeader returns the value for the Authorization header, or "" and
// false when no token is stored.
func (s *Store) AuthHeader() (string, bool) {
	tok, ok := s.Token()
	if !ok {
		return "", false
	}
	return common.BearerPrefix + tok, true
}

// Identity returns the unverified claims hint parsed from the stored token.
func (s *Store) Identity() (Claims, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claims == nil {
		return Claims{}, false
	}
	return *s.claims, true
}

// CacheUser stores the fetched profile. It refuses to cache when no token
// is stored, preserving the invariant that a current user is never reported
// without a corresponding credential.
func (s *Store) CacheUser(u models.User) {
	if _, ok := s.Token(); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// CachedUser returns the cached profile, if any.
func (s *Store) CachedUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// parseClaims decodes the token without verifying its signature. The client
// holds no signing key; verification happens server-side on every request.
func parseClaims(token string) *Claims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	c := &Claims{}
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if email, ok := mc["email"].(string); ok {
		c.Email = email
	}
	if role, ok := mc["role"].(string); ok {
		c.Role = role
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c
}
