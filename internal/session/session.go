package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"ums-console/internal/localstore"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the store key the login flow writes the bearer token under.
const TokenKey = "authToken"

// ErrNoToken means no credential is stored; every remote action treats
// this as a fatal precondition and sends the user back to login.
var ErrNoToken = errors.New("no auth token in session store")

// Claims mirrors the payload the auth service signs into its tokens.
// The console only inspects them for display; verification is the
// service's job.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Username is the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// Accessor reads the bearer credential from the shared store. Pure
// read, no caching beyond the store itself.
type Accessor struct {
	store localstore.Store
}

func NewAccessor(store localstore.Store) *Accessor {
	return &Accessor{store: store}
}

// Token returns the stored bearer token, or ErrNoToken when absent.
func (a *Accessor) Token(ctx context.Context) (string, error) {
	val, ok, err := a.store.Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(val) == "" {
		return "", ErrNoToken
	}
	return val, nil
}

// Claims decodes the stored token without verifying its signature.
// The signing key belongs to the auth service; the console only needs
// the subject, role and expiry for its header line.
func (a *Accessor) Claims(ctx context.Context) (*Claims, error) {
	token, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expired reports whether the stored token carries an expiry in the
// past. An expired token is left in place: the service is
// authoritative and will reject it with 401 anyway.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(now)
}

// Clear removes the stored credential (logout).
func (a *Accessor) Clear(ctx context.Context) error {
	return a.store.Delete(ctx, TokenKey)
}
