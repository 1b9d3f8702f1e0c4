package directory

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Repository pairs the remote client with the in-memory cache and
// decides, per mutation, whether the cache is patched in place or
// reloaded wholesale.
type Repository struct {
	client *Client
	cache  *Cache
}

func NewRepository(client *Client) *Repository {
	return &Repository{client: client, cache: NewCache()}
}

// Cache exposes the listing snapshot the view derives from.
func (r *Repository) Cache() *Cache {
	return r.cache
}

// List fetches the authoritative listing and replaces the cache.
func (r *Repository) List(ctx context.Context) ([]Employee, error) {
	employees, err := r.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.ReplaceAll(employees)
	return employees, nil
}

// Create submits a new account. On success the cache is stale: the
// service assigns the id and normalizes the full name, so we reload
// rather than speculatively insert.
func (r *Repository) Create(ctx context.Context, fields []FormField) error {
	if err := r.client.CreateUser(ctx, fields); err != nil {
		return err
	}
	if _, err := r.List(ctx); err != nil {
		logrus.Warnf("[Directory] refresh after create failed: %v", err)
	}
	return nil
}

// Update submits changed fields for an existing account, then reloads
// for the same reason as Create.
func (r *Repository) Update(ctx context.Context, id int, fields []FormField) error {
	if err := r.client.UpdateUser(ctx, id, fields); err != nil {
		return err
	}
	if _, err := r.List(ctx); err != nil {
		logrus.Warnf("[Directory] refresh after update failed: %v", err)
	}
	return nil
}

// Disable archives the account. This is the one mutation applied to
// the cache in place: a narrow, idempotent state flip that needs no
// server-side re-derivation. Callers confirm before invoking; the
// repository does not dedupe repeated calls.
func (r *Repository) Disable(ctx context.Context, id int) error {
	if err := r.client.DisableUser(ctx, id); err != nil {
		return err
	}
	r.cache.SetDisabled(id)
	return nil
}
