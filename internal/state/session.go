package state

import (
	"context"

	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// User returns the signed-in identity, if any.
func (h *Holder) User() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	u := *h.user
	return &u
}

// Login records the identity and persists it under the user key.
func (h *Holder) Login(ctx context.Context, user models.User) error {
	h.mu.Lock()
	h.user = &user
	h.mu.Unlock()

	return h.writeUser(user)
}

// Logout clears the identity and removes the user key.
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	h.user = nil
	h.mu.Unlock()

	return h.store.Remove(UserKey)
}
