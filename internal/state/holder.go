// Package state owns the live in-memory mirror of the shared document plus
// the profile-local cart and signed-in user. Every mutation is optimistic:
// memory first, persistence second, and a persistence failure is logged
// while the in-memory state stands.
package state

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/multierr"

	"github.com/mvsaqua/aquastore-backend/internal/clouddb"
	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/localdb"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// Profile-local keys. These are deliberately NOT part of the shared
// document: the cart and session belong to one profile and are never
// broadcast.
const (
	CartKey = "aquastore_cart"
	UserKey = "aquastore_user"
)

// Phase is the holder lifecycle. There is no error terminal state: read and
// parse failures degrade to Ready with default data.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseReady
)

// Holder mirrors products/orders from the store facade and owns cart/user.
type Holder struct {
	db       *clouddb.Service
	store    *localdb.Store
	logg     *logger.Logger
	storeCfg config.StoreConfig

	mu       sync.RWMutex
	phase    Phase
	products []models.Product
	orders   []models.Order
	cart     []models.CartItem
	user     *models.User

	unsubscribe func()
}

// Open seeds the holder from the facade, bootstraps the default catalog on
// first run, loads cart/user from their own keys, and subscribes for the
// process lifetime.
func Open(ctx context.Context, db *clouddb.Service, store *localdb.Store, logg *logger.Logger, storeCfg config.StoreConfig) *Holder {
	h := &Holder{
		db:       db,
		store:    store,
		logg:     logg,
		storeCfg: storeCfg,
		phase:    PhaseLoading,
	}

	doc := db.GetDB(ctx)
	if len(doc.Products) == 0 {
		// First-run bootstrap: seed the default catalog and persist it
		// immediately so other processes see the same storefront.
		seed := SeedCatalog()
		h.products = seed
		h.orders = []models.Order{}
		empty := []models.Order{}
		if err := db.SaveDB(ctx, clouddb.Patch{Products: &seed, Orders: &empty}); err != nil && logg != nil {
			logg.Error(ctx, "persisting seed catalog", err)
		}
	} else {
		h.products = doc.Products
		h.orders = doc.Orders
	}

	h.cart = h.loadCart(ctx)
	h.user = h.loadUser(ctx)

	h.unsubscribe = db.Subscribe(h.onSync)
	h.mu.Lock()
	h.phase = PhaseReady
	h.mu.Unlock()

	return h
}

// onSync replaces the mirror wholesale with the notified document. Partial
// overwrite protection lives in the facade's merge step, not here.
func (h *Holder) onSync(doc clouddb.Document) {
	h.mu.Lock()
	h.products = doc.Products
	h.orders = doc.Orders
	h.mu.Unlock()
}

// Ready reports whether the holder finished its initial load.
func (h *Holder) Ready() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.phase == PhaseReady
}

// Close detaches the broadcaster subscription and flushes the
// profile-local keys one last time.
func (h *Holder) Close(ctx context.Context) error {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}

	h.mu.RLock()
	cart := append([]models.CartItem(nil), h.cart...)
	user := h.user
	h.mu.RUnlock()

	var errs error
	errs = multierr.Append(errs, h.writeCart(cart))
	if user != nil {
		errs = multierr.Append(errs, h.writeUser(*user))
	}
	return errs
}

func (h *Holder) loadCart(ctx context.Context) []models.CartItem {
	raw, ok, err := h.store.Get(CartKey)
	if err != nil || !ok {
		return nil
	}
	var cart []models.CartItem
	if err := json.Unmarshal(raw, &cart); err != nil {
		if h.logg != nil {
			h.logg.Warn(h.logg.WithStoreKey(ctx, CartKey), "stored cart corrupt, discarding")
		}
		if err := h.store.Remove(CartKey); err != nil && h.logg != nil {
			h.logg.Error(ctx, "removing corrupt cart", err)
		}
		return nil
	}
	return cart
}

func (h *Holder) loadUser(ctx context.Context) *models.User {
	raw, ok, err := h.store.Get(UserKey)
	if err != nil || !ok {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		if h.logg != nil {
			h.logg.Warn(h.logg.WithStoreKey(ctx, UserKey), "stored user corrupt, discarding")
		}
		if err := h.store.Remove(UserKey); err != nil && h.logg != nil {
			h.logg.Error(ctx, "removing corrupt user", err)
		}
		return nil
	}
	return &user
}

func (h *Holder) writeCart(cart []models.CartItem) error {
	if cart == nil {
		cart = []models.CartItem{}
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return h.store.Set(CartKey, raw)
}

func (h *Holder) writeUser(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return h.store.Set(UserKey, raw)
}

// persistCart is the best-effort write-back on every cart change.
func (h *Holder) persistCart(ctx context.Context, cart []models.CartItem) {
	if err := h.writeCart(cart); err != nil && h.logg != nil {
		h.logg.Error(h.logg.WithStoreKey(ctx, CartKey), "persisting cart", err)
	}
}
