package clouddb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mvsaqua/aquastore-backend/pkg/localdb"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// Service is the only entry point the rest of the application uses for the
// shared document. It composes the local store with the broadcaster:
// GetDB/SaveDB below, change fan-out to this process and to other processes
// watching the same data directory.
type Service struct {
	store       *localdb.Store
	logg        *logger.Logger
	broadcaster *Broadcaster
	unwatch     func()

	// mu serializes read-merge-write cycles within this process, so two
	// local callers patching different fields cannot clobber each other.
	// Across processes the last physical write still wins.
	mu          sync.Mutex
	lastWritten []byte
}

// New wires the facade to the store and starts listening for external
// changes to the document key.
func New(store *localdb.Store, logg *logger.Logger) *Service {
	s := &Service{
		store:       store,
		logg:        logg,
		broadcaster: NewBroadcaster(logg),
	}
	s.unwatch = store.Watch(DocumentKey, s.onExternalChange)
	return s
}

// GetDB reconstructs the shared document. An absent key yields an empty
// default; a corrupt value is logged and yields the same default. Data loss
// is accepted, not recovered; GetDB never fails.
func (s *Service) GetDB(ctx context.Context) Document {
	raw, ok, err := s.store.Get(DocumentKey)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithStoreKey(ctx, DocumentKey), "reading shared document", err)
		}
		return emptyDocument()
	}
	if !ok {
		return emptyDocument()
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithStoreKey(ctx, DocumentKey), "shared document corrupt, resetting")
		}
		return emptyDocument()
	}
	if doc.Products == nil {
		doc.Products = []models.Product{}
	}
	if doc.Orders == nil {
		doc.Orders = []models.Order{}
	}
	return doc
}

// SaveDB shallow-merges the patch onto the current document, stamps
// LastUpdated, persists, and synchronously notifies every subscriber in
// this process with the merged result. Serialization and storage failures
// propagate; nothing is broadcast on failure.
//
// Subscribers run on the caller's goroutine and must not call SaveDB.
func (s *Service) SaveDB(ctx context.Context, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.GetDB(ctx)
	if patch.Products != nil {
		doc.Products = *patch.Products
	}
	if patch.Orders != nil {
		doc.Orders = *patch.Orders
	}
	doc.LastUpdated = time.Now().UnixMilli()

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing shared document: %w", err)
	}
	if err := s.store.Set(DocumentKey, raw); err != nil {
		return fmt.Errorf("persisting shared document: %w", err)
	}
	s.lastWritten = raw

	s.broadcaster.Notify(doc)
	return nil
}

// Subscribe registers fn for both delivery paths: same-process writes and
// changes made by other processes. The returned function detaches both.
func (s *Service) Subscribe(fn func(Document)) func() {
	return s.broadcaster.Subscribe(fn)
}

// Close stops listening for external changes. In-process subscriptions die
// with the broadcaster; there is no draining.
func (s *Service) Close() {
	if s.unwatch != nil {
		s.unwatch()
	}
}

// onExternalChange handles the cross-process path. The filesystem event
// carries only the key, so the document is re-read rather than trusted from
// any payload. Echoes of this process's own writes are skipped: a change
// notification means someone else wrote.
func (s *Service) onExternalChange() {
	s.mu.Lock()
	raw, ok, err := s.store.Get(DocumentKey)
	echo := err == nil && ok && bytes.Equal(raw, s.lastWritten)
	s.mu.Unlock()
	if echo {
		return
	}

	s.broadcaster.Notify(s.GetDB(context.Background()))
}
