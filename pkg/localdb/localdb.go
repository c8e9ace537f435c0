package localdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
)

// Store is a file-backed key-value store: one JSON value per key, stored as
// <dir>/<key>.json. It is the durable half of the document layer; merge
// semantics live above it.
type Store struct {
	dir  string
	logg *logger.Logger

	watcher *fsnotify.Watcher
	done    chan struct{}

	mu       sync.Mutex
	watchers map[string][]*watchHandle
	closed   bool
}

type watchHandle struct {
	fn func()
}

// Open prepares the data directory and starts the filesystem watcher used
// for cross-process change notification.
func Open(ctx context.Context, cfg config.LocalDBConfig, logg *logger.Logger) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("localdb dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(cfg.Dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching data dir: %w", err)
	}

	s := &Store{
		dir:      cfg.Dir,
		logg:     logg,
		watcher:  watcher,
		done:     make(chan struct{}),
		watchers: make(map[string][]*watchHandle),
	}
	go s.loop()

	if logg != nil {
		logg.Info(logg.WithField(ctx, "dir", cfg.Dir), "local store opened")
	}
	return s, nil
}

// Get returns the raw stored value. An absent key is not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return raw, true, nil
}

// Set stores the raw value under key. The write is atomic (temp file plus
// rename) so watchers in other processes never observe a torn value.
// Storage failures propagate to the caller.
func (s *Store) Set(key string, raw []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("staging key %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("flushing key %q: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storing key %q: %w", key, err)
	}
	return nil
}

// Remove deletes the key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing key %q: %w", key, err)
	}
	return nil
}

// Watch invokes fn whenever the key's file changes on disk, including
// changes made by other processes. The event carries no payload; callers
// re-read through Get. The returned function detaches the watch.
func (s *Store) Watch(key string, fn func()) func() {
	handle := &watchHandle{fn: fn}

	s.mu.Lock()
	s.watchers[key] = append(s.watchers[key], handle)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		handles := s.watchers[key]
		for i, h := range handles {
			if h == handle {
				s.watchers[key] = append(handles[:i], handles[i+1:]...)
				break
			}
		}
	}
}

// Close stops the filesystem watcher. Pending notifications are dropped.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	err := s.watcher.Close()
	<-s.done
	return err
}

func (s *Store) loop() {
	defer close(s.done)
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			s.dispatch(filepath.Base(ev.Name))
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			if s.logg != nil && err != nil {
				s.logg.Warn(s.logg.WithField(context.Background(), "error", err.Error()), "local store watch error")
			}
		}
	}
}

func (s *Store) dispatch(filename string) {
	s.mu.Lock()
	var fns []func()
	for key, handles := range s.watchers {
		if filename != key+".json" {
			continue
		}
		for _, h := range handles {
			fns = append(fns, h.fn)
		}
	}
	s.mu.Unlock()

	if s.logg != nil && len(fns) > 0 {
		key := strings.TrimSuffix(filename, ".json")
		s.logg.Debug(s.logg.WithStoreKey(context.Background(), key), "watched key changed on disk")
	}

	for _, fn := range fns {
		fn()
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
