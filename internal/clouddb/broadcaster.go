package clouddb

import (
	"context"
	"fmt"
	"sync"

	"github.com/mvsaqua/aquastore-backend/pkg/logger"
)

// Broadcaster fans a changed document out to every subscriber in this
// process. Delivery is synchronous, in registration order, at-most-once: a
// subscriber that panics is recovered and logged, never retried.
type Broadcaster struct {
	logg *logger.Logger

	mu   sync.Mutex
	subs []*subscription
}

type subscription struct {
	fn func(Document)
}

func NewBroadcaster(logg *logger.Logger) *Broadcaster {
	return &Broadcaster{logg: logg}
}

// Subscribe registers fn and returns a function that detaches it.
// Subscribers are fully independent of one another.
func (b *Broadcaster) Subscribe(fn func(Document)) func() {
	sub := &subscription{fn: fn}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s == sub {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers doc to every current subscriber.
func (b *Broadcaster) Notify(doc Document) {
	b.mu.Lock()
	subs := make([]*subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		b.deliver(sub, doc)
	}
}

func (b *Broadcaster) deliver(sub *subscription, doc Document) {
	defer func() {
		if rec := recover(); rec != nil && b.logg != nil {
			ctx := b.logg.WithField(context.Background(), "panic", fmt.Sprint(rec))
			b.logg.Error(ctx, "subscriber panicked during sync notify", fmt.Errorf("panic: %v", rec))
		}
	}()
	sub.fn(doc)
}
