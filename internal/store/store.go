// Package store implements the application's seven data stores. Each store
// owns one entity collection plus loading/error flags, sits on top of a
// backend gateway, notifies subscribers after every applied change, and
// mirrors its collection to a key-value snapshot provider.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"rapidbudapest/club-app/internal/persist"
)

// now is a hook for tests that need a fixed clock.
var now = time.Now

// base carries the state shared by every store: the isLoading/error pair,
// the request-generation guard, the subscriber set and the snapshot key.
//
// The generation guard makes "latest request wins" hold: begin() stamps a
// call with the current generation, and resolve() discards resolutions whose
// generation has since been superseded by a newer call.
type base struct {
	mu      sync.RWMutex
	loading bool
	err     error
	gen     uint64

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int

	kv  persist.KV
	key string
}

func newBase(kv persist.KV, key string) base {
	return base{subs: make(map[int]chan struct{}), kv: kv, key: key}
}

// Loading reports whether an action is inside its simulated-latency window.
func (b *base) Loading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading
}

// Err returns the error recorded by the last failed action, or nil. It is
// cleared when the next action begins.
func (b *base) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.err
}

// Subscribe registers an observer. The returned channel receives a signal
// after every applied state change; sends are non-blocking, so a subscriber
// that is not draining simply misses signals. The cancel func unregisters.
func (b *base) Subscribe() (<-chan struct{}, func()) {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	id := b.nextSub
	b.nextSub++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch
	return ch, func() {
		b.subMu.Lock()
		defer b.subMu.Unlock()
		delete(b.subs, id)
	}
}

func (b *base) notify() {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// begin marks the store loading, clears the previous error and issues a new
// generation token for this call.
func (b *base) begin() uint64 {
	b.mu.Lock()
	b.loading = true
	b.err = nil
	b.gen++
	gen := b.gen
	b.mu.Unlock()
	b.notify()
	return gen
}

// resolve finishes the call stamped with gen. If a newer call has begun
// since, the resolution is discarded and resolve reports false. Otherwise it
// records err (nil on success), runs apply under the lock on success, and
// notifies subscribers.
func (b *base) resolve(gen uint64, err error, apply func()) bool {
	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		return false
	}
	b.loading = false
	b.err = err
	if err == nil && apply != nil {
		apply()
	}
	b.mu.Unlock()
	b.notify()
	return true
}

// snapshot serializes v and writes it under the store's key. Snapshot
// failures are logged, not surfaced: persistence is a mirror, not the source
// of truth.
func (b *base) snapshot(ctx context.Context, v any) {
	if b.kv == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("WARN: marshal snapshot %s: %v", b.key, err)
		return
	}
	if err := b.kv.Set(ctx, b.key, string(data)); err != nil {
		log.Printf("WARN: persist snapshot %s: %v", b.key, err)
	}
}

// restore loads the snapshot under the store's key into v. It reports
// whether a snapshot was found and decoded.
func (b *base) restore(ctx context.Context, v any) bool {
	if b.kv == nil {
		return false
	}
	data, err := b.kv.Get(ctx, b.key)
	if err != nil {
		if !errors.Is(err, persist.ErrNoSnapshot) {
			log.Printf("WARN: read snapshot %s: %v", b.key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		log.Printf("WARN: decode snapshot %s: %v", b.key, err)
		return false
	}
	return true
}
