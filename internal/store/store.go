// Package store implements the client-side query cache. Query results are
// cached under a key and a set of cache tags; mutations invalidate tags,
// which drops the matching entries and notifies subscribers so views can
// re-query. Identical in-flight queries are de-duplicated.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Recorder observes cache activity. Satisfied by observability.Metrics.
type Recorder interface {
	ObserveCache(event string)
}

// Cache events reported to the Recorder.
const (
	EventHit          = "hit"
	EventMiss         = "miss"
	EventInvalidation = "invalidation"
)

type entry struct {
	value   any
	tags    map[string]struct{}
	expires time.Time
}

type subscription struct {
	tags map[string]struct{}
	fn   func(tag string)
}

// Store is the shared query cache.
type Store struct {
	ttl      time.Duration
	mu       sync.RWMutex
	entries  map[string]entry
	subs     map[int64]subscription
	nextSub  int64
	group    singleflight.Group
	recorder Recorder
}

// New constructs a Store whose entries expire after ttl.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		subs:    make(map[int64]subscription),
	}
}

// SetRecorder attaches a cache metrics recorder.
func (s *Store) SetRecorder(r Recorder) {
	s.recorder = r
}

// Query serves key from cache when present, otherwise runs fetch and caches
// the result under the given tags. Concurrent queries for the same key share
// a single fetch.
func (s *Store) Query(ctx context.Context, key string, tags []string, fetch func(context.Context) (any, error)) (any, error) {
	if value, ok := s.lookup(key); ok {
		s.observe(EventHit)
		return value, nil
	}
	s.observe(EventMiss)
	resultChan := s.group.DoChan(key, func() (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.set(key, tags, value)
		return value, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		return res.Val, res.Err
	}
}

// Invalidate drops every entry registered under any of the given tags and
// notifies matching subscribers.
func (s *Store) Invalidate(tags ...string) {
	if len(tags) == 0 {
		return
	}
	s.mu.Lock()
	for key, item := range s.entries {
		if intersects(item.tags, tags) {
			delete(s.entries, key)
		}
	}
	type notification struct {
		fn  func(tag string)
		tag string
	}
	var pending []notification
	for _, sub := range s.subs {
		for _, tag := range tags {
			if _, ok := sub.tags[tag]; ok {
				pending = append(pending, notification{fn: sub.fn, tag: tag})
			}
		}
	}
	s.mu.Unlock()
	s.observe(EventInvalidation)
	// Callbacks run outside the lock so subscribers may re-query.
	for _, n := range pending {
		n.fn(n.tag)
	}
}

// Subscribe registers fn to be called whenever one of the given tags is
// invalidated. The returned cancel func removes the subscription.
func (s *Store) Subscribe(tags []string, fn func(tag string)) func() {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[id] = subscription{tags: tagSet(tags), fn: fn}
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Flush drops every cached entry. Used on logout.
func (s *Store) Flush() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	item, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(item.expires) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return item.value, true
}

func (s *Store) set(key string, tags []string, value any) {
	s.mu.Lock()
	s.entries[key] = entry{
		value:   value,
		tags:    tagSet(tags),
		expires: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
}

func (s *Store) observe(event string) {
	if s.recorder != nil {
		s.recorder.ObserveCache(event)
	}
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func intersects(set map[string]struct{}, tags []string) bool {
	for _, tag := range tags {
		if _, ok := set[tag]; ok {
			return true
		}
	}
	return false
}

// Query fetches a typed result through the store.
func Query[T any](ctx context.Context, s *Store, key string, tags []string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if s == nil {
		return fetch(ctx)
	}
	value, err := s.Query(ctx, key, tags, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("store: cached value for %q has unexpected type %T", key, value)
	}
	return typed, nil
}
