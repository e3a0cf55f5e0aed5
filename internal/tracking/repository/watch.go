package repository

import (
	"context"
	"sync"
)

// Table identifies one of the tracked tables for change notification.
type Table string

const (
	TableSkills     Table = "skills"
	TableFlashcards Table = "flashcards"
	TableActivities Table = "activities"
	TableProgress   Table = "user_progress"
)

// changeHub is a table-level invalidation map: writers notify the tables
// they touched, and every live subscription on those tables gets poked to
// re-run its query. Notifications coalesce; a subscriber that is already
// pending is not queued twice.
type changeHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[Table]map[int]chan struct{}
}

func newChangeHub() *changeHub {
	return &changeHub{subs: make(map[Table]map[int]chan struct{})}
}

// notify wakes all subscriptions watching any of the given tables. Writers
// call it after the write has committed so re-queries observe the new state.
func (h *changeHub) notify(tables ...Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, table := range tables {
		for _, ch := range h.subs[table] {
			select {
			case ch <- struct{}{}:
			default: // already pending, coalesce
			}
		}
	}
}

// subscribe registers interest in the given tables. The returned channel
// fires when any of them change; the cancel func deregisters.
func (h *changeHub) subscribe(tables ...Table) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	for _, table := range tables {
		if h.subs[table] == nil {
			h.subs[table] = make(map[int]chan struct{})
		}
		h.subs[table][id] = ch
	}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		for _, table := range tables {
			delete(h.subs[table], id)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// watchQuery runs query once to emit the current value, then re-runs and
// re-emits it whenever one of the watched tables changes. The output channel
// always holds the latest snapshot: a slow receiver sees stale emissions
// replaced, never a backlog. Cancelling the context closes the channel.
func watchQuery[T any](ctx context.Context, hub *changeHub, tables []Table, query func() (T, error)) (<-chan T, error) {
	initial, err := query()
	if err != nil {
		return nil, err
	}

	changes, cancel := hub.subscribe(tables...)

	out := make(chan T, 1)
	out <- initial

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				value, err := query()
				if err != nil {
					// Reads have no side effects; a failed re-query keeps
					// the previous emission and waits for the next change.
					continue
				}
				sendLatest(out, value)
			}
		}
	}()

	return out, nil
}

// sendLatest delivers v on out, displacing an unconsumed older value if the
// receiver has fallen behind.
func sendLatest[T any](out chan T, v T) {
	for {
		select {
		case out <- v:
			return
		default:
			select {
			case <-out:
			default:
			}
		}
	}
}
