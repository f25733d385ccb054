// Package keylock provides mutual exclusion keyed by conflict domain, so that
// a read-check-write sequence on one domain never interleaves with another
// sequence on the same domain.
package keylock

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var (
	ErrLockTimeout     = errors.New("timed out waiting for lock")
	ErrLockUnavailable = errors.New("lock backend unavailable")
)

// Unlock releases a held lock. Calling it more than once is a no-op.
type Unlock func()

type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

// LockAll acquires every key in a stable order, which keeps two callers with
// overlapping key sets from deadlocking. Keys are released in reverse order.
func LockAll(ctx context.Context, l Locker, keys []string) (Unlock, error) {
	ordered := Normalize(keys)
	held := make([]Unlock, 0, len(ordered))

	releaseAll := func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i]()
		}
	}

	for _, key := range ordered {
		unlock, err := l.Lock(ctx, key)
		if err != nil {
			releaseAll()
			return nil, err
		}
		held = append(held, unlock)
	}

	var once sync.Once
	return func() { once.Do(releaseAll) }, nil
}

// Normalize sorts keys and drops duplicates and empty keys.
func Normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	uniq := out[:0]
	for i, k := range out {
		if i == 0 || k != out[i-1] {
			uniq = append(uniq, k)
		}
	}
	return uniq
}

// Local is an in-process Locker. Entries exist only while some caller holds
// or waits for the key.
type Local struct {
	mu   sync.Mutex
	keys map[string]*slot
}

type slot struct {
	sem  chan struct{}
	refs int
}

func NewLocal() *Local {
	return &Local{keys: make(map[string]*slot)}
}

func (l *Local) Lock(ctx context.Context, key string) (Unlock, error) {
	l.mu.Lock()
	s, ok := l.keys[key]
	if !ok {
		s = &slot{sem: make(chan struct{}, 1)}
		l.keys[key] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(key, s)
		return nil, errors.Join(ErrLockTimeout, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.sem
			l.release(key, s)
		})
	}, nil
}

func (l *Local) release(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.keys, key)
	}
}

// Len reports how many keys are currently held or awaited.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}
