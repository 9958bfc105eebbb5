// Package keylock provides per-key mutual exclusion. Different keys proceed
// in parallel; the same key is serialized.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyLock struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyLock {
	return &KeyLock{entries: make(map[string]*entry)}
}

// Lock blocks until the key is free and returns the unlock func. Entries are
// dropped once no goroutine holds or waits on them.
func (k *KeyLock) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
