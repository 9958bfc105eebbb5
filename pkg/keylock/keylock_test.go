package keylock

import (
	"sync"
	"testing"
	"time"
)

func TestLock_SameKeySerializes(t *testing.T) {
	kl := New()
	var mu sync.Mutex
	active, maxActive := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := kl.Lock("71231231231")
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()
	if maxActive != 1 {
		t.Fatalf("max concurrent holders = %d, want 1", maxActive)
	}
}

func TestLock_DifferentKeysDoNotBlock(t *testing.T) {
	kl := New()
	unlockA := kl.Lock("71111111111")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := kl.Lock("72222222222")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestLock_EntryFreedAfterUnlock(t *testing.T) {
	kl := New()
	unlock := kl.Lock("71231231231")
	unlock()

	kl.mu.Lock()
	n := len(kl.entries)
	kl.mu.Unlock()
	if n != 0 {
		t.Fatalf("entries = %d after unlock, want 0", n)
	}
}
