package applications

import "sync"

// keyedMutex hands out one mutex per key so the admission sequence runs as
// a critical section scoped to the applicant and vacancy involved, not the
// whole process. Entries are reference counted and dropped when idle.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockRef
}

type lockRef struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*lockRef)}
}

func (k *keyedMutex) lock(key string) {
	k.mu.Lock()
	ref, ok := k.locks[key]
	if !ok {
		ref = &lockRef{}
		k.locks[key] = ref
	}
	ref.refs++
	k.mu.Unlock()

	ref.mu.Lock()
}

func (k *keyedMutex) unlock(key string) {
	k.mu.Lock()
	ref := k.locks[key]
	ref.refs--
	if ref.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	ref.mu.Unlock()
}
