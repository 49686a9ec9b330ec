package services

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// keyedMutex serialises work per key with a fixed set of stripes, so memory
// stays flat however many voters show up. Unrelated keys may share a stripe.
type keyedMutex struct {
	stripes [lockStripes]sync.Mutex
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	m := &k.stripes[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}
