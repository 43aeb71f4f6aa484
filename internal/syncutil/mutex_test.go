package syncutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutexSerializes(t *testing.T) {
	var mu Mutex
	var l sync.Locker = &mu
	var wg sync.WaitGroup
	n := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				l.Lock()
				n++
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1600, n)
}
