package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	c.Inc()
	c.Add(4)
	assert.Equal(t, uint64(5), c.Load())
}

func TestCounter_Concurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(5000), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), 5*time.Millisecond)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	r.Counter("orders_created").Inc()
	r.Counter("orders_created").Inc()
	r.Counter("orders_failed").Inc()

	snap := r.Snapshot()
	assert.Equal(t, uint64(2), snap["orders_created"])
	assert.Equal(t, uint64(1), snap["orders_failed"])

	// Snapshot is a copy, not a live view.
	snap["orders_created"] = 99
	assert.Equal(t, uint64(2), r.Counter("orders_created").Load())
}
