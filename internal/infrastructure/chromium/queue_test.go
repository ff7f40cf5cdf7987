package chromium

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkQueue_PreservesOrder(t *testing.T) {
	q := newWorkQueue()
	defer q.close()

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		n := i
		q.push(func() {
			mu.Lock()
			got = append(got, n)
			mu.Unlock()
			if n == 99 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queue did not drain")
	}
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 100)
	for i, n := range got {
		assert.Equal(t, i, n)
	}
}

func TestWorkQueue_CloseRejectsWork(t *testing.T) {
	q := newWorkQueue()
	q.close()

	select {
	case <-q.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.False(t, q.push(func() { t.Error("must not run") }))
}
