package mailbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestWins(t *testing.T) {
	m := New[int]()
	m.Put(1)
	m.Put(2)
	m.Put(3)

	require.True(t, m.HasJob())
	j, ok := m.Take(context.Background())
	require.True(t, ok)
	assert.Equal(t, 3, j)
	assert.False(t, m.HasJob())
	assert.Nil(t, m.TryTake())
}

func TestTakeBlocksUntilPut(t *testing.T) {
	m := New[string]()
	got := make(chan string, 1)

	go func() {
		j, _ := m.Take(context.Background())
		got <- j
	}()

	time.Sleep(20 * time.Millisecond)
	m.Put("sweep")

	select {
	case j := <-got:
		assert.Equal(t, "sweep", j)
	case <-time.After(2 * time.Second):
		t.Fatal("Take did not return after Put")
	}
}

func TestTakeHonoursContext(t *testing.T) {
	m := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, ok := m.Take(ctx)
	assert.False(t, ok)
}

func TestStaleSignalDoesNotReturnEmpty(t *testing.T) {
	m := New[int]()
	m.Put(1)
	require.NotNil(t, m.TryTake()) // leaves a signal in the channel

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, ok := m.Take(ctx)
	assert.False(t, ok, "a drained mailbox must keep waiting")
}
