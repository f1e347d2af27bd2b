package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestCache() *Cache {
	return New(NewMemoryStore(), zap.NewNop().Sugar())
}

func TestGetOrFetch_MissThenHit(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	key := Key{Collection: CollectionBookmarks, UserID: 1}

	var calls int32
	fetch := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"a", "b"}, nil
	}

	got, err := GetOrFetch(ctx, c, key, time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	// второй вызов — из кэша, загрузчик не дёргается
	got, err = GetOrFetch(ctx, c, key, time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrFetch_ConcurrentSingleFlight(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	key := Key{Collection: CollectionFolders, UserID: 2}

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (int, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return 7, nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := GetOrFetch(ctx, c, key, time.Minute, fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, 7, v)
	}
	// конкурентные промахи не порождают параллельных загрузок
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	key := Key{Collection: CollectionSearchEngines, UserID: 3}

	var calls int32
	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "v", nil
	}

	_, err := GetOrFetch(ctx, c, key, time.Minute, fetch)
	assert.NoError(t, err)
	c.Invalidate(ctx, key)
	_, err = GetOrFetch(ctx, c, key, time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	key := Key{Collection: CollectionBookmarks, UserID: 4}

	assert.NoError(t, s.Set(ctx, key, []byte("x"), 10*time.Millisecond))
	_, ok, err := s.Get(ctx, key)
	assert.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok, err = s.Get(ctx, key)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestKey_String(t *testing.T) {
	k := Key{Collection: CollectionBookmarks, UserID: 42}
	assert.Equal(t, "bookmarks:42", k.String())
}
