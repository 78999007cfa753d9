package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueryCachesUntilInvalidated(t *testing.T) {
	s := New(time.Minute)
	ctx := context.Background()
	var calls int32

	fetch := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "payload", nil
	}

	for i := 0; i < 3; i++ {
		value, err := Query(ctx, s, "users:list", []string{"users"}, fetch)
		require.NoError(t, err)
		require.Equal(t, "payload", value)
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))

	s.Invalidate("users")

	_, err := Query(ctx, s, "users:list", []string{"users"}, fetch)
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInvalidateOnlyMatchingTags(t *testing.T) {
	s := New(time.Minute)
	ctx := context.Background()
	var userCalls, roleCalls int32

	queryUsers := func() {
		_, err := Query(ctx, s, "users:list", []string{"users"}, func(context.Context) (int, error) {
			atomic.AddInt32(&userCalls, 1)
			return 0, nil
		})
		require.NoError(t, err)
	}
	queryRoles := func() {
		_, err := Query(ctx, s, "roles:list", []string{"roles"}, func(context.Context) (int, error) {
			atomic.AddInt32(&roleCalls, 1)
			return 0, nil
		})
		require.NoError(t, err)
	}

	queryUsers()
	queryRoles()
	s.Invalidate("users")
	queryUsers()
	queryRoles()

	require.Equal(t, int32(2), atomic.LoadInt32(&userCalls))
	require.Equal(t, int32(1), atomic.LoadInt32(&roleCalls))
}

func TestInFlightQueriesAreDeduplicated(t *testing.T) {
	s := New(time.Minute)
	ctx := context.Background()
	var calls int32
	release := make(chan struct{})

	fetch := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Query(ctx, s, "stats", []string{"admin-stats"}, fetch)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "shared", results[i])
	}
}

func TestSubscribersNotifiedOnInvalidation(t *testing.T) {
	s := New(time.Minute)

	var mu sync.Mutex
	var seen []string
	cancel := s.Subscribe([]string{"users", "roles"}, func(tag string) {
		mu.Lock()
		seen = append(seen, tag)
		mu.Unlock()
	})

	s.Invalidate("users")
	s.Invalidate("chemicals")
	s.Invalidate("roles")

	mu.Lock()
	require.Equal(t, []string{"users", "roles"}, seen)
	mu.Unlock()

	cancel()
	s.Invalidate("users")
	mu.Lock()
	require.Len(t, seen, 2)
	mu.Unlock()
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	s := New(10 * time.Millisecond)
	ctx := context.Background()
	var calls int32

	fetch := func(context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	first, err := Query(ctx, s, "k", []string{"t"}, fetch)
	require.NoError(t, err)
	require.Equal(t, 1, first)

	time.Sleep(25 * time.Millisecond)

	second, err := Query(ctx, s, "k", []string{"t"}, fetch)
	require.NoError(t, err)
	require.Equal(t, 2, second)
}

func TestFetchErrorsAreNotCached(t *testing.T) {
	s := New(time.Minute)
	ctx := context.Background()
	var calls int32

	_, err := Query(ctx, s, "k", []string{"t"}, func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, context.DeadlineExceeded
	})
	require.Error(t, err)

	value, err := Query(ctx, s, "k", []string{"t"}, func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFlushDropsEverything(t *testing.T) {
	s := New(time.Minute)
	ctx := context.Background()
	var calls int32

	fetch := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, nil
	}

	_, err := Query(ctx, s, "a", []string{"t"}, fetch)
	require.NoError(t, err)
	_, err = Query(ctx, s, "b", []string{"u"}, fetch)
	require.NoError(t, err)

	s.Flush()

	_, err = Query(ctx, s, "a", []string{"t"}, fetch)
	require.NoError(t, err)
	_, err = Query(ctx, s, "b", []string{"u"}, fetch)
	require.NoError(t, err)
	require.Equal(t, int32(4), atomic.LoadInt32(&calls))
}
