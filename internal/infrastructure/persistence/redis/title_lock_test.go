package redis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func newTestLocker(t *testing.T, ttl, wait time.Duration) (*TitleLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTitleLocker(client, ttl, wait), mr
}

func TestTitleLocker_Lock(t *testing.T) {
	ctx := context.Background()

	t.Run("同一书名互斥", func(t *testing.T) {
		l, mr := newTestLocker(t, 10*time.Second, 50*time.Millisecond)

		unlock, err := l.Lock(ctx, "Foo")
		require.NoError(t, err)
		assert.True(t, mr.Exists(titleLockPrefix+"Foo"))

		_, err = l.Lock(ctx, "Foo")
		assert.ErrorIs(t, err, book.ErrTitleLockTimeout)

		unlock()
		assert.False(t, mr.Exists(titleLockPrefix+"Foo"))

		unlock2, err := l.Lock(ctx, "Foo")
		require.NoError(t, err)
		unlock2()
	})

	t.Run("不同书名互不影响", func(t *testing.T) {
		l, _ := newTestLocker(t, 10*time.Second, 50*time.Millisecond)

		unlockFoo, err := l.Lock(ctx, "Foo")
		require.NoError(t, err)
		defer unlockFoo()

		unlockBar, err := l.Lock(ctx, "Bar")
		require.NoError(t, err)
		unlockBar()
	})

	t.Run("过期后不误删他人的锁", func(t *testing.T) {
		l, mr := newTestLocker(t, time.Second, 50*time.Millisecond)

		unlockOld, err := l.Lock(ctx, "Foo")
		require.NoError(t, err)

		mr.FastForward(2 * time.Second)

		unlockNew, err := l.Lock(ctx, "Foo")
		require.NoError(t, err)

		unlockOld()
		assert.True(t, mr.Exists(titleLockPrefix+"Foo"), "新持有者的锁仍然存在")

		unlockNew()
		assert.False(t, mr.Exists(titleLockPrefix+"Foo"))
	})

	t.Run("Redis不可用", func(t *testing.T) {
		l, mr := newTestLocker(t, time.Second, 5*time.Second)
		mr.Close()

		_, err := l.Lock(ctx, "Foo")
		require.Error(t, err)
		assert.False(t, errors.Is(err, book.ErrTitleLockTimeout))
		assert.ErrorIs(t, err, apperrors.ErrRedisError)
	})
}

// slowRepository 查重与写入之间留出竞态窗口
type slowRepository struct {
	book.Repository
	mu     sync.Mutex
	titles map[string]bool
	saves  int32
}

func (r *slowRepository) FindByTitle(_ context.Context, title string) (*book.Book, error) {
	r.mu.Lock()
	exists := r.titles[title]
	r.mu.Unlock()
	time.Sleep(5 * time.Millisecond)
	if exists {
		return &book.Book{Title: title}, nil
	}
	return nil, book.ErrBookNotFound
}

func (r *slowRepository) Save(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles[b.Title] = true
	b.ID = uint(atomic.AddInt32(&r.saves, 1))
	return nil
}

func TestTitleLocker_ServiceCreateRace(t *testing.T) {
	mr := miniredis.RunT(t)
	repo := &slowRepository{titles: map[string]bool{}}

	// 模拟两个服务实例:各自的客户端共享同一个Redis
	var services []book.Service
	for i := 0; i < 2; i++ {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		services = append(services, book.NewService(repo, NewTitleLocker(client, 5*time.Second, 5*time.Second)))
	}

	const n = 8
	var wg sync.WaitGroup
	var created, conflicts int32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(svc book.Service) {
			defer wg.Done()
			_, err := svc.CreateBook(context.Background(), &book.Book{Title: "Foo"})
			switch {
			case err == nil:
				atomic.AddInt32(&created, 1)
			case errors.Is(err, book.ErrBookAlreadyExists):
				atomic.AddInt32(&conflicts, 1)
			}
		}(services[i%2])
	}
	wg.Wait()

	assert.Equal(t, int32(1), created)
	assert.Equal(t, int32(n-1), conflicts)
}
