package redis

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

const (
	titleLockPrefix = "bookshelf:lock:title:"
	lockRetryDelay  = 20 * time.Millisecond
)

// releaseScript 只删除自己持有的锁(值等于token)
// 锁过期后被其他实例获取时,原持有者的释放不能误删
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TitleLocker 基于Redis的书名分布式锁
// 设计说明:
// 1. SET key token NX PX ttl 获取锁,ttl防止持有者崩溃后死锁
// 2. 获取失败时按固定间隔重试,直到wait超时或ctx取消
// 3. 多实例部署时替代进程内的book.LocalTitleLocker
type TitleLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

var _ book.TitleLocker = (*TitleLocker)(nil)

// NewTitleLocker 创建书名锁
func NewTitleLocker(client *redis.Client, ttl, wait time.Duration) *TitleLocker {
	return &TitleLocker{client: client, ttl: ttl, wait: wait}
}

// Lock 获取书名锁,返回的unlock可重复调用
func (l *TitleLocker) Lock(ctx context.Context, title string) (func(), error) {
	key := titleLockPrefix + title
	token := uuid.NewString()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, book.ErrTitleLockTimeout
			}
			return nil, apperrors.WithCause(apperrors.ErrRedisError, err)
		}
		if ok {
			return l.unlockFunc(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, book.ErrTitleLockTimeout
		case <-time.After(lockRetryDelay):
		}
	}
}

func (l *TitleLocker) unlockFunc(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			// 请求ctx可能已取消,释放锁使用独立的超时
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
		})
	}
}
