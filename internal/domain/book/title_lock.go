package book

import (
	"context"
	"sync"
)

// TitleLocker 书名互斥锁
// 创建图书时"先查重再插入"不是原子操作,同一书名的创建请求必须串行执行
// Lock返回的unlock函数必须调用
type TitleLocker interface {
	Lock(ctx context.Context, title string) (unlock func(), err error)
}

// LocalTitleLocker 进程内书名锁(单实例部署)
// 每个书名一个带引用计数的信号量,无人等待时回收
type LocalTitleLocker struct {
	mu    sync.Mutex
	locks map[string]*titleLock
}

type titleLock struct {
	ch   chan struct{}
	refs int
}

// NewLocalTitleLocker 创建进程内书名锁
func NewLocalTitleLocker() *LocalTitleLocker {
	return &LocalTitleLocker{locks: make(map[string]*titleLock)}
}

// Lock 获取书名锁,ctx取消时返回ErrTitleLockTimeout
func (l *LocalTitleLocker) Lock(ctx context.Context, title string) (func(), error) {
	l.mu.Lock()
	tl, ok := l.locks[title]
	if !ok {
		tl = &titleLock{ch: make(chan struct{}, 1)}
		l.locks[title] = tl
	}
	tl.refs++
	l.mu.Unlock()

	select {
	case tl.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(title, tl)
		return nil, ErrTitleLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-tl.ch
			l.release(title, tl)
		})
	}, nil
}

func (l *LocalTitleLocker) release(title string, tl *titleLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tl.refs--
	if tl.refs == 0 {
		delete(l.locks, title)
	}
}
