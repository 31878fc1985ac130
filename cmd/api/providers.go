package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/sqlstore"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：数据库连接、书名锁、事件发布
var infrastructureSet = wire.NewSet(
	provideDB,
	provideTitleLocker,
	messaging.NewEventPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	sqlstore.NewTxManager,
	sqlstore.NewBookRepository,
	sqlstore.NewAuthorRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
	author.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	router.New,
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideDB 创建数据库连接,cleanup关闭连接池
func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := sqlstore.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideTitleLocker 按配置选择书名锁
// redis.enabled=true时使用Redis分布式锁(多实例部署),否则使用进程内锁
func provideTitleLocker(cfg *config.Config, log *zap.Logger) (book.TitleLocker, func(), error) {
	if !cfg.Redis.Enabled {
		return book.NewLocalTitleLocker(), func() {}, nil
	}

	client, err := redis.NewClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("关闭Redis连接失败", zap.Error(err))
		}
	}
	return redis.NewTitleLocker(client, cfg.Redis.LockTTL, cfg.Redis.LockWait), cleanup, nil
}
