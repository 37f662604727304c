//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	apppublisher "github.com/xiebiao/bookcatalog/internal/application/publisher"
	"github.com/xiebiao/bookcatalog/internal/application/seed"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
)

// infrastructureSet 存储、名称缓存、事件发布
var infrastructureSet = wire.NewSet(
	provideStore,
	provideNameCache,
	provideEventPublisher,
)

// repositorySet 仓储和事务管理器
var repositorySet = wire.NewSet(
	store.NewBookRepository,
	provideAuthorRepository,
	providePublisherRepository,
	store.NewTxManager,
	wire.Bind(new(appbook.Transactor), new(*store.TxManager)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	author.NewService,
	publisher.NewService,
	book.NewService,
)

// applicationSet 用例和种子导入
var applicationSet = wire.NewSet(
	appbook.NewPublishBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewDeleteBookUseCase,
	appauthor.NewGetAuthorUseCase,
	apppublisher.NewGetPublisherUseCase,
	seed.NewLoader,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewPublisherHandler,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按创建的逆序关闭消息队列、Redis和存储
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		router.New,
		newApp,
	)
	return nil, nil, nil
}
