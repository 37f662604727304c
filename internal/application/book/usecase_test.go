package book

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
)

type recordedEvent struct {
	key   string
	event BookEvent
}

// recordingPublisher 记录发布的事件,err不为空时模拟发布失败
type recordingPublisher struct {
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, recordedEvent{key: key, event: message.(BookEvent)})
	return nil
}

type testApp struct {
	store   *store.Store
	publish *PublishBookUseCase
	list    *ListBooksUseCase
	delete  *DeleteBookUseCase
	events  *recordingPublisher
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	s, err := store.Open(&config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "books.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	svc := book.NewService(
		store.NewBookRepository(s),
		author.NewService(store.NewAuthorRepository(s)),
		publisher.NewService(store.NewPublisherRepository(s)),
	)
	events := &recordingPublisher{}

	return &testApp{
		store:   s,
		publish: NewPublishBookUseCase(svc, events),
		list:    NewListBooksUseCase(svc),
		delete:  NewDeleteBookUseCase(svc, store.NewTxManager(s), events),
		events:  events,
	}
}

func goodOmens() PublishBookRequest {
	return PublishBookRequest{
		Title:     "Good Omens",
		Price:     12.5,
		Publisher: "Gollancz",
		Authors:   []string{"Terry Pratchett", "Neil Gaiman"},
	}
}

func TestPublishBookUseCase(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	t.Run("新增后出现在列表中", func(t *testing.T) {
		resp, err := app.publish.Execute(ctx, goodOmens())
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)

		items, err := app.list.Execute(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, resp.ID, items[0].ID)
		assert.Equal(t, "Good Omens", items[0].Title)
		assert.Equal(t, 12.5, items[0].Price)
		assert.Len(t, items[0].Authors, 2)

		require.Len(t, app.events.events, 1)
		assert.Equal(t, RoutingKeyBookAdded, app.events.events[0].key)
		assert.Equal(t, resp.ID, app.events.events[0].event.BookID)
	})

	t.Run("重复图书返回冲突", func(t *testing.T) {
		_, err := app.publish.Execute(ctx, goodOmens())
		assert.ErrorIs(t, err, book.ErrBookDuplicate)
		assert.Len(t, app.events.events, 1, "失败时不发布事件")
	})

	t.Run("事件发布失败不影响结果", func(t *testing.T) {
		app.events.err = errors.New("broker unavailable")
		defer func() { app.events.err = nil }()

		req := goodOmens()
		req.Title = "Good Omens (Anniversary Edition)"
		resp, err := app.publish.Execute(ctx, req)
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
	})
}

func TestListBooksUseCase(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	t.Run("空列表序列化为空数组", func(t *testing.T) {
		items, err := app.list.Execute(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	resp, err := app.publish.Execute(ctx, goodOmens())
	require.NoError(t, err)

	items, err := app.list.Execute(ctx)
	require.NoError(t, err)
	publisherID := items[0].PublisherID
	authorID := items[0].Authors[0]

	t.Run("按作者", func(t *testing.T) {
		byAuthor, err := app.list.ByAuthor(ctx, authorID)
		require.NoError(t, err)
		require.Len(t, byAuthor, 1)
		assert.Equal(t, resp.ID, byAuthor[0].ID)

		_, err = app.list.ByAuthor(ctx, 999)
		assert.ErrorIs(t, err, book.ErrNoBooksFound)
	})

	t.Run("按出版社", func(t *testing.T) {
		byPublisher, err := app.list.ByPublisher(ctx, publisherID)
		require.NoError(t, err)
		require.Len(t, byPublisher, 1)
		assert.Len(t, byPublisher[0].Authors, 2)

		_, err = app.list.ByPublisher(ctx, 999)
		assert.ErrorIs(t, err, book.ErrNoBooksFound)
	})
}

func TestDeleteBookUseCase(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	resp, err := app.publish.Execute(ctx, goodOmens())
	require.NoError(t, err)

	require.NoError(t, app.delete.Execute(ctx, resp.ID))

	items, err := app.list.Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	var links int64
	require.NoError(t, app.store.DB.Model(&store.BookAuthorModel{}).Where("book_id = ?", resp.ID).Count(&links).Error)
	assert.Zero(t, links)

	last := app.events.events[len(app.events.events)-1]
	assert.Equal(t, RoutingKeyBookDeleted, last.key)
	assert.Equal(t, resp.ID, last.event.BookID)

	err = app.delete.Execute(ctx, resp.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), RoutingKeyBookAdded, BookEvent{}))
}
