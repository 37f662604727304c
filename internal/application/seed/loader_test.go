package seed

import (
	"context"
	"os"
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

type fixture struct {
	store      *store.Store
	books      book.Service
	publishers publisher.Service
	loader     *Loader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := store.Open(&config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "books.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	publishers := publisher.NewService(store.NewPublisherRepository(s))
	books := book.NewService(
		store.NewBookRepository(s),
		author.NewService(store.NewAuthorRepository(s)),
		publishers,
	)
	return &fixture{store: s, books: books, publishers: publishers, loader: NewLoader(books)}
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	t.Run("一本书两个作者", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		path := writeSeed(t, `[{"title":"A","price":10,"publisher":"P","authors":["X","Y"]}]`)

		report, err := f.loader.LoadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, Report{Loaded: 1}, report)

		books, err := f.books.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Len(t, books[0].AuthorIDs, 2)
		assert.Equal(t, 10.0, books[0].Price)

		p, err := f.publishers.GetByID(ctx, books[0].PublisherID)
		require.NoError(t, err)
		assert.Equal(t, "P", p.Name)
	})

	t.Run("解析失败不写入任何数据", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		path := writeSeed(t, `[{"title":"A","price":10,"publisher":"P","authors":["X"]}, {"title":`)

		_, err := f.loader.LoadFile(ctx, path)
		assert.Error(t, err)

		books, err := f.books.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)

		var publishers int64
		require.NoError(t, f.store.DB.Model(&store.PublisherModel{}).Count(&publishers).Error)
		assert.Zero(t, publishers)
	})

	t.Run("文件不存在", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestLoader_Load(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	records := []Record{
		{Title: "Dune", Price: 9.99, Publisher: "Chilton Books", Authors: []string{"Frank Herbert"}},
		{Title: "Dune", Price: 5, Publisher: "Chilton Books", Authors: []string{"Frank Herbert"}}, // 重复
		{Title: "", Price: 1, Publisher: "Chilton Books", Authors: []string{"Nobody"}},            // 不合法
		{Title: "Children of Dune", Price: 7.5, Publisher: "Chilton Books", Authors: []string{"Frank Herbert"}},
	}

	report, err := f.loader.Load(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, Report{Loaded: 2, Skipped: 2}, report)

	books, err := f.books.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, books[0].AuthorIDs, books[1].AuthorIDs, "同名作者只创建一次")
	assert.Equal(t, books[0].PublisherID, books[1].PublisherID)
}

func TestLoader_AbortsOnStoreError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 关闭底层连接,模拟存储故障
	require.NoError(t, f.store.Close())

	report, err := f.loader.Load(ctx, []Record{
		{Title: "A", Price: 1, Publisher: "P", Authors: []string{"X"}},
		{Title: "B", Price: 1, Publisher: "P", Authors: []string{"X"}},
	})
	assert.Error(t, err)
	assert.Equal(t, 0, report.Loaded)
	assert.Equal(t, 0, report.Skipped)
}

func TestLoader_BookWithoutAuthors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	path := writeSeed(t, `[{"title":"Anon","price":3,"publisher":"P","authors":[]}]`)

	report, err := f.loader.LoadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, Report{Loaded: 1}, report)

	books, err := f.books.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Anon", books[0].Title)
	assert.Empty(t, books[0].AuthorIDs)

	var links int64
	require.NoError(t, f.store.DB.Model(&store.BookAuthorModel{}).Count(&links).Error)
	assert.Zero(t, links)
}
