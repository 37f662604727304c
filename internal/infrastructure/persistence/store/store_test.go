package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

func testConfig(path string) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", Path: path},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(testConfig(filepath.Join(t.TempDir(), "books.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func countRows(t *testing.T, s *Store, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := s.DB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestOpen_FreshFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")

	first, err := Open(testConfig(path))
	require.NoError(t, err)
	assert.True(t, first.Fresh, "首次创建应标记为Fresh")
	require.NoError(t, first.Close())

	second, err := Open(testConfig(path))
	require.NoError(t, err)
	defer second.Close()
	assert.False(t, second.Fresh, "已存在的存储不应再标记为Fresh")

	for _, table := range []string{"publishers", "authors", "books", "book_authors", "catalog_meta"} {
		assert.True(t, second.DB.Migrator().HasTable(table), "缺少表 %s", table)
	}
}

func TestOpen_Generation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")

	first, err := Open(testConfig(path))
	require.NoError(t, err)
	require.NotEmpty(t, first.Generation)
	require.NoError(t, first.Close())

	reopened, err := Open(testConfig(path))
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, first.Generation, reopened.Generation, "同一个存储重新打开标识不变")

	other := newTestStore(t)
	assert.NotEqual(t, first.Generation, other.Generation, "新建的存储应有新的标识")
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := testConfig("unused")
	cfg.Database.Driver = "oracle"

	_, err := Open(cfg)
	assert.Error(t, err)
}

func TestAuthorRepository_ResolveOrCreate(t *testing.T) {
	s := newTestStore(t)
	repo := NewAuthorRepository(s)
	ctx := context.Background()

	t.Run("新名称只插入一行且幂等", func(t *testing.T) {
		id, err := repo.ResolveOrCreate(ctx, "Frank Herbert")
		require.NoError(t, err)
		assert.NotZero(t, id)

		again, err := repo.ResolveOrCreate(ctx, "Frank Herbert")
		require.NoError(t, err)
		assert.Equal(t, id, again)

		assert.Equal(t, int64(1), countRows(t, s, &AuthorModel{}, "name = ?", "Frank Herbert"))
	})

	t.Run("并发解析同一名称", func(t *testing.T) {
		const workers = 8
		ids := make([]uint, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ids[i], errs[i] = repo.ResolveOrCreate(ctx, "Ursula K. Le Guin")
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}
		assert.Equal(t, int64(1), countRows(t, s, &AuthorModel{}, "name = ?", "Ursula K. Le Guin"))
	})

	t.Run("查找", func(t *testing.T) {
		id, err := repo.ResolveOrCreate(ctx, "Isaac Asimov")
		require.NoError(t, err)

		a, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Isaac Asimov", a.Name)

		byName, err := repo.FindByName(ctx, "Isaac Asimov")
		require.NoError(t, err)
		assert.Equal(t, id, byName.ID)

		_, err = repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestPublisherRepository_ResolveOrCreate(t *testing.T) {
	s := newTestStore(t)
	repo := NewPublisherRepository(s)
	ctx := context.Background()

	id, err := repo.ResolveOrCreate(ctx, "Ace Books")
	require.NoError(t, err)

	again, err := repo.ResolveOrCreate(ctx, "Ace Books")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	other, err := repo.ResolveOrCreate(ctx, "Chilton Books")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ace Books", p.Name)

	_, err = repo.FindByName(ctx, "Tor")
	assert.ErrorIs(t, err, publisher.ErrPublisherNotFound)

	assert.Equal(t, int64(2), countRows(t, s, &PublisherModel{}, ""))
}

// seedBook 写入一本书并关联作者,返回图书ID
func seedBook(t *testing.T, s *Store, title, publisherName string, authors ...string) *book.Book {
	t.Helper()
	ctx := context.Background()

	publisherID, err := NewPublisherRepository(s).ResolveOrCreate(ctx, publisherName)
	require.NoError(t, err)

	authorRepo := NewAuthorRepository(s)
	authorIDs := make([]uint, 0, len(authors))
	for _, name := range authors {
		id, err := authorRepo.ResolveOrCreate(ctx, name)
		require.NoError(t, err)
		authorIDs = append(authorIDs, id)
	}

	repo := NewBookRepository(s)
	b := book.NewBook(title, 9.99, publisherID)
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.LinkAuthors(ctx, b.ID, authorIDs))
	b.AuthorIDs = authorIDs
	return b
}

func TestBookRepository_CreateAndLink(t *testing.T) {
	s := newTestStore(t)
	repo := NewBookRepository(s)
	ctx := context.Background()

	b := seedBook(t, s, "Dune", "Chilton Books", "Frank Herbert")
	assert.NotZero(t, b.ID, "应直接从插入结果回填ID")

	t.Run("同出版社同书名冲突", func(t *testing.T) {
		dup := book.NewBook("Dune", 20, b.PublisherID)
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, book.ErrBookDuplicate)
	})

	t.Run("不同出版社可以同名", func(t *testing.T) {
		other := seedBook(t, s, "Dune", "Ace Books", "Frank Herbert")
		assert.NotEqual(t, b.ID, other.ID)
	})

	t.Run("相同书名和价格的两本书ID不同", func(t *testing.T) {
		p, err := NewPublisherRepository(s).ResolveOrCreate(ctx, "Gollancz")
		require.NoError(t, err)

		first := book.NewBook("Twin", 5, p)
		second := book.NewBook("Twin 2", 5, p)
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("重复关联返回冲突", func(t *testing.T) {
		err := repo.LinkAuthors(ctx, b.ID, b.AuthorIDs)
		assert.ErrorIs(t, err, book.ErrAuthorLinkDuplicate)
	})

	t.Run("输入中重复的作者ID返回冲突", func(t *testing.T) {
		fresh := seedBook(t, s, "Children of Dune", "Chilton Books")
		a, err := NewAuthorRepository(s).ResolveOrCreate(ctx, "Brian Herbert")
		require.NoError(t, err)

		err = repo.LinkAuthors(ctx, fresh.ID, []uint{a, a})
		assert.ErrorIs(t, err, book.ErrAuthorLinkDuplicate)
	})

	t.Run("出版社不存在时外键拒绝写入", func(t *testing.T) {
		err := repo.Create(ctx, book.NewBook("Orphan", 1, 424242))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, book.ErrBookDuplicate)
	})
}

func TestBookRepository_Queries(t *testing.T) {
	s := newTestStore(t)
	repo := NewBookRepository(s)
	ctx := context.Background()

	t.Run("空库返回空切片", func(t *testing.T) {
		books, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	dune := seedBook(t, s, "Dune", "Chilton Books", "Frank Herbert")
	goodOmens := seedBook(t, s, "Good Omens", "Gollancz", "Terry Pratchett", "Neil Gaiman")
	noAuthors := seedBook(t, s, "Anonymous", "Gollancz")

	t.Run("列表带作者ID", func(t *testing.T) {
		books, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 3)

		assert.Equal(t, dune.ID, books[0].ID)
		assert.Equal(t, dune.AuthorIDs, books[0].AuthorIDs)
		assert.ElementsMatch(t, goodOmens.AuthorIDs, books[1].AuthorIDs)
		assert.Empty(t, books[2].AuthorIDs)
		assert.NotNil(t, books[2].AuthorIDs)
	})

	t.Run("按ID查找", func(t *testing.T) {
		got, err := repo.FindByID(ctx, goodOmens.ID)
		require.NoError(t, err)
		assert.Equal(t, "Good Omens", got.Title)
		assert.InDelta(t, 9.99, got.Price, 1e-9)
		assert.Len(t, got.AuthorIDs, 2)

		_, err = repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("按书名和出版社查找", func(t *testing.T) {
		got, err := repo.FindByTitleAndPublisher(ctx, "Dune", dune.PublisherID)
		require.NoError(t, err)
		assert.Equal(t, dune.ID, got.ID)

		_, err = repo.FindByTitleAndPublisher(ctx, "Dune", goodOmens.PublisherID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("按作者查询", func(t *testing.T) {
		books, err := repo.ListByAuthor(ctx, goodOmens.AuthorIDs[1])
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Good Omens", books[0].Title)
		assert.Len(t, books[0].AuthorIDs, 2, "应带上全部作者而非仅查询的作者")
	})

	t.Run("按出版社查询", func(t *testing.T) {
		books, err := repo.ListByPublisher(ctx, goodOmens.PublisherID)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, goodOmens.ID, books[0].ID)
		assert.Equal(t, noAuthors.ID, books[1].ID)

		books, err = repo.ListByPublisher(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookRepository_DeleteInTransaction(t *testing.T) {
	s := newTestStore(t)
	repo := NewBookRepository(s)
	tx := NewTxManager(s)
	ctx := context.Background()

	b := seedBook(t, s, "Good Omens", "Gollancz", "Terry Pratchett", "Neil Gaiman")

	t.Run("出错时回滚", func(t *testing.T) {
		boom := errors.New("boom")
		err := tx.Transaction(ctx, func(ctx context.Context) error {
			if err := repo.UnlinkAuthors(ctx, b.ID); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, int64(2), countRows(t, s, &BookAuthorModel{}, "book_id = ?", b.ID))
	})

	t.Run("删除图书及关联行", func(t *testing.T) {
		err := tx.Transaction(ctx, func(ctx context.Context) error {
			if err := repo.UnlinkAuthors(ctx, b.ID); err != nil {
				return err
			}
			return repo.Delete(ctx, b.ID)
		})
		require.NoError(t, err)

		assert.Equal(t, int64(0), countRows(t, s, &BookAuthorModel{}, "book_id = ?", b.ID))
		assert.Equal(t, int64(0), countRows(t, s, &BookModel{}, "id = ?", b.ID))
		assert.Equal(t, int64(2), countRows(t, s, &AuthorModel{}, ""), "作者不随图书删除")
	})

	t.Run("删除不存在的图书", func(t *testing.T) {
		err := repo.Delete(ctx, b.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("有关联行时外键阻止直接删除", func(t *testing.T) {
		other := seedBook(t, s, "Dune", "Chilton Books", "Frank Herbert")
		err := repo.Delete(ctx, other.ID)
		assert.Error(t, err)
	})
}

func TestIsDuplicateError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{fmt.Errorf("wrapped: %w", gorm.ErrDuplicatedKey), true},
		{errors.New("Error 1062 (23000): Duplicate entry 'x' for key 'authors.idx_authors_name'"), true},
		{errors.New("UNIQUE constraint failed: authors.name"), true},
		{errors.New("FOREIGN KEY constraint failed"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, isDuplicateError(tc.err), "%v", tc.err)
	}
}
