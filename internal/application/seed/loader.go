// Package seed 首次创建存储时导入种子图书
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// Record 种子文件中的一条记录
//
//	[{"title": "Dune", "price": 9.99, "publisher": "Chilton Books", "authors": ["Frank Herbert"]}]
type Record struct {
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Publisher string   `json:"publisher"`
	Authors   []string `json:"authors"`
}

// Report 导入结果
type Report struct {
	Loaded  int // 成功导入的图书数
	Skipped int // 因重复或数据不合法而跳过的记录数
}

// Loader 种子数据导入器
type Loader struct {
	bookService book.Service
}

// NewLoader 创建导入器
func NewLoader(bookService book.Service) *Loader {
	return &Loader{bookService: bookService}
}

// LoadFile 读取并导入种子文件
// 读取或解析失败时在写入任何数据之前中止
func (l *Loader) LoadFile(ctx context.Context, path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("读取种子文件失败: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return Report{}, fmt.Errorf("解析种子文件失败: %w", err)
	}

	return l.Load(ctx, records)
}

// Load 按顺序逐条导入(不能并行:同名作者/出版社的解析不是并发安全的流程)
// - 与已导入图书重复(同书名同出版社)或数据不合法的记录跳过并告警
// - 其他存储错误中止剩余导入,已导入的数据保留
func (l *Loader) Load(ctx context.Context, records []Record) (report Report, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog/application/seed", "LoadSeed")
	defer func() { tracing.End(span, err) }()
	defer func() { metrics.SetGauge(metrics.SeedBooksLoaded, float64(report.Loaded)) }()

	for i, rec := range records {
		_, err := l.bookService.Import(ctx, book.Draft{
			Title:     rec.Title,
			Price:     rec.Price,
			Publisher: rec.Publisher,
			Authors:   rec.Authors,
		})
		if err == nil {
			report.Loaded++
			continue
		}

		if skippable(err) {
			report.Skipped++
			slog.WarnContext(ctx, "seed record skipped",
				"index", i,
				"title", rec.Title,
				"publisher", rec.Publisher,
				"reason", err.Error(),
			)
			continue
		}

		return report, fmt.Errorf("导入第%d条种子记录失败: %w", i, err)
	}

	return report, nil
}

// skippable 重复和校验类错误(4xx)只影响当前记录
func skippable(err error) bool {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.HTTPStatus() < 500
}
