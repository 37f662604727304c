package book

import (
	"math"
	"strings"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 一本书恰好属于一个出版社,可以有零到多个作者(通过book_authors关联)
// 2. (出版社, 书名)唯一,存储层有唯一索引
// 3. 图书只会被创建和删除,没有修改操作
type Book struct {
	ID          uint
	Title       string
	Price       float64
	PublisherID uint
	AuthorIDs   []uint // 关联作者ID,按关联顺序
}

// NewBook 创建新图书(工厂方法)
func NewBook(title string, price float64, publisherID uint) *Book {
	return &Book{
		Title:       title,
		Price:       price,
		PublisherID: publisherID,
		AuthorIDs:   []uint{},
	}
}

// Draft 待录入的图书(来自POST /book或种子文件)
// 出版社和作者都以名称给出,由领域服务解析成ID
type Draft struct {
	Title     string
	Price     float64
	Publisher string
	Authors   []string
}

// Validate 校验草稿
// 规则:
// - 书名、出版社、每个作者名都不能为空或只有空白
// - 同一作者不能出现两次
// - 价格是非负的有限数值
// 作者列表可以为空(种子数据里允许没有作者的图书),POST /book另有要求见Service.Publish
func (d Draft) Validate() error {
	if isBlank(d.Title) || isBlank(d.Publisher) {
		return ErrBlankField
	}

	seen := make(map[string]struct{}, len(d.Authors))
	for _, name := range d.Authors {
		if isBlank(name) {
			return ErrBlankField
		}
		if _, ok := seen[name]; ok {
			return ErrDuplicateAuthor
		}
		seen[name] = struct{}{}
	}

	if math.IsNaN(d.Price) || math.IsInf(d.Price, 0) || d.Price < 0 {
		return ErrInvalidPrice
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
