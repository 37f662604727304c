package store

// 以下是GORM数据模型,domain层的实体不依赖GORM,由Repository负责转换

// PublisherModel 出版社表
type PublisherModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:128;not null"`
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// AuthorModel 作者表
type AuthorModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:128;not null"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel 图书表
// (publisher_id, title)联合唯一索引:同一出版社下书名不能重复
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"uniqueIndex:idx_books_publisher_title,priority:2;size:128;not null"`
	Price       float64         `gorm:"not null"`
	PublisherID uint            `gorm:"uniqueIndex:idx_books_publisher_title,priority:1;not null"`
	Publisher   *PublisherModel `gorm:"foreignKey:PublisherID"` // 仅用于生成外键约束
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookAuthorModel 图书-作者关联表
// 复合主键(book_id, author_id);删除图书时由仓储显式删除关联行,不依赖级联
type BookAuthorModel struct {
	BookID   uint         `gorm:"primaryKey;autoIncrement:false"`
	AuthorID uint         `gorm:"primaryKey;autoIncrement:false;index"`
	Book     *BookModel   `gorm:"foreignKey:BookID"`
	Author   *AuthorModel `gorm:"foreignKey:AuthorID"`
}

// TableName 指定表名
func (BookAuthorModel) TableName() string {
	return "book_authors"
}

// MetaModel 存储元数据(键值)
// generation: 存储首次创建时生成,外部缓存以它区分不同的数据库实例
type MetaModel struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value string `gorm:"size:255;not null"`
}

// TableName 指定表名
func (MetaModel) TableName() string {
	return "catalog_meta"
}
