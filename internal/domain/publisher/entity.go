package publisher

// Publisher 出版社实体
// 每本图书恰好属于一个出版社;名称唯一,由存储层唯一索引保证
type Publisher struct {
	ID   uint
	Name string
}
