package dto

// AddBookRequest POST /book请求体
// 字段使用指针区分"缺失"和"空值":缺失由binding:"required"拦截,空白由领域层校验
type AddBookRequest struct {
	Title     *string   `json:"title" binding:"required" example:"Good Omens"`
	Price     *float64  `json:"price" binding:"required" example:"12.5"`
	Publisher *string   `json:"publisher" binding:"required" example:"Gollancz"`
	Authors   *[]string `json:"authors" binding:"required" example:"Terry Pratchett,Neil Gaiman"`
}

// BookResponse 图书行
// authors是作者ID列表,名称通过/author/id/:id获取
type BookResponse struct {
	ID          uint    `json:"id" example:"1"`
	Title       string  `json:"title" example:"Good Omens"`
	Price       float64 `json:"price" example:"12.5"`
	PublisherID uint    `json:"publisher_id" example:"1"`
	Authors     []uint  `json:"authors"`
}

// BookCreatedResponse 新增图书后返回的ID
type BookCreatedResponse struct {
	ID uint `json:"id" example:"1"`
}

// NameResponse 作者/出版社名称
type NameResponse struct {
	Name string `json:"name" example:"Neil Gaiman"`
}
