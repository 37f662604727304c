package author

// Author 作者实体
// 设计说明:
// 1. 名称是事实上的自然键,新增图书时按名称复用已有作者
// 2. 作者一经创建不会被修改或删除(即使已没有关联图书)
type Author struct {
	ID   uint
	Name string
}
