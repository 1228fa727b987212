// Package structs 存储表结构
package structs

import "time"

// Documents 命名 JSON 文档
type Documents struct {
	ID        uint32 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"uniqueIndex;size:255"`
	Body      string
	UpdatedAt time.Time
}

// Tables 需要迁移的全部表
var Tables = []any{
	&Documents{},
}
