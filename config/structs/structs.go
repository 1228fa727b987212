// Package structs 配置结构定义
package structs

// Config 库配置
type Config struct {
	Version   int32  // 配置文件版本
	MaxDepth  int32  `default:"300"`       // 解码最大嵌套深度
	StorePath string `default:".mizar0"`   // 文档存储目录
	StoreFile string `default:"db.sqlite"` // 文档存储文件名
}
