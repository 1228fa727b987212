// Package product 产品常量
package product

// Version 版本号
const Version = "0.1.0"

// VersionID 配置文件使用的版本编号
const VersionID int32 = 1
