// Package config 配置加载
//
// 配置文件本身是 JSON，读取路径用本仓库自己的解码器，
// 文件缺失或非法时回退默认值
package config

import (
	"os"
	"path/filepath"

	"github.com/cxykevin/mizar0/config/structs"
	"github.com/cxykevin/mizar0/decoder"
	"github.com/cxykevin/mizar0/internal/configutil"
	"github.com/cxykevin/mizar0/jsonval"
	"github.com/cxykevin/mizar0/log"
	"github.com/cxykevin/mizar0/product"
)

// GlobalConfig 配置文件对象
var GlobalConfig = &structs.Config{}

const defaultConfigPath = "~/.config/mizar0/config.json"
const envConfigName = "MIZAR0_CONFIG_PATH"

var configPath string

var logger *log.LogsObj

func init() {
	logger = log.New("config")
}

// Load 加载配置文件
func Load() {
	// 默认配置
	cfg := structs.BuildDefault(structs.Config{})
	cfg.Version = product.VersionID
	GlobalConfig = &cfg

	// 读取环境变量
	if path := os.Getenv(envConfigName); path != "" {
		configPath = path
	} else {
		configPath = defaultConfigPath
	}

	// 展开用户目录路径
	expandedPath := configutil.ExpandPath(configPath)

	// 确保目录存在
	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		// 目录创建失败，使用默认配置
		return
	}

	// 读取配置文件
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("read config %s failed: %v", expandedPath, err)
		}
		return
	}

	v, err := decoder.Decode(string(data))
	if err != nil {
		// 配置非法按硬拒绝处理，保持默认值
		logger.Warn("config %s is not valid JSON: %v", expandedPath, err)
		return
	}
	applyConfig(GlobalConfig, v)
	logger.Info("config loaded from %s", expandedPath)
}

// applyConfig 将解码结果映射进配置对象，未知键忽略
func applyConfig(cfg *structs.Config, v *jsonval.Value) {
	obj := v.ObjectVal()
	if obj == nil {
		return
	}
	if f, ok := obj.Get("Version"); ok && f.Type() == jsonval.TypeNumber {
		cfg.Version = int32(f.Int64())
	}
	if f, ok := obj.Get("MaxDepth"); ok && f.Type() == jsonval.TypeNumber && f.Int64() > 0 {
		cfg.MaxDepth = int32(f.Int64())
	}
	if f, ok := obj.Get("StorePath"); ok && f.Type() == jsonval.TypeString {
		cfg.StorePath = f.Str()
	}
	if f, ok := obj.Get("StoreFile"); ok && f.Type() == jsonval.TypeString {
		cfg.StoreFile = f.Str()
	}
}

// DecodeOptions 由当前配置导出解码选项
func DecodeOptions() decoder.Options {
	return decoder.Options{MaxDepth: int(GlobalConfig.MaxDepth)}
}
