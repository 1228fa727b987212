// Package charset 输入字节编码归一化
//
// 解码引擎只接受 UTF-8 文本，这里把带 BOM 或其它编码的原始字节
// 先转换为 UTF-8 再交给 decoder
package charset

import (
	"bytes"
	"io"
	"strings"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/cxykevin/mizar0/decoder"
	"github.com/cxykevin/mizar0/jsonval"
	"github.com/cxykevin/mizar0/log"
)

var logger *log.LogsObj

func init() {
	logger = log.New("charset")
}

// NormalizeToUTF8 自动检测编码并转换为 UTF-8 字符串
// 检测会处理 BOM 并尝试预测编码，转换失败时兜底按原始字节处理
func NormalizeToUTF8(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	e, name, _ := htmlcharset.DetermineEncoding(content, "")
	reader := transform.NewReader(bytes.NewReader(content), e.NewDecoder())

	decoded, err := io.ReadAll(reader)
	if err != nil {
		logger.Warn("charset transform failed (%s), fall back to raw bytes: %v", name, err)
		return string(content)
	}

	// 转换结果可能残留 BOM 码点，严格语法不接受它
	return strings.TrimPrefix(string(decoded), "\uFEFF")
}

// DecodeBytes 归一化编码后解码 JSON
func DecodeBytes(raw []byte) (*jsonval.Value, error) {
	return decoder.Decode(NormalizeToUTF8(raw))
}

// DecodeBytesWithOptions 带解码选项的字节入口
func DecodeBytesWithOptions(raw []byte, opt decoder.Options) (*jsonval.Value, error) {
	return decoder.DecodeWithOptions(NormalizeToUTF8(raw), opt)
}
