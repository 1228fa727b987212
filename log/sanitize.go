package log

import "strings"

// maxPayloadLen 单条日志中文档内容的最大保留长度
const maxPayloadLen = 512

// SanitizePayload 日志内容净化
// 文档正文是用户数据：截断超长内容，剥离不可打印控制字符
func SanitizePayload(text string) string {
	if text == "" {
		return ""
	}

	if len(text) > maxPayloadLen {
		text = text[:maxPayloadLen] + "...(truncated)"
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		// \n \r \t 由写入前的转义链处理，其它控制字符直接丢弃
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		if r == 0x7f {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
