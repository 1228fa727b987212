package decoder

import (
	"strings"
	"unicode/utf16"
)

// escapeTable 两字符转义表，纯静态数据
var escapeTable = map[byte]byte{
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'"':  '"',
	'\\': '\\',
	'/':  '/',
}

// parseString 解析双引号字符串，游标必须指向起始 '"'
// 返回解码文本与收尾 '"' 之后的游标
func parseString(s string) (string, string, error) {
	if len(s) == 0 {
		return "", s, ErrUnexpectedEndOfBuffer
	}
	if s[0] != '"' {
		return "", s, errUnexpectedToken(s)
	}
	s = s[1:]

	var sb strings.Builder
	for len(s) > 0 {
		switch s[0] {
		case '"':
			return sb.String(), s[1:], nil
		case '\\':
			if len(s) < 2 {
				return "", "", ErrUnexpectedEndOfBuffer
			}
			if s[1] == 'u' {
				r, tail, err := parseUnicodeEscape(s)
				if err != nil {
					return "", tail, err
				}
				sb.WriteRune(r)
				s = tail
				continue
			}
			if mapped, ok := escapeTable[s[1]]; ok {
				sb.WriteByte(mapped)
			} else {
				// 未识别的转义原样保留第二个字符
				sb.WriteByte(s[1])
			}
			s = s[2:]
		default:
			// 逐字节拷贝；'"' 和 '\\' 都是 ASCII，
			// 不会出现在多字节序列内部，游标不会落在码点中间
			sb.WriteByte(s[0])
			s = s[1:]
		}
	}
	return "", "", ErrUnexpectedEndOfBuffer
}

// parseUnicodeEscape 解析 \uXXXX 转义，游标指向 '\\'
// 高代理项必须紧跟第二个 \uXXXX 低代理项，合并为单个码点
func parseUnicodeEscape(s string) (rune, string, error) {
	hi, tail, err := parseHex4(s[2:])
	if err != nil {
		return 0, tail, err
	}
	r := rune(hi)
	if !utf16.IsSurrogate(r) {
		return r, tail, nil
	}
	if hi >= 0xDC00 {
		// 低代理项不能单独出现
		return 0, s, errUnexpectedToken(s)
	}
	if len(tail) == 0 {
		return 0, "", ErrUnexpectedEndOfBuffer
	}
	if len(tail) < 2 || tail[0] != '\\' || tail[1] != 'u' {
		return 0, tail, errUnexpectedToken(tail)
	}
	lo, tail2, err := parseHex4(tail[2:])
	if err != nil {
		return 0, tail2, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, tail, errUnexpectedToken(tail)
	}
	return utf16.DecodeRune(rune(hi), rune(lo)), tail2, nil
}

// parseHex4 读取恰好 4 个十六进制数字（大小写不敏感）
func parseHex4(s string) (int, string, error) {
	if len(s) < 4 {
		return 0, "", ErrUnexpectedEndOfBuffer
	}
	v := 0
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, s[i:], errUnexpectedToken(s[i:])
		}
		v = v*16 + d
	}
	return v, s[4:], nil
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
