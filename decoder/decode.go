// Package decoder 严格递归下降 JSON 解码器
//
// 所有解析函数以剩余输入字符串为游标，返回消费后的新游标，
// 不持有任何共享可变状态，可在独立输入上并发调用
package decoder

import (
	"strings"

	"github.com/cxykevin/mizar0/jsonval"
)

// DefaultMaxDepth 默认最大嵌套深度
const DefaultMaxDepth = 300

// Options 解码选项
type Options struct {
	// MaxDepth 容器最大嵌套深度，<=0 时取 DefaultMaxDepth
	MaxDepth int
}

// Decode 解码一段完整 JSON 文本，根必须是对象或数组
// 失败返回 *UnexpectedTokenError 或 ErrUnexpectedEndOfBuffer 之一
func Decode(input string) (*jsonval.Value, error) {
	return DecodeWithOptions(input, Options{})
}

// DecodeWithOptions 带选项解码
func DecodeWithOptions(input string, opt Options) (*jsonval.Value, error) {
	maxDepth := opt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	// 空容器快速路径
	switch input {
	case "{}":
		return jsonval.ObjectValue(jsonval.NewObject()), nil
	case "[]":
		return jsonval.Array(nil), nil
	}

	s := skipWS(input)
	if len(s) == 0 {
		return nil, ErrUnexpectedEndOfBuffer
	}

	var (
		v    *jsonval.Value
		tail string
		err  error
	)
	switch s[0] {
	case '{':
		v, tail, err = parseObject(s[1:], 1, maxDepth)
	case '[':
		v, tail, err = parseArray(s[1:], 1, maxDepth)
	default:
		return nil, errUnexpectedToken(s)
	}
	if err != nil {
		return nil, err
	}

	// 根值之后只允许空白
	tail = skipWS(tail)
	if len(tail) != 0 {
		return nil, errUnexpectedToken(tail)
	}
	return v, nil
}

// parseValue 按下一个非空白字符分派到对应产生式
func parseValue(s string, depth int, maxDepth int) (*jsonval.Value, string, error) {
	s = skipWS(s)
	if len(s) == 0 {
		return nil, "", ErrUnexpectedEndOfBuffer
	}

	switch c := s[0]; {
	case c == '"':
		str, tail, err := parseString(s)
		if err != nil {
			return nil, tail, err
		}
		return jsonval.String(str), tail, nil
	case c == '-' || isDigit(c):
		return parseNumber(s)
	case c == 't':
		if strings.HasPrefix(s, "true") {
			return jsonval.Bool(true), s[len("true"):], nil
		}
		return nil, s, errUnexpectedToken(s)
	case c == 'f':
		if strings.HasPrefix(s, "false") {
			return jsonval.Bool(false), s[len("false"):], nil
		}
		return nil, s, errUnexpectedToken(s)
	case c == 'n':
		if strings.HasPrefix(s, "null") {
			return jsonval.Null(), s[len("null"):], nil
		}
		return nil, s, errUnexpectedToken(s)
	case c == '[':
		if depth >= maxDepth {
			return nil, s, errUnexpectedToken(s)
		}
		return parseArray(s[1:], depth+1, maxDepth)
	case c == '{':
		if depth >= maxDepth {
			return nil, s, errUnexpectedToken(s)
		}
		return parseObject(s[1:], depth+1, maxDepth)
	default:
		return nil, s, errUnexpectedToken(s)
	}
}

// parseArray 解析数组主体，游标位于已消费的 '[' 之后
func parseArray(s string, depth int, maxDepth int) (*jsonval.Value, string, error) {
	s = skipWS(s)
	if len(s) == 0 {
		return nil, "", ErrUnexpectedEndOfBuffer
	}
	if s[0] == ']' {
		return jsonval.Array(nil), s[1:], nil
	}

	var elems []*jsonval.Value
	for {
		v, tail, err := parseValue(s, depth, maxDepth)
		if err != nil {
			return nil, tail, err
		}
		elems = append(elems, v)

		s = skipWS(tail)
		if len(s) == 0 {
			return nil, "", ErrUnexpectedEndOfBuffer
		}
		switch s[0] {
		case ',':
			s = s[1:]
		case ']':
			return jsonval.Array(elems), s[1:], nil
		default:
			return nil, s, errUnexpectedToken(s)
		}
	}
}

// parseObject 解析对象主体，游标位于已消费的 '{' 之后
// 重复键后写覆盖
func parseObject(s string, depth int, maxDepth int) (*jsonval.Value, string, error) {
	s = skipWS(s)
	if len(s) == 0 {
		return nil, "", ErrUnexpectedEndOfBuffer
	}
	if s[0] == '}' {
		return jsonval.ObjectValue(jsonval.NewObject()), s[1:], nil
	}

	obj := jsonval.NewObject()
	for {
		s = skipWS(s)
		if len(s) == 0 {
			return nil, "", ErrUnexpectedEndOfBuffer
		}
		key, tail, err := parseString(s)
		if err != nil {
			return nil, tail, err
		}

		s = skipWS(tail)
		if len(s) == 0 {
			return nil, "", ErrUnexpectedEndOfBuffer
		}
		if s[0] != ':' {
			return nil, s, errUnexpectedToken(s)
		}

		v, tail2, err := parseValue(s[1:], depth, maxDepth)
		if err != nil {
			return nil, tail2, err
		}
		obj.Set(key, v)

		s = skipWS(tail2)
		if len(s) == 0 {
			return nil, "", ErrUnexpectedEndOfBuffer
		}
		switch s[0] {
		case ',':
			s = s[1:]
		case '}':
			return jsonval.ObjectValue(obj), s[1:], nil
		default:
			return nil, s, errUnexpectedToken(s)
		}
	}
}
