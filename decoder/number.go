package decoder

import (
	"strconv"

	"github.com/cxykevin/mizar0/jsonval"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseNumber 解析数字字面量，游标指向 '-' 或首位数字
// 无小数/指数部分时保持整数形式
func parseNumber(s string) (*jsonval.Value, string, error) {
	orig := s

	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, "", ErrUnexpectedEndOfBuffer
	}
	if !isDigit(s[0]) {
		// 符号后必须有数字
		return nil, s, errUnexpectedToken(s)
	}

	// 整数部分：前导 0 后不能再跟数字
	if s[0] == '0' {
		s = s[1:]
	} else {
		for len(s) > 0 && isDigit(s[0]) {
			s = s[1:]
		}
	}

	isInt := true

	// 小数部分
	if len(s) > 0 && s[0] == '.' {
		isInt = false
		s = s[1:]
		if len(s) == 0 {
			return nil, "", ErrUnexpectedEndOfBuffer
		}
		if !isDigit(s[0]) {
			return nil, s, errUnexpectedToken(s)
		}
		for len(s) > 0 && isDigit(s[0]) {
			s = s[1:]
		}
	}

	// 指数部分
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		isInt = false
		s = s[1:]
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			s = s[1:]
		}
		if len(s) == 0 {
			return nil, "", ErrUnexpectedEndOfBuffer
		}
		if !isDigit(s[0]) {
			return nil, s, errUnexpectedToken(s)
		}
		for len(s) > 0 && isDigit(s[0]) {
			s = s[1:]
		}
	}

	lit := orig[:len(orig)-len(s)]
	if isInt {
		i, err := strconv.ParseInt(lit, 10, 64)
		if err == nil {
			return jsonval.Int(i), s, nil
		}
		// 超出 int64 范围退化为浮点
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, orig, errUnexpectedToken(orig)
	}
	return jsonval.Float(f), s, nil
}
