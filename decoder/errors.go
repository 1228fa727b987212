package decoder

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEndOfBuffer 语法期望更多字符时输入耗尽
var ErrUnexpectedEndOfBuffer = errors.New("unexpected end of buffer")

// UnexpectedTokenError 当前位置的下一个 token 不匹配任何语法产生式
// Remaining 为出错处尚未消费的输入，用于诊断
type UnexpectedTokenError struct {
	Remaining string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token near %q", clipRemaining(e.Remaining))
}

func errUnexpectedToken(remaining string) error {
	return &UnexpectedTokenError{Remaining: remaining}
}

const maxErrorClip = 24

// clipRemaining 截断诊断文本，防止超长输入刷爆错误信息
func clipRemaining(s string) string {
	if len(s) <= maxErrorClip {
		return s
	}
	return s[:maxErrorClip] + "..."
}
