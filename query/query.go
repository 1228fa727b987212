// Package query 在解码结果上执行表达式查询
//
// 表达式绑定 doc 变量为值树的原生投影，
// 支持 doc.items[0].name 这类字段抽取以及任意谓词
package query

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/cxykevin/mizar0/jsonval"
	"github.com/cxykevin/mizar0/log"
)

var logger *log.LogsObj

func init() {
	logger = log.New("query")
}

// Query 已编译查询，可对多个值树复用
type Query struct {
	src     string
	program *vm.Program
}

// Compile 编译查询表达式
func Compile(expression string) (*Query, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, errors.Wrapf(err, "compile query %q", expression)
	}
	return &Query{src: expression, program: program}, nil
}

// Run 对一棵解码后的值树执行查询
func (q *Query) Run(v *jsonval.Value) (any, error) {
	env := map[string]any{
		"doc": v.Interface(),
	}
	out, err := expr.Run(q.program, env)
	if err != nil {
		logger.Debug("query %s failed: %v", q.src, err)
		return nil, errors.Wrapf(err, "run query %q", q.src)
	}
	return out, nil
}

// Source 查询表达式原文
func (q *Query) Source() string {
	return q.src
}

// Eval 一次性编译并执行
func Eval(v *jsonval.Value, expression string) (any, error) {
	q, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	return q.Run(v)
}
