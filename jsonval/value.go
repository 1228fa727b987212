// Package jsonval JSON 值模型
package jsonval

// Type 值类型枚举
type Type int

// 类型枚举
const (
	TypeNull Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String 类型名
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value JSON 值（封闭标签联合）
// 解析过程中自底向上构造，构造完成后视为不可变
type Value struct {
	typ   Type
	b     bool
	i     int64
	f     float64
	isInt bool
	s     string
	arr   []*Value
	obj   *Object
}

// Null 创建 null 值
func Null() *Value {
	return &Value{typ: TypeNull}
}

// Bool 创建布尔值
func Bool(b bool) *Value {
	return &Value{typ: TypeBool, b: b}
}

// Int 创建整数值（字面量无小数/指数部分）
func Int(i int64) *Value {
	return &Value{typ: TypeNumber, i: i, isInt: true}
}

// Float 创建浮点值（字面量含小数或指数部分）
func Float(f float64) *Value {
	return &Value{typ: TypeNumber, f: f}
}

// String 创建字符串值
func String(s string) *Value {
	return &Value{typ: TypeString, s: s}
}

// Array 创建数组值
func Array(elems []*Value) *Value {
	return &Value{typ: TypeArray, arr: elems}
}

// ObjectValue 创建对象值
func ObjectValue(obj *Object) *Value {
	if obj == nil {
		obj = NewObject()
	}
	return &Value{typ: TypeObject, obj: obj}
}

// Type 返回值类型
func (v *Value) Type() Type {
	return v.typ
}

// BoolVal 返回布尔内容，非布尔类型返回 false
func (v *Value) BoolVal() bool {
	return v.typ == TypeBool && v.b
}

// IsInt 数字字面量是否为整数形式
func (v *Value) IsInt() bool {
	return v.typ == TypeNumber && v.isInt
}

// Int64 返回整数内容
func (v *Value) Int64() int64 {
	if v.typ != TypeNumber {
		return 0
	}
	if v.isInt {
		return v.i
	}
	return int64(v.f)
}

// Float64 返回浮点内容，整数字面量做无损提升
func (v *Value) Float64() float64 {
	if v.typ != TypeNumber {
		return 0
	}
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

// Str 返回字符串内容，非字符串类型返回空串
func (v *Value) Str() string {
	if v.typ != TypeString {
		return ""
	}
	return v.s
}

// ArrayVal 返回数组元素切片，非数组类型返回 nil
func (v *Value) ArrayVal() []*Value {
	if v.typ != TypeArray {
		return nil
	}
	return v.arr
}

// ObjectVal 返回对象内容，非对象类型返回 nil
func (v *Value) ObjectVal() *Object {
	if v.typ != TypeObject {
		return nil
	}
	return v.obj
}

// Interface 将值树投影为原生 Go 值
// 对象变为 map[string]any，数组变为 []any，整数字面量保持 int64
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.typ {
	case TypeNull:
		return nil
	case TypeBool:
		return v.b
	case TypeNumber:
		if v.isInt {
			return v.i
		}
		return v.f
	case TypeString:
		return v.s
	case TypeArray:
		out := make([]any, 0, len(v.arr))
		for _, e := range v.arr {
			out = append(out, e.Interface())
		}
		return out
	case TypeObject:
		out := make(map[string]any, v.obj.Len())
		v.obj.Range(func(k string, e *Value) bool {
			out[k] = e.Interface()
			return true
		})
		return out
	default:
		return nil
	}
}
