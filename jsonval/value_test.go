package jsonval

import (
	"reflect"
	"testing"
)

func TestObject_LastWriteWins(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Int(1))
	obj.Set("b", Int(2))
	obj.Set("a", Int(3))

	if obj.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", obj.Len())
	}
	a, ok := obj.Get("a")
	if !ok || a.Int64() != 3 {
		t.Fatalf("expected last write 3 for 'a'")
	}
	// 覆盖不改变首次插入位置
	keys := obj.Keys()
	if keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("expected order [a b], got %v", keys)
	}
}

func TestObject_RangeOrder(t *testing.T) {
	obj := NewObject()
	for _, k := range []string{"z", "m", "a"} {
		obj.Set(k, Null())
	}
	var seen []string
	obj.Range(func(k string, v *Value) bool {
		seen = append(seen, k)
		return true
	})
	if !reflect.DeepEqual(seen, []string{"z", "m", "a"}) {
		t.Fatalf("range order broken: %v", seen)
	}

	// 回调返回 false 提前终止
	count := 0
	obj.Range(func(k string, v *Value) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("range should stop after first callback, got %d", count)
	}
}

func TestValue_NumberForms(t *testing.T) {
	i := Int(42)
	if !i.IsInt() || i.Int64() != 42 || i.Float64() != 42.0 {
		t.Fatal("integer form broken")
	}

	f := Float(2.5)
	if f.IsInt() {
		t.Fatal("fractional form should not report integral")
	}
	if f.Float64() != 2.5 || f.Int64() != 2 {
		t.Fatal("fractional accessors broken")
	}
}

func TestValue_TypeAccessorsAreSafe(t *testing.T) {
	s := String("x")
	if s.BoolVal() || s.Int64() != 0 || s.ArrayVal() != nil || s.ObjectVal() != nil {
		t.Fatal("mismatched accessors should return zero values")
	}
	if Null().Str() != "" {
		t.Fatal("Str on null should be empty")
	}
}

func TestValue_Interface(t *testing.T) {
	obj := NewObject()
	obj.Set("s", String("v"))
	obj.Set("n", Int(1))
	obj.Set("f", Float(0.5))
	obj.Set("b", Bool(true))
	obj.Set("nul", Null())
	obj.Set("arr", Array([]*Value{Int(1), String("two")}))

	got := ObjectValue(obj).Interface()
	expected := map[string]any{
		"s":   "v",
		"n":   int64(1),
		"f":   0.5,
		"b":   true,
		"nul": nil,
		"arr": []any{int64(1), "two"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("Interface projection mismatch:\n got %#v\nwant %#v", got, expected)
	}
}

func TestType_String(t *testing.T) {
	cases := map[Type]string{
		TypeNull:   "null",
		TypeBool:   "bool",
		TypeNumber: "number",
		TypeString: "string",
		TypeArray:  "array",
		TypeObject: "object",
	}
	for typ, name := range cases {
		if typ.String() != name {
			t.Errorf("Type(%d).String() = %q, want %q", typ, typ.String(), name)
		}
	}
}
