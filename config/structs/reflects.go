package structs

import (
	"reflect"
	"strconv"
)

// BuildDefault 按 default 标签构造默认值
func BuildDefault[T any](obj T) T {
	// 校验必须是非空指针并且指向结构体
	v := reflect.ValueOf(&obj)
	if v.Kind() != reflect.Pointer {
		panic("BuildDefault: obj must be a non-nil pointer to a struct")
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		panic("BuildDefault: obj must be a pointer to a struct")
	}

	t := elem.Type()

	// 遍历所有字段
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := elem.Field(i)

		// 取 default 标签
		defaultTag := field.Tag.Get("default")
		kind := fv.Kind()
		if defaultTag != "" && fv.CanSet() {
			switch kind {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				deg, err := strconv.ParseInt(defaultTag, 10, 64)
				if err != nil {
					panic(err)
				}
				fv.SetInt(deg)
			case reflect.String:
				fv.SetString(defaultTag)
			case reflect.Float32, reflect.Float64:
				deg, err := strconv.ParseFloat(defaultTag, 64)
				if err != nil {
					panic(err)
				}
				fv.SetFloat(deg)
			case reflect.Bool:
				deg, err := strconv.ParseBool(defaultTag)
				if err != nil {
					panic(err)
				}
				fv.SetBool(deg)
			}
		}
	}
	return obj
}
