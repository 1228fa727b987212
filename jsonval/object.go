package jsonval

type objectEntry struct {
	key string
	val *Value
}

// Object 保持插入顺序的键值映射
// 重复键以后写为准，位置保留首次插入处
type Object struct {
	entries []objectEntry
	index   map[string]int
}

// NewObject 创建空对象
func NewObject() *Object {
	return &Object{
		index: make(map[string]int),
	}
}

// Set 写入键值，已存在则覆盖
func (o *Object) Set(key string, val *Value) {
	if i, ok := o.index[key]; ok {
		o.entries[i].val = val
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, objectEntry{key: key, val: val})
}

// Get 读取键值
func (o *Object) Get(key string) (*Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].val, true
}

// Len 键数量
func (o *Object) Len() int {
	return len(o.entries)
}

// Keys 按插入顺序返回全部键
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.entries))
	for _, e := range o.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Range 按插入顺序遍历，回调返回 false 时终止
func (o *Object) Range(fn func(key string, val *Value) bool) {
	for _, e := range o.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}
