package autowire

import "reflect"

// isAbsent 判断一个值是否为"缺失": nil 接口或引用类别的 nil。
// 非引用类别（结构体、数值等）永远视为存在。
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// sameValue 在动态类型可比较时判断两个值相等。
// 不可比较的类型一律视为不同，这样回调宁可多触发也不会漏掉变化。
func sameValue(a, b any) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
