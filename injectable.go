package autowire

import (
	"reflect"
	"strings"
	"unsafe"
)

// Binding 是注入器在目标字段上发现的标签上下文。
// Name 来自字段标签的名称部分，Optional 表示字段被标记为可选。
type Binding struct {
	Name     string
	Optional bool
}

// Injectable 是注入器识别延迟注入属性的能力接口。
// Ref 和 WeakRef 都以指针接收者实现它；树遍历只依赖这两个操作，
// 无需知道具体的泛型类型。
type Injectable interface {
	// Resolve 结合 Binding 与自身配置向容器请求值，返回是否成功。
	Resolve(c Container, b Binding) bool

	// Current 返回当前持有值（类型擦除），供注入器对解析结果递归。
	Current() (any, bool)
}

var injectableType = reflect.TypeOf((*Injectable)(nil)).Elem()

// parseBinding 解析字段上的 autowire 标签: "name,option1,option2"
//
// 支持的写法:
//
//	`autowire:"master"`    按名称 master 解析
//	`autowire:"master,?"`  按名称解析，可选
//	`autowire:"?"`         可选（亦可写作 ",?" 或 "optional"）
func parseBinding(field reflect.StructField) Binding {
	tagValue, hasTag := field.Tag.Lookup("autowire")
	if !hasTag {
		return Binding{}
	}

	parts := strings.Split(tagValue, ",")
	name := strings.TrimSpace(parts[0])
	isOptional := false

	// 处理 "autowire:?" 或 "autowire:optional" 的情况，此时 name 应为空
	if name == "?" || name == "optional" {
		name = ""
		isOptional = true
	}

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "optional" || part == "?" {
			isOptional = true
		}
	}

	return Binding{Name: name, Optional: isOptional}
}

// asInjectable 尝试把一个反射值视为注入属性。
// 指针字段（如 *Ref[T]）直接实现接口；值字段（如 Ref[T]）通过取址实现。
// 未导出字段经由 unsafe 地址重建出可调用的视图。
func asInjectable(v reflect.Value) Injectable {
	switch {
	case v.Kind() == reflect.Pointer && v.Type().Implements(injectableType):
		if v.IsNil() {
			return nil
		}
		if iv, ok := valueInterface(v); ok {
			if box, ok := iv.(Injectable); ok {
				return box
			}
		}
	case v.CanAddr() && reflect.PointerTo(v.Type()).Implements(injectableType):
		if iv, ok := addrInterface(v); ok {
			if box, ok := iv.(Injectable); ok {
				return box
			}
		}
	}
	return nil
}

// valueInterface 等价于 v.Interface()，但对未导出字段也有效。
func valueInterface(v reflect.Value) (any, bool) {
	if v.CanInterface() {
		return v.Interface(), true
	}
	if !v.CanAddr() {
		return nil, false
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem().Interface(), true
}

// addrInterface 等价于 v.Addr().Interface()，但对未导出字段也有效。
func addrInterface(v reflect.Value) (any, bool) {
	if !v.CanAddr() {
		return nil, false
	}
	if v.CanInterface() {
		return v.Addr().Interface(), true
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Interface(), true
}
