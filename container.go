package autowire

import "reflect"

// Container 是外部依赖容器的最小抽象。
// 本层只消费一种操作形态: 按 (类型, 可选名称) 解析一个值。
// name 为空串表示无名查找。返回错误或 nil 值都视为"无法解析"，
// 注入器会继续尝试下一个候选容器。
//
// 容器如何注册类型、管理作用域、处理自身错误均不在本层关心范围内。
type Container interface {
	GetNamed(typ reflect.Type, name string) (any, error)
}

// ContainerFunc 把一个函数适配为 Container，便于用闭包接入任意容器:
//
//	c := autowire.ContainerFunc(func(typ reflect.Type, name string) (any, error) {
//		return registry.Lookup(typ, name)
//	})
type ContainerFunc func(typ reflect.Type, name string) (any, error)

// GetNamed 调用 f 自身。
func (f ContainerFunc) GetNamed(typ reflect.Type, name string) (any, error) {
	return f(typ, name)
}
