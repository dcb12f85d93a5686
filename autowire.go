// Package autowire is a small reflection driven auto-injection layer.
// It walks an already constructed object, finds deferred-property fields
// (Ref and WeakRef), and asks one or more external containers to supply
// their values, recursing into whatever was resolved.
//
// The container itself is bring-your-own: anything answering
// "give me a value of this type, under this name" plugs in through the
// Container interface, including closures via ContainerFunc.
package autowire

import (
	"fmt"
	"reflect"
)

// Wire 将 target 绑定到一组有序候选容器并执行递归注入。
// 返回 target 本身，以便在一个表达式里完成构造与注入:
//
//	svc := autowire.Wire(&OrderService{}, appContainer, fallbackContainer)
//
// 注入过程不产生任何错误，必需字段的缺失由后续使用方暴露。
func Wire[T any](target T, containers ...Container) T {
	NewInjector(containers...).Inject(target)
	return target
}

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf it also
// works for interface types, which makes it handy when implementing a
// ContainerFunc by hand.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Verbose 开启后，注入器和属性会把每次解析的去向打印到标准输出。
// 仅用于排查装配问题。
var Verbose = false

func debugf(format string, args ...any) {
	if Verbose {
		fmt.Printf("autowire: "+format+"\n", args...)
	}
}
