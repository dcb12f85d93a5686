package autowire

import (
	"fmt"
	"reflect"
)

// Fill 从候选容器解析 *ptr 的类型并写入目标变量，随后对解析值递归注入。
// 用法示例:
//
//	var svc *OrderService
//	if err := autowire.Fill(&svc, c1, c2); err != nil { ... }
//
// 这是本层唯一返回错误的解析路径，供容器之外的代码直接取用服务；
// Ref/WeakRef 的解析始终静默。
func Fill(ptr any, containers ...Container) error {
	return FillNamed(ptr, "", containers...)
}

// FillNamed 同 Fill，按名称解析。
func FillNamed(ptr any, name string, containers ...Container) error {
	targetVal := reflect.ValueOf(ptr)
	if targetVal.Kind() != reflect.Pointer {
		return fmt.Errorf("autowire: fill target must be a pointer, got %v", targetVal.Kind())
	}
	if targetVal.IsNil() {
		return fmt.Errorf("autowire: fill target pointer is nil")
	}

	elemVal := targetVal.Elem()
	elemType := elemVal.Type()

	for _, c := range containers {
		if c == nil {
			continue
		}
		val, err := c.GetNamed(elemType, name)
		if err != nil || isAbsent(val) {
			continue
		}
		rv := reflect.ValueOf(val)
		if !rv.Type().AssignableTo(elemType) {
			continue
		}

		// 写入并对解析值递归注入
		elemVal.Set(rv)
		NewInjector(containers...).Inject(val)
		return nil
	}

	return fmt.Errorf("autowire: no container resolved %v (name=%q)", elemType, name)
}

// MustFill 同 Fill，失败时 panic。
func MustFill(ptr any, containers ...Container) {
	if err := Fill(ptr, containers...); err != nil {
		panic(err)
	}
}
