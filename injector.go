package autowire

import "reflect"

// Injector 持有一组有序候选容器并执行递归注入。
// 同一个注入器可以对多个目标复用，它自身不携带状态。
type Injector struct {
	containers []Container
}

// NewInjector 创建注入器。容器顺序即解析优先级。
func NewInjector(containers ...Container) *Injector {
	return &Injector{containers: containers}
}

// Inject performs recursive injection on target.
//
// The injector reflects over the target's immediate fields:
//   - fields implementing Injectable are resolved against each candidate
//     container in order, first success wins; the freshly resolved value is
//     then injected recursively so nested deferred fields get filled too.
//     If no container succeeds the field simply stays unresolved: the
//     injector raises no error, requiredness surfaces at the use site.
//   - any other field is recursed into directly (structs, pointers,
//     interfaces), reaching deferred fields at arbitrary depth behind plain
//     composed objects. Primitives, maps, slices, funcs and channels are
//     opaque leaves.
//
// target should be a pointer; a non-pointer target cannot be mutated and
// injection is a no-op.
//
// There is no cycle guard beyond the strong/weak convention, a known
// limitation with two faces. Two required strong boxes referencing each
// other recurse until a container fails to resolve. Worse, a single
// resolved value whose plain pointer fields loop back into itself recurses
// unconditionally: no box is involved, so no container failure can ever
// stop the walk. Real client objects usually contain such back-references
// (an ORM handle whose statement points back at the handle, an RPC
// connection whose sub-objects point back at the connection). Observe
// those through a WeakRef, which never exposes its value to the walker,
// or keep them out of boxes entirely.
func (in *Injector) Inject(target any) {
	if target == nil {
		return
	}
	in.inject(reflect.ValueOf(target))
}

// inject 对单个反射值递归。
func (in *Injector) inject(v reflect.Value) {
	// 解包接口与指针直到落在结构体上；途中若值本身就是注入属性
	// （如直接传入 &Ref[T]），没有字段标签上下文，按空 Binding 解析。
	for {
		if box := asInjectable(v); box != nil {
			in.resolveBox(box, Binding{}, v.Type(), "(target)")
			return
		}
		if v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return
			}
			v = v.Elem()
			continue
		}
		break
	}

	if v.Kind() != reflect.Struct {
		return // 原子或不透明叶子，到此为止
	}
	if !v.CanAddr() {
		// 值拷贝上的注入不会被调用方看到，直接跳过
		debugf("skip unaddressable %v", v.Type())
		return
	}

	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fv := v.Field(i)

		if box := asInjectable(fv); box != nil {
			in.resolveBox(box, parseBinding(field), typ, field.Name)
			continue
		}

		// 普通字段:直接对其当前值递归
		in.inject(fv)
	}
}

// resolveBox 按顺序尝试候选容器，第一个成功者胜出，随后对解析值递归。
// 全部失败时保持未解析，不产生错误。
func (in *Injector) resolveBox(box Injectable, b Binding, owner reflect.Type, field string) {
	for i, c := range in.containers {
		if c == nil {
			continue
		}
		if box.Resolve(c, b) {
			debugf("%v.%s resolved by container #%d", owner, field, i)
			if nested, ok := box.Current(); ok {
				in.inject(reflect.ValueOf(nested))
			}
			return
		}
	}
	debugf("%v.%s unresolved (name=%q optional=%v)", owner, field, b.Name, b.Optional)
}
