package autowire

import (
	"fmt"
	"reflect"
	"unsafe"
	"weak"
)

// WeakRef is the non-owning counterpart of Ref. The injected value is held
// through a weak pointer: once its sole strong owner elsewhere releases it
// and the GC collects it, reads report absent again while the box itself
// stays alive.
//
// Pairing a strong Ref on one side with a WeakRef on the other is the
// mechanism for breaking reference cycles between two mutually injected
// types. A linked WeakRef never hands its value back to the tree walker,
// so the weak side does not re-trigger deep injection.
//
// For the same reason WeakRef is the right holder for real infrastructure
// clients. Objects like an ORM handle or an RPC connection carry plain
// pointer fields that loop back into themselves, and a strong Ref would
// send the walker into that loop (see Injector.Inject). Keep the client
// strongly owned where it is created and observe it weakly here.
//
// Only pointer values can be weakly referenced. Resolving a required
// WeakRef to anything else is fatal misuse and panics.
type WeakRef[T any] struct {
	handle weakHandle

	name         string
	nameOverride bool
	optional     bool
	onInject     func(T)
}

// NewWeakRef 返回一个空的必需 WeakRef。等价于零值。
func NewWeakRef[T any]() WeakRef[T] {
	return WeakRef[T]{}
}

// Named 返回设置了名称覆盖的副本，语义同 Ref.Named。
func (w WeakRef[T]) Named(name string) WeakRef[T] {
	w.name = name
	w.nameOverride = true
	return w
}

// Optional 返回标记为可选的副本（默认必需）。
func (w WeakRef[T]) Optional() WeakRef[T] {
	w.optional = true
	return w
}

// OnInject 返回注册了注入回调的副本。
func (w WeakRef[T]) OnInject(fn func(T)) WeakRef[T] {
	w.onInject = fn
	return w
}

// WithValue 返回弱持有给定值的副本。
// 必需属性碰到缺失值或不可弱引用的值属于致命误用，直接 panic；
// 可选属性则静默保持缺失。
func (w WeakRef[T]) WithValue(v T) WeakRef[T] {
	if isAbsent(v) {
		if !w.optional {
			panic(fmt.Sprintf("autowire: required WeakRef[%v] force-set to an absent value", TypeOf[T]()))
		}
		w.handle = weakHandle{}
		return w
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		if !w.optional {
			panic(fmt.Sprintf("autowire: WeakRef[%v] cannot weakly reference %T", TypeOf[T](), v))
		}
		w.handle = weakHandle{}
		return w
	}

	w.link(rv, v)
	return w
}

// Get 通过弱引用读取当前值。从未注入或目标已被回收时返回缺失。
func (w *WeakRef[T]) Get() (T, bool) {
	var zero T
	val, ok := w.handle.value()
	if !ok {
		return zero, false
	}
	v, ok := val.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// MustGet 返回当前值，值缺失（含已被回收）时 panic。
func (w *WeakRef[T]) MustGet() T {
	v, ok := w.Get()
	if !ok {
		panic(fmt.Sprintf("autowire: WeakRef[%v] has no value", TypeOf[T]()))
	}
	return v
}

// Resolve 实现 Injectable。查找规则与 Ref.Resolve 相同。
// 解析出的值必须是指针:必需属性解析到不可弱引用的值会 panic（致命误用），
// 可选属性只是解析失败。
func (w *WeakRef[T]) Resolve(c Container, b Binding) bool {
	name := b.Name
	if w.nameOverride {
		name = w.name
	}

	typ := TypeOf[T]()
	val, err := c.GetNamed(typ, name)
	if err != nil || val == nil {
		debugf("WeakRef[%v] (name=%q): container answered nothing: %v", typ, name, err)
		return false
	}

	v, ok := val.(T)
	if !ok || isAbsent(v) {
		debugf("WeakRef[%v] (name=%q): unusable value %T", typ, name, val)
		return false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		if !w.optional && !b.Optional {
			panic(fmt.Sprintf("autowire: WeakRef[%v] resolved to %T which cannot be weakly referenced", typ, val))
		}
		debugf("WeakRef[%v] (name=%q): %T not weakly referenceable, skipped", typ, name, val)
		return false
	}

	w.link(rv, v)
	return true
}

// Current 实现 Injectable。
// 弱属性永远向注入器报告缺失:已链接的弱值不参与深层递归，
// 这正是两个相互引用的类型之间注入能够终止的原因。
func (w *WeakRef[T]) Current() (any, bool) {
	return nil, false
}

// link 弱持有已验证的指针值，值发生变化时触发回调。
func (w *WeakRef[T]) link(rv reflect.Value, v T) {
	changed := true
	if old, ok := w.handle.value(); ok && sameValue(old, v) {
		changed = false
	}
	w.handle = makeWeakHandle(rv)
	if changed && w.onInject != nil {
		w.onInject(v)
	}
}

// weakHandle 以类型擦除的方式弱持有一个指针。
// 记录动态指针类型以便重建，T 为接口类型时同样适用。
type weakHandle struct {
	ptr weak.Pointer[byte]
	typ reflect.Type // 动态指针类型，如 *OrderRepo
}

func makeWeakHandle(rv reflect.Value) weakHandle {
	return weakHandle{
		ptr: weak.Make((*byte)(rv.UnsafePointer())),
		typ: rv.Type(),
	}
}

// value 重建原指针。从未链接或目标已被回收时报告缺失。
func (h weakHandle) value() (any, bool) {
	if h.typ == nil {
		return nil, false
	}
	b := h.ptr.Value()
	if b == nil {
		return nil, false
	}
	return reflect.NewAt(h.typ.Elem(), unsafe.Pointer(b)).Interface(), true
}
