package autowire

import "fmt"

// Ref is a strongly held deferred property. Declare it as a struct field
// and let Wire/Injector fill it from a container:
//
//	type OrderService struct {
//		Repo  autowire.Ref[*OrderRepo]
//		Cache autowire.Ref[*CacheClient] `autowire:"orders,?"`
//	}
//
// The zero value is ready to use: required, no name override, no callback,
// no value. Configuration methods return modified copies, so boxes can be
// prepared inline during construction:
//
//	svc := &OrderService{
//		Repo: autowire.NewRef[*OrderRepo]().OnInject(func(r *OrderRepo) { r.Warm() }),
//	}
type Ref[T any] struct {
	value   T
	present bool

	name         string
	nameOverride bool
	optional     bool
	onInject     func(T)
}

// NewRef 返回一个空的必需 Ref。等价于零值，仅为可读性而存在。
func NewRef[T any]() Ref[T] {
	return Ref[T]{}
}

// Named 返回设置了名称覆盖的副本。
// 设置后解析时忽略字段标签里的名称；Named("") 表示强制无名查找。
func (r Ref[T]) Named(name string) Ref[T] {
	r.name = name
	r.nameOverride = true
	return r
}

// Optional 返回标记为可选的副本（默认必需）。
// 可选属性解析失败时静默保持缺失。
func (r Ref[T]) Optional() Ref[T] {
	r.optional = true
	return r
}

// OnInject 返回注册了注入回调的副本。
// 存储值从缺失/旧值变为新值时，回调携带新值同步触发一次。
func (r Ref[T]) OnInject(fn func(T)) Ref[T] {
	r.onInject = fn
	return r
}

// WithValue 返回携带给定值的副本，其余配置不变。
// 把必需属性强制设置为缺失值（引用类别的 nil）属于致命误用，直接 panic；
// 可选属性给入缺失值则得到一个空副本。
func (r Ref[T]) WithValue(v T) Ref[T] {
	if isAbsent(v) {
		if !r.optional {
			panic(fmt.Sprintf("autowire: required Ref[%v] force-set to an absent value", TypeOf[T]()))
		}
		var zero T
		r.value = zero
		r.present = false
		return r
	}
	r.store(v)
	return r
}

// Get 返回当前值与是否存在。
func (r *Ref[T]) Get() (T, bool) {
	return r.value, r.present
}

// MustGet 返回当前值，值缺失时 panic。
func (r *Ref[T]) MustGet() T {
	if !r.present {
		panic(fmt.Sprintf("autowire: Ref[%v] has no value", TypeOf[T]()))
	}
	return r.value
}

// Resolve 实现 Injectable。按有效名称（自身覆盖优先于标签）向容器
// 请求一个 T，拿到可用值则存储并返回 true。
// 容器报错、返回 nil、类型不符都只是解析失败，不向上传播。
func (r *Ref[T]) Resolve(c Container, b Binding) bool {
	name := b.Name
	if r.nameOverride {
		name = r.name
	}

	typ := TypeOf[T]()
	val, err := c.GetNamed(typ, name)
	if err != nil || val == nil {
		debugf("Ref[%v] (name=%q): container answered nothing: %v", typ, name, err)
		return false
	}

	v, ok := val.(T)
	if !ok || isAbsent(v) {
		debugf("Ref[%v] (name=%q): unusable value %T", typ, name, val)
		return false
	}

	r.store(v)
	return true
}

// Current 实现 Injectable，返回类型擦除的当前值。
func (r *Ref[T]) Current() (any, bool) {
	if !r.present {
		return nil, false
	}
	return r.value, true
}

// store 写入值，值发生变化时触发回调。
func (r *Ref[T]) store(v T) {
	changed := !r.present || !sameValue(r.value, v)
	r.value = v
	r.present = true
	if changed && r.onInject != nil {
		r.onInject(v)
	}
}
