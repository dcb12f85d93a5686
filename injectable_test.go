package autowire

import (
	"reflect"
	"runtime"
	"testing"
)

type bindingProbe struct {
	A *int `autowire:"master"`
	B *int `autowire:"master,?"`
	C *int `autowire:"?"`
	D *int `autowire:",?"`
	E *int `autowire:"optional"`
	F *int
	G *int `autowire:" spaced , ? "`
}

func TestParseBinding(t *testing.T) {
	typ := reflect.TypeOf(bindingProbe{})

	check := func(field, wantName string, wantOptional bool) {
		t.Helper()
		f, _ := typ.FieldByName(field)
		b := parseBinding(f)
		if b.Name != wantName || b.Optional != wantOptional {
			t.Errorf("%s: got (%q,%v), want (%q,%v)", field, b.Name, b.Optional, wantName, wantOptional)
		}
	}

	check("A", "master", false)
	check("B", "master", true)
	check("C", "", true)
	check("D", "", true)
	check("E", "", true)
	check("F", "", false)
	check("G", "spaced", true)
}

type probeTarget struct {
	Exported   Ref[*int]
	ExportedPt *Ref[*int]
	hidden     Ref[*int]
	Plain      int
}

func TestAsInjectable(t *testing.T) {
	p := &probeTarget{ExportedPt: &Ref[*int]{}}
	v := reflect.ValueOf(p).Elem()

	if asInjectable(v.FieldByName("Exported")) == nil {
		t.Error("addressable box field must be detected")
	}
	if asInjectable(v.FieldByName("ExportedPt")) == nil {
		t.Error("pointer-to-box field must be detected")
	}
	if asInjectable(v.FieldByName("hidden")) == nil {
		t.Error("unexported box field must be detected")
	}
	if asInjectable(v.FieldByName("Plain")) != nil {
		t.Error("plain field must not be detected")
	}

	var nilPtr *Ref[*int]
	if asInjectable(reflect.ValueOf(nilPtr)) != nil {
		t.Error("nil pointer box must be skipped")
	}

	// 不可寻址的值拷贝无法注入
	if asInjectable(reflect.ValueOf(probeTarget{}).FieldByName("Exported")) != nil {
		t.Error("unaddressable box field must be skipped")
	}
}

func TestWeakHandleRoundTrip(t *testing.T) {
	n := 42
	p := &n
	h := makeWeakHandle(reflect.ValueOf(p))

	v, ok := h.value()
	if !ok {
		t.Fatal("expected live value")
	}
	if got := v.(*int); got != p || *got != 42 {
		t.Error("handle must rebuild the original pointer")
	}
	runtime.KeepAlive(p)

	var zero weakHandle
	if _, ok := zero.value(); ok {
		t.Error("zero handle must report absent")
	}
}
