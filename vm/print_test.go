package vm

import (
	"fmt"
	"testing"
)

// ---------------------------------------------------------------------------
// Canonical object presentation
// ---------------------------------------------------------------------------

func TestPresentationCoversEveryVariant(t *testing.T) {
	vmInst := NewVM()

	className := vmInst.CopyString("Vector")
	class := vmInst.NewClass(className)
	nativeClass := vmInst.NewNativeClass(vmInst.CopyString("Assert"))

	named := vmInst.NewFunction()
	named.Name = vmInst.CopyString("add")
	script := vmInst.NewFunction()

	closure := vmInst.NewClosure(named)
	bound := vmInst.NewBoundMethod(ObjectValue(vmInst.NewInstance(class)), closure)

	slot := Null
	cases := []struct {
		obj  Object
		want string
	}{
		{class, "Vector"},
		{nativeClass, "Assert"},
		{named, "<fn add>"},
		{script, "<script>"},
		{closure, "<fn add>"},
		{bound, "<fn add>"},
		{vmInst.NewInstance(class), "Vector instance"},
		{vmInst.NewNative(func(vm *VM, argCount int, args []Value) Value { return Null }), "<native fn>"},
		{vmInst.CopyString("hello"), "hello"},
		{vmInst.NewUpvalue(&slot), "upvalue"},
	}

	for _, c := range cases {
		if got := c.obj.String(); got != c.want {
			t.Errorf("%s renders %q, want %q", c.obj.Kind(), got, c.want)
		}
	}
}

func TestScriptFunctionThroughClosure(t *testing.T) {
	vmInst := NewVM()
	cl := vmInst.NewClosure(vmInst.NewFunction())
	if got := cl.String(); got != "<script>" {
		t.Errorf("unnamed closure renders %q, want %q", got, "<script>")
	}
}

// ---------------------------------------------------------------------------
// List rendering
// ---------------------------------------------------------------------------

func TestListRendering(t *testing.T) {
	vmInst := NewVM()
	l := vmInst.NewList()
	for _, s := range []string{"a", "b", "c"} {
		l.Append(ObjectValue(vmInst.CopyString(s)))
	}

	if got := l.String(); got != "[a, b, c]" {
		t.Errorf("list renders %q, want %q", got, "[a, b, c]")
	}
}

func TestEmptyListRendering(t *testing.T) {
	vmInst := NewVM()
	if got := vmInst.NewList().String(); got != "[]" {
		t.Errorf("empty list renders %q, want %q", got, "[]")
	}
}

func TestNestedListRendering(t *testing.T) {
	vmInst := NewVM()

	inner := vmInst.NewList()
	inner.Append(ObjectValue(vmInst.CopyString("a")))

	outer := vmInst.NewList()
	outer.Append(ObjectValue(inner))
	outer.Append(NumberValue(2))

	if got := outer.String(); got != "[[a], 2]" {
		t.Errorf("nested list renders %q, want %q", got, "[[a], 2]")
	}
}

// ---------------------------------------------------------------------------
// Value rendering
// ---------------------------------------------------------------------------

func TestValueRendering(t *testing.T) {
	vmInst := NewVM()

	cases := []struct {
		value Value
		want  string
	}{
		{Null, "null"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{NumberValue(1), "1"},
		{NumberValue(2.5), "2.5"},
		{NumberValue(-0.25), "-0.25"},
		{ObjectValue(vmInst.CopyString("text")), "text"},
	}
	for _, c := range cases {
		if got := c.value.String(); got != c.want {
			t.Errorf("value renders %q, want %q", got, c.want)
		}
	}
}

func TestValueRenderingThroughFmt(t *testing.T) {
	vmInst := NewVM()
	l := vmInst.NewList()
	l.Append(NumberValue(1))

	if got := fmt.Sprintf("%s", ObjectValue(l)); got != "[1]" {
		t.Errorf("fmt renders %q, want %q", got, "[1]")
	}
}
