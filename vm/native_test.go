package vm

import (
	"testing"
)

// ---------------------------------------------------------------------------
// Native wrapping and method definition
// ---------------------------------------------------------------------------

func TestNewNative(t *testing.T) {
	vmInst := NewVM()
	n := vmInst.NewNative(func(vm *VM, argCount int, args []Value) Value {
		return NumberValue(float64(argCount))
	})

	if n.Kind() != KindNative {
		t.Errorf("Kind() = %s, want Native", n.Kind())
	}
	if got := n.Fn(vmInst, 2, []Value{Null, Null}); !got.Equals(NumberValue(2)) {
		t.Errorf("native returned %s, want 2", got)
	}
}

func TestDefineNativeMethodInternsName(t *testing.T) {
	vmInst := NewVM()
	class := vmInst.NewNativeClass(vmInst.CopyString("Host"))

	vmInst.DefineNativeMethod(class, "greet", func(vm *VM, argCount int, args []Value) Value {
		return Null
	})

	interned := vmInst.LookupString("greet")
	if interned == nil {
		t.Fatal("method name should be interned")
	}
	if class.Methods[interned] == nil {
		t.Error("method table should be keyed by the interned name")
	}
}

func TestDefineNativeMethodOverwrites(t *testing.T) {
	vmInst := NewVM()
	class := vmInst.NewNativeClass(vmInst.CopyString("Host"))

	vmInst.DefineNativeMethod(class, "answer", func(vm *VM, argCount int, args []Value) Value {
		return NumberValue(1)
	})
	vmInst.DefineNativeMethod(class, "answer", func(vm *VM, argCount int, args []Value) Value {
		return NumberValue(2)
	})

	if len(class.Methods) != 1 {
		t.Errorf("method table has %d entries, want 1", len(class.Methods))
	}
	native := class.Method(vmInst, "answer")
	if got := native.Fn(vmInst, 0, nil); !got.Equals(NumberValue(2)) {
		t.Errorf("overwritten method returned %s, want 2", got)
	}
}

func TestDefineNativeMethodRootBalance(t *testing.T) {
	vmInst := NewVM()
	class := vmInst.NewNativeClass(vmInst.CopyString("Host"))

	vmInst.DefineNativeMethod(class, "a", func(vm *VM, argCount int, args []Value) Value { return Null })
	vmInst.DefineNativeMethod(class, "b", func(vm *VM, argCount int, args []Value) Value { return Null })

	if n := vmInst.TransientRoots(); n != 0 {
		t.Errorf("TransientRoots() = %d after definition, want 0", n)
	}
}

func TestNativeReceivesVMAndArgs(t *testing.T) {
	vmInst := NewVM()

	var gotVM *VM
	var gotCount int
	var gotArgs []Value
	n := vmInst.NewNative(func(vm *VM, argCount int, args []Value) Value {
		gotVM = vm
		gotCount = argCount
		gotArgs = args
		return Null
	})

	args := []Value{NumberValue(1), BoolValue(true)}
	n.Fn(vmInst, len(args), args)

	if gotVM != vmInst {
		t.Error("native should receive the calling VM")
	}
	if gotCount != 2 {
		t.Errorf("argCount = %d, want 2", gotCount)
	}
	if len(gotArgs) != 2 || !gotArgs[0].Equals(NumberValue(1)) || !gotArgs[1].Equals(BoolValue(true)) {
		t.Error("native should receive the argument slice unchanged")
	}
}
