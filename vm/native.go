package vm

// ---------------------------------------------------------------------------
// Native host functions
// ---------------------------------------------------------------------------

// NativeFn is the calling convention between wisp code and host code:
// the VM handle, the number of arguments, and the argument slice. args
// has exactly argCount elements. The returned Value is the call result.
//
// A native signals a usage error (wrong argument count) by reporting
// through RuntimeError and returning Null; an assertion-style native
// signals failure by reporting and then calling Exit(ExitSoftware).
type NativeFn func(vm *VM, argCount int, args []Value) Value

// Native wraps a host function so it can live in a method table and on
// the heap like any other object.
type Native struct {
	objHeader
	Fn NativeFn
}

// NewNative allocates a Native wrapping fn.
func (vm *VM) NewNative(fn NativeFn) *Native {
	n := &Native{Fn: fn}
	vm.allocateObject(n, KindNative)
	return n
}

// DefineNativeMethod interns name, wraps fn as a Native, and registers it
// in the class's method table, overwriting any previous method under the
// same name. Name string and Native are rooted across the insertion.
func (vm *VM) DefineNativeMethod(class *NativeClass, name string, fn NativeFn) {
	interned := vm.CopyString(name)
	vm.PushRoot(ObjectValue(interned))
	native := vm.NewNative(fn)
	vm.PushRoot(ObjectValue(native))

	class.Methods[interned] = native

	vm.PopRoot()
	vm.PopRoot()
}
