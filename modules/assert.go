package modules

import (
	"github.com/chazu/wisp/vm"
)

// ---------------------------------------------------------------------------
// Assert: Fail-fast assertion primitives
// ---------------------------------------------------------------------------

// Assertions are deliberately unrecoverable: a failed assertion reports
// its message and terminates the process with ExitSoftware. Calling a
// method with too few arguments is a usage error instead; it reports and
// returns null without terminating.

func assertIsTrue(vmInst *vm.VM, argCount int, args []vm.Value) vm.Value {
	if argCount == 0 {
		vmInst.RuntimeError("Assert.isTrue() expects at least one argument.")
		return vm.Null
	}

	if args[0].IsFalsey() {
		if argCount == 2 {
			vmInst.RuntimeError("Failed asserting that %s", args[1])
		} else {
			vmInst.RuntimeError("Assert.isTrue() failed.")
		}

		vmInst.Exit(vm.ExitSoftware)
	}

	return vm.Null
}

func assertIsFalse(vmInst *vm.VM, argCount int, args []vm.Value) vm.Value {
	if argCount == 0 {
		vmInst.RuntimeError("Assert.isFalse() expects at least one argument.")
		return vm.Null
	}

	if !args[0].IsFalsey() {
		if argCount == 2 {
			vmInst.RuntimeError("Failed asserting that %s", args[1])
		} else {
			vmInst.RuntimeError("Assert.isFalse() failed.")
		}

		vmInst.Exit(vm.ExitSoftware)
	}

	return vm.Null
}

func assertEquals(vmInst *vm.VM, argCount int, args []vm.Value) vm.Value {
	if argCount < 2 {
		vmInst.RuntimeError("Assert.equals() expects at least two arguments.")
		return vm.Null
	}

	if !args[0].Equals(args[1]) {
		if argCount == 3 {
			vmInst.RuntimeError("Failed asserting that %s", args[2])
		} else {
			vmInst.RuntimeError("Assert.equals() failed.")
		}

		vmInst.Exit(vm.ExitSoftware)
	}

	return vm.Null
}

// RegisterAssert binds the Assert native class, with methods isTrue,
// isFalse, and equals, into the global namespace.
func RegisterAssert(vmInst *vm.VM) {
	name := vmInst.CopyString("Assert")
	vmInst.PushRoot(vm.ObjectValue(name))
	class := vmInst.NewNativeClass(name)
	vmInst.PushRoot(vm.ObjectValue(class))

	vmInst.DefineNativeMethod(class, "isTrue", assertIsTrue)
	vmInst.DefineNativeMethod(class, "isFalse", assertIsFalse)
	vmInst.DefineNativeMethod(class, "equals", assertEquals)

	vmInst.Globals[name] = vm.ObjectValue(class)
	vmInst.PopRoot()
	vmInst.PopRoot()
}
