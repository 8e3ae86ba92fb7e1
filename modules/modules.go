// Package modules provides the builtin native modules: host functionality
// exposed to wisp programs as native classes in the global namespace.
//
// A module registers itself through the vm package's extension ABI:
// intern the module name, root it, allocate a NativeClass, root it,
// define the native methods, bind the class into the globals, then drop
// both roots. New modules follow the same sequence.
package modules

import (
	"github.com/chazu/wisp/vm"
)

// RegisterBuiltins registers every builtin module in the VM's global
// namespace.
func RegisterBuiltins(vmInst *vm.VM) {
	RegisterAssert(vmInst)
}
