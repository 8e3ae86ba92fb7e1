package vm

import "fmt"

// ---------------------------------------------------------------------------
// Runtime error reporting and fatal termination
// ---------------------------------------------------------------------------

// ExitSoftware is the process status for assertion-style failures, the
// conventional "internal software error" status. The exact value is an
// observable contract: scripts and test harnesses match on it.
const ExitSoftware = 70

// RuntimeError reports a runtime error message on the VM's error
// channel. It does not terminate and does not unwind; callers that must
// not continue follow up with Exit.
func (vm *VM) RuntimeError(format string, args ...interface{}) {
	fmt.Fprintf(vm.Stderr, format+"\n", args...)
}
