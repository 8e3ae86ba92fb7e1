package vm

import (
	"io"
	"os"
	"sort"

	"github.com/tliron/commonlog"
)

// ---------------------------------------------------------------------------
// VM: The wisp virtual machine heap and global state
// ---------------------------------------------------------------------------

var vmLog = commonlog.GetLogger("wisp.vm")

// VM owns the heap: the live-object list, the string intern table, the
// global namespace, and the transient-root stack. One VM is one isolated
// heap; nothing is shared between instances.
//
// The VM is single-threaded by design. Allocation, interning, and global
// mutation must happen from one goroutine at a time; a host that wants
// parallelism runs one VM per goroutine.
type VM struct {
	// Globals is the global namespace, keyed by interned name.
	Globals map[*String]Value

	// Stderr is the error channel runtime errors are reported on.
	Stderr io.Writer

	// Exit terminates the process. Assertion failures call it with
	// ExitSoftware. Tests replace it to observe the code.
	Exit func(code int)

	// TraceAllocs logs every allocation at debug level when set.
	TraceAllocs bool

	// objects is the head of the intrusive live-object list. Every
	// object ever allocated stays on it until the collector sweeps it.
	objects Object

	// strings interns string content to its one canonical String.
	// The table is not a GC root; entries whose strings die are swept
	// by the collector.
	strings map[string]*String

	// roots is the transient-root stack protecting objects between
	// allocation and permanent storage. Strict stack discipline: every
	// PushRoot is matched by a PopRoot on every exit path.
	roots []Value

	allocCount uint64
}

// NewVM creates an empty VM.
func NewVM() *VM {
	return &VM{
		Globals: make(map[*String]Value),
		Stderr:  os.Stderr,
		Exit:    os.Exit,
		strings: make(map[string]*String),
	}
}

// ---------------------------------------------------------------------------
// Transient roots
// ---------------------------------------------------------------------------

// PushRoot pins v against collection until the matching PopRoot.
func (vm *VM) PushRoot(v Value) {
	vm.roots = append(vm.roots, v)
}

// PopRoot unpins and returns the most recently pushed root. Popping an
// empty stack is a violated push/pop pairing and panics.
func (vm *VM) PopRoot() Value {
	if len(vm.roots) == 0 {
		panic("vm: PopRoot on empty root stack")
	}
	v := vm.roots[len(vm.roots)-1]
	vm.roots = vm.roots[:len(vm.roots)-1]
	return v
}

// TransientRoots returns the current root stack depth.
func (vm *VM) TransientRoots() int { return len(vm.roots) }

// ---------------------------------------------------------------------------
// Heap and namespace accessors
// ---------------------------------------------------------------------------

// Objects returns the head of the live-object list. Following Next from
// here enumerates every live heap object in reverse allocation order.
func (vm *VM) Objects() Object { return vm.objects }

// ObjectCount walks the live-object list and returns its length.
func (vm *VM) ObjectCount() int {
	n := 0
	for obj := vm.objects; obj != nil; obj = obj.Next() {
		n++
	}
	return n
}

// InternedStrings returns the number of distinct interned strings.
func (vm *VM) InternedStrings() int { return len(vm.strings) }

// GlobalNames returns the names bound in the global namespace, sorted.
func (vm *VM) GlobalNames() []string {
	names := make([]string, 0, len(vm.Globals))
	for name := range vm.Globals {
		names = append(names, name.str)
	}
	sort.Strings(names)
	return names
}

// LookupGlobal returns the value bound under name in the global
// namespace. The bool reports whether the name is bound at all.
func (vm *VM) LookupGlobal(name string) (Value, bool) {
	interned := vm.LookupString(name)
	if interned == nil {
		return Null, false
	}
	v, ok := vm.Globals[interned]
	return v, ok
}
