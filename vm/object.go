package vm

import "fmt"

// ---------------------------------------------------------------------------
// Heap objects: Common header and the closed variant set
// ---------------------------------------------------------------------------

// ObjKind discriminates the concrete type of a heap object.
type ObjKind uint8

const (
	KindBoundMethod ObjKind = iota
	KindClass
	KindNativeClass
	KindClosure
	KindFunction
	KindInstance
	KindNative
	KindString
	KindList
	KindUpvalue
)

var objKindNames = [...]string{
	KindBoundMethod: "BoundMethod",
	KindClass:       "Class",
	KindNativeClass: "NativeClass",
	KindClosure:     "Closure",
	KindFunction:    "Function",
	KindInstance:    "Instance",
	KindNative:      "Native",
	KindString:      "String",
	KindList:        "List",
	KindUpvalue:     "Upvalue",
}

// String returns the kind's name, for diagnostics and heap snapshots.
func (k ObjKind) String() string {
	if int(k) < len(objKindNames) {
		return objKindNames[k]
	}
	return fmt.Sprintf("ObjKind(%d)", k)
}

// Object is implemented by every wisp heap object. The variant set is
// closed: String, Function, Closure, Upvalue, Class, NativeClass,
// Instance, BoundMethod, Native, and List. Presentation (String) is part
// of the interface so a new variant cannot compile without one.
type Object interface {
	// Kind returns the object's type tag.
	Kind() ObjKind
	// Marked reports the GC liveness flag. Always false at creation;
	// only the external collector sets and clears it.
	Marked() bool
	// SetMarked sets the GC liveness flag.
	SetMarked(m bool)
	// Next returns the previously allocated object. Following Next from
	// the VM's list head enumerates every live heap object, in reverse
	// allocation order. The chain is the sweep traversal source, never a
	// reachability source.
	Next() Object
	// String returns the canonical presentation of the object.
	String() string

	header() *objHeader
}

// objHeader is the common record embedded in every heap object. The
// allocation path stamps it; nothing else writes kind or next.
type objHeader struct {
	kind   ObjKind
	marked bool
	next   Object
}

func (h *objHeader) Kind() ObjKind      { return h.kind }
func (h *objHeader) Marked() bool       { return h.marked }
func (h *objHeader) SetMarked(m bool)   { h.marked = m }
func (h *objHeader) Next() Object       { return h.next }
func (h *objHeader) header() *objHeader { return h }

// allocateObject threads a freshly constructed object onto the live-object
// list: the header gets its kind, marked=false, and next pointing at the
// previous list head, and the object becomes the new head. Every
// constructor funnels through here. Allocation itself cannot fail
// recoverably; heap exhaustion aborts the process.
func (vm *VM) allocateObject(obj Object, kind ObjKind) {
	h := obj.header()
	h.kind = kind
	h.marked = false
	h.next = vm.objects
	vm.objects = obj

	vm.allocCount++
	if vm.TraceAllocs {
		vmLog.Debugf("allocate %s #%d", kind, vm.allocCount)
	}
}
