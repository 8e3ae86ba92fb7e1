package vm

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

// List is a growable ordered sequence of values. Insertion order is
// significant and duplicates are allowed.
type List struct {
	objHeader
	Items []Value
}

// NewList allocates an empty list.
func (vm *VM) NewList() *List {
	l := &List{}
	vm.allocateObject(l, KindList)
	return l
}

// Append adds v at the end of the list.
func (l *List) Append(v Value) {
	l.Items = append(l.Items, v)
}

// At returns the element at index i. Panics if i is out of range; bounds
// checking against script input is the interpreter's job.
func (l *List) At(i int) Value { return l.Items[i] }

// Set replaces the element at index i. Panics if i is out of range.
func (l *List) Set(i int, v Value) { l.Items[i] = v }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Items) }
