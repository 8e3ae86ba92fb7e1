package vm

// ---------------------------------------------------------------------------
// Function, Closure, Upvalue
// ---------------------------------------------------------------------------

// Function is a compiled function body: its arity, the number of
// enclosing-scope variables it captures, its bytecode, and an optional
// name. Name is nil for top-level script code and anonymous functions.
// A Function is owned by whichever Closure wraps it, or by the compiler
// while still under construction.
type Function struct {
	objHeader
	Arity        int
	UpvalueCount int
	Name         *String
	Chunk        *Chunk
}

// NewFunction allocates a blank function: zero arity, no upvalues, no
// name, an empty chunk. The compiler fills it in.
func (vm *VM) NewFunction() *Function {
	fn := &Function{Chunk: NewChunk()}
	vm.allocateObject(fn, KindFunction)
	return fn
}

// Upvalue is the reference cell for one captured variable. While the
// capturing frame is live the upvalue is open: Location points at the
// frame's stack slot. When the frame ends the interpreter closes it:
// the value is copied into Closed and Location repointed there, so reads
// and writes keep going through Location in both states.
type Upvalue struct {
	objHeader
	Location *Value
	Closed   Value
	// NextOpen links open upvalues, sorted by stack slot; the
	// interpreter walks it when closing over frame exit.
	NextOpen *Upvalue
}

// NewUpvalue allocates an open upvalue over the given stack slot.
func (vm *VM) NewUpvalue(slot *Value) *Upvalue {
	uv := &Upvalue{Location: slot, Closed: Null}
	vm.allocateObject(uv, KindUpvalue)
	return uv
}

// Close copies the captured variable out of its stack slot into the
// upvalue itself and repoints Location at the copy.
func (uv *Upvalue) Close() {
	uv.Closed = *uv.Location
	uv.Location = &uv.Closed
}

// Get returns the captured variable's current value.
func (uv *Upvalue) Get() Value { return *uv.Location }

// Set assigns the captured variable.
func (uv *Upvalue) Set(v Value) { *uv.Location = v }

// Closure pairs a Function with the upvalues it captured. The Function is
// shared: several closures may wrap the same one. The upvalue array is
// this closure's own, sized exactly to the function's upvalue count.
type Closure struct {
	objHeader
	Function *Function
	Upvalues []*Upvalue
}

// NewClosure allocates a closure over fn. The upvalue slots start nil;
// the interpreter populates them one by one as it captures variables.
func (vm *VM) NewClosure(fn *Function) *Closure {
	cl := &Closure{
		Function: fn,
		Upvalues: make([]*Upvalue, fn.UpvalueCount),
	}
	vm.allocateObject(cl, KindClosure)
	return cl
}
