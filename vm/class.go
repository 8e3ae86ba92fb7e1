package vm

// ---------------------------------------------------------------------------
// Class, NativeClass, Instance, BoundMethod
// ---------------------------------------------------------------------------

// Class is a user-defined class: a name and a method table mapping
// interned method names to closures that run in the interpreter. Method
// keys are unique; registering a name again overwrites the old method.
type Class struct {
	objHeader
	Name    *String
	Methods map[*String]*Closure
}

// NewClass allocates a class with an empty method table. The name must
// already be a live, rooted reference.
func (vm *VM) NewClass(name *String) *Class {
	c := &Class{Name: name, Methods: make(map[*String]*Closure)}
	vm.allocateObject(c, KindClass)
	return c
}

// NativeClass is a host-defined namespace of callable methods exposed to
// wisp code under a class name. It parallels Class structurally, but its
// methods are host functions that bypass the interpreter, and it never
// produces instances.
type NativeClass struct {
	objHeader
	Name    *String
	Methods map[*String]*Native
}

// NewNativeClass allocates a native class with an empty method table.
func (vm *VM) NewNativeClass(name *String) *NativeClass {
	c := &NativeClass{Name: name, Methods: make(map[*String]*Native)}
	vm.allocateObject(c, KindNativeClass)
	return c
}

// Method returns the native method registered under name, or nil. The
// lookup goes through the intern table and never allocates.
func (c *NativeClass) Method(vm *VM, name string) *Native {
	interned := vm.LookupString(name)
	if interned == nil {
		return nil
	}
	return c.Methods[interned]
}

// Instance is one object of a user-defined class. Fields appear in the
// map as they are first assigned. The class is shared, never owned.
type Instance struct {
	objHeader
	Class  *Class
	Fields map[*String]Value
}

// NewInstance allocates an instance of class with no fields set.
func (vm *VM) NewInstance(class *Class) *Instance {
	inst := &Instance{Class: class, Fields: make(map[*String]Value)}
	vm.allocateObject(inst, KindInstance)
	return inst
}

// BoundMethod pairs a receiver with a method closure pulled from the
// receiver's class, so the pair can travel as a first-class value. It
// owns neither half.
type BoundMethod struct {
	objHeader
	Receiver Value
	Method   *Closure
}

// NewBoundMethod allocates a bound method.
func (vm *VM) NewBoundMethod(receiver Value, method *Closure) *BoundMethod {
	bm := &BoundMethod{Receiver: receiver, Method: method}
	vm.allocateObject(bm, KindBoundMethod)
	return bm
}
