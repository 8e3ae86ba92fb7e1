package vm

import (
	"hash/fnv"
)

// ---------------------------------------------------------------------------
// String: Immutable interned byte content
// ---------------------------------------------------------------------------

// String is an immutable wisp string. Strings are interned: at most one
// live String exists per distinct content, so two *String references are
// content-equal exactly when they are identical.
type String struct {
	objHeader
	str  string
	hash uint32
}

// Content returns the string's content.
func (s *String) Content() string { return s.str }

// Len returns the content length in bytes.
func (s *String) Len() int { return len(s.str) }

// Hash returns the cached FNV-1a content hash.
func (s *String) Hash() uint32 { return s.hash }

// hashString computes the 32-bit FNV-1a hash of the content. The intern
// table and every hash-based lookup depend on this exact function
// (offset basis 2166136261, prime 16777619).
func hashString(content []byte) uint32 {
	h := fnv.New32a()
	h.Write(content)
	return h.Sum32()
}

// allocateString wraps already-deduplicated content in a new String and
// registers it in the intern table. The new string is pushed on the
// transient-root stack across the table insertion, which can itself
// allocate, then popped.
func (vm *VM) allocateString(content string, hash uint32) *String {
	s := &String{str: content, hash: hash}
	vm.allocateObject(s, KindString)

	vm.PushRoot(ObjectValue(s))
	vm.strings[content] = s
	vm.PopRoot()

	return s
}

// TakeString interns the content of bytes, taking ownership of the
// buffer: after the call the caller must not use bytes again. If the
// content is already interned the buffer is simply dropped and the
// existing String returned.
func (vm *VM) TakeString(bytes []byte) *String {
	hash := hashString(bytes)
	if interned, ok := vm.strings[string(bytes)]; ok {
		return interned
	}
	return vm.allocateString(string(bytes), hash)
}

// CopyString interns content, copying it only when no String with that
// content exists yet.
func (vm *VM) CopyString(content string) *String {
	hash := hashString([]byte(content))
	if interned, ok := vm.strings[content]; ok {
		return interned
	}
	return vm.allocateString(content, hash)
}

// LookupString returns the interned String for content, or nil when the
// content has never been interned. It never allocates.
func (vm *VM) LookupString(content string) *String {
	return vm.strings[content]
}
