package vm

// ---------------------------------------------------------------------------
// Chunk: Bytecode container
// ---------------------------------------------------------------------------

// Chunk holds a function's compiled bytecode, its constant pool, and a
// source line per instruction byte. The instruction encoding belongs to
// the compiler and interpreter; to the object model the byte stream is
// opaque.
type Chunk struct {
	Code      []byte
	Constants []Value
	Lines     []int
}

// NewChunk returns an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Write appends one instruction byte with its source line.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// AddConstant appends v to the constant pool and returns its index.
func (c *Chunk) AddConstant(v Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// Count returns the number of instruction bytes written.
func (c *Chunk) Count() int { return len(c.Code) }
