package vm

import (
	"testing"
)

func TestChunkWrite(t *testing.T) {
	c := NewChunk()
	if c.Count() != 0 {
		t.Errorf("Count() = %d, want 0", c.Count())
	}

	c.Write(0x01, 10)
	c.Write(0x02, 10)
	c.Write(0x03, 11)

	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", c.Count())
	}
	if c.Code[0] != 0x01 || c.Code[2] != 0x03 {
		t.Error("instruction bytes should be stored in write order")
	}
	if len(c.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(c.Lines))
	}
	if c.Lines[0] != 10 || c.Lines[2] != 11 {
		t.Error("source lines should parallel the instruction bytes")
	}
}

func TestChunkAddConstant(t *testing.T) {
	c := NewChunk()

	i0 := c.AddConstant(NumberValue(1.5))
	i1 := c.AddConstant(BoolValue(true))

	if i0 != 0 || i1 != 1 {
		t.Errorf("constant indexes = %d, %d, want 0, 1", i0, i1)
	}
	if !c.Constants[0].Equals(NumberValue(1.5)) {
		t.Error("Constants[0] should be 1.5")
	}
	if !c.Constants[1].Equals(BoolValue(true)) {
		t.Error("Constants[1] should be true")
	}
}

func TestFunctionChunkHoldsObjectConstants(t *testing.T) {
	vmInst := NewVM()
	fn := vmInst.NewFunction()

	s := vmInst.CopyString("constant")
	idx := fn.Chunk.AddConstant(ObjectValue(s))

	if got := fn.Chunk.Constants[idx].AsString(); got != s {
		t.Error("constant pool should hold the interned string")
	}
}
