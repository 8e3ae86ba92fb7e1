package vm

import (
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Presentation: Canonical textual rendering of values and objects
// ---------------------------------------------------------------------------

// String renders the value the way wisp's print shows it: null, true,
// false, shortest-form numbers, and the canonical object rendering for
// heap objects.
func (v Value) String() string {
	switch v.kind {
	case ValueNull:
		return "null"
	case ValueBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case ValueObject:
		return v.obj.String()
	default:
		panic("vm: value with invalid kind")
	}
}

// functionString renders a function as <fn NAME>, or <script> for the
// unnamed top-level function.
func functionString(fn *Function) string {
	if fn.Name == nil {
		return "<script>"
	}
	return "<fn " + fn.Name.str + ">"
}

func (fn *Function) String() string { return functionString(fn) }

func (cl *Closure) String() string { return functionString(cl.Function) }

func (bm *BoundMethod) String() string { return functionString(bm.Method.Function) }

func (c *Class) String() string { return c.Name.str }

func (c *NativeClass) String() string { return c.Name.str }

func (inst *Instance) String() string { return inst.Class.Name.str + " instance" }

func (n *Native) String() string { return "<native fn>" }

func (s *String) String() string { return s.str }

// String renders the list as a bracketed, comma-separated rendering of
// its elements. Rendering recurses into nested lists with no cycle
// protection.
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range l.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (uv *Upvalue) String() string { return "upvalue" }
