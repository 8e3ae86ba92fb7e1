package vm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ---------------------------------------------------------------------------
// Heap snapshots: A deterministic point-in-time description of the heap
// ---------------------------------------------------------------------------

// cborEncMode is the canonical CBOR encoding mode used for snapshots, so
// the same heap always produces the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// SnapshotObject describes one heap object: its position on the
// live-object list (0 = list head, i.e. the most recent allocation), its
// kind, its canonical rendering, and its mark flag.
type SnapshotObject struct {
	Index  int    `cbor:"1,keyasint"`
	Kind   string `cbor:"2,keyasint"`
	Render string `cbor:"3,keyasint"`
	Marked bool   `cbor:"4,keyasint,omitempty"`
}

// Snapshot is a point-in-time description of a VM heap.
type Snapshot struct {
	Objects []SnapshotObject `cbor:"1,keyasint"`
	Counts  map[string]int   `cbor:"2,keyasint"`
	Globals []string         `cbor:"3,keyasint,omitempty"`
	Strings int              `cbor:"4,keyasint"`
}

// Snapshot captures the heap: every live object in list order, per-kind
// totals, the sorted global names, and the intern table size. Taking a
// snapshot reads the heap without allocating wisp objects on it.
func (vm *VM) Snapshot() *Snapshot {
	snap := &Snapshot{
		Counts:  make(map[string]int),
		Globals: vm.GlobalNames(),
		Strings: len(vm.strings),
	}

	i := 0
	for obj := vm.objects; obj != nil; obj = obj.Next() {
		kind := obj.Kind().String()
		snap.Objects = append(snap.Objects, SnapshotObject{
			Index:  i,
			Kind:   kind,
			Render: obj.String(),
			Marked: obj.Marked(),
		})
		snap.Counts[kind]++
		i++
	}

	return snap
}

// MarshalSnapshot serializes a Snapshot to canonical CBOR bytes.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("vm: unmarshal snapshot: %w", err)
	}
	return &s, nil
}
