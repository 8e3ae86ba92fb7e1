// Package vm implements the wisp heap and object model.
//
// This package contains:
//   - Tagged value representation
//   - Heap object layout and the live-object list
//   - String interning
//   - The native-extension protocol
//   - Canonical object presentation and heap snapshots
package vm
