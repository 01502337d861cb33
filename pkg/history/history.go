// Package history keeps the edit history of a session as an append-only
// log of scene snapshots with a cursor. The store is a pure history
// mechanism: it never validates the snapshots it is given; callers
// validate through the spatial checks before committing.
package history

import "github.com/kherm/brickyard/pkg/scene"

// Store holds the snapshot log and the cursor into it. The cursor is
// always a valid index; the snapshot at the cursor is the current scene
// and the single source of truth for the renderer.
type Store struct {
	snapshots []scene.Scene
	cursor    int
}

// NewStore creates a store seeded with one empty scene at index 0.
func NewStore() *Store {
	return &Store{snapshots: []scene.Scene{scene.New()}}
}

// Commit appends a new snapshot and moves the cursor to it. Any
// snapshots after the cursor are discarded first: once a new edit is
// committed, the abandoned redo branch is unreachable.
func (st *Store) Commit(s scene.Scene) {
	st.snapshots = append(st.snapshots[:st.cursor+1], s)
	st.cursor = len(st.snapshots) - 1
}

// Undo moves the cursor back one snapshot. At the oldest snapshot it is
// a no-op; callers may invoke it unconditionally. Reports whether the
// cursor moved.
func (st *Store) Undo() bool {
	if st.cursor == 0 {
		return false
	}
	st.cursor--
	return true
}

// Redo moves the cursor forward one snapshot. At the newest snapshot it
// is a no-op. Reports whether the cursor moved.
func (st *Store) Redo() bool {
	if st.cursor >= len(st.snapshots)-1 {
		return false
	}
	st.cursor++
	return true
}

// Current returns the snapshot under the cursor.
func (st *Store) Current() scene.Scene {
	return st.snapshots[st.cursor]
}

// CanUndo reports whether Undo would move the cursor.
func (st *Store) CanUndo() bool {
	return st.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (st *Store) CanRedo() bool {
	return st.cursor < len(st.snapshots)-1
}

// Len returns the number of reachable snapshots.
func (st *Store) Len() int {
	return len(st.snapshots)
}

// Cursor returns the current cursor index.
func (st *Store) Cursor() int {
	return st.cursor
}
