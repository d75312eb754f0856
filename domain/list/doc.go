// Package list implements List, a doubly linked sequence whose nodes are
// drawn from a memory.Provider instead of the Go heap directly.
//
// The list is a ring closed by a sentinel node embedded in the List
// value: the sentinel's next is the first element and its prev the last,
// and it doubles as the End position. Every node is allocated through
// the list's memory.Allocator rebound to the node type and handed back
// to it on removal.
//
// Operations are strongly failure-safe. Insert either links a fully
// built node or leaves the ring untouched and releases the storage it
// reserved. Bulk operations (NewN, NewFilled, FromSlice, Clone, Assign)
// keep an undo log and unwind everything they did before returning an
// error.
//
// Erasing End, reading through End and mixing positions of different
// lists are caller errors with undefined results. A List is not safe for
// concurrent use and must not be copied by value once used; use Clone.
//
// To iterate over a list l:
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		// it.Value()
//	}
package list
