// Package snapshot persists lists in a pebble store and restores them
// onto any memory provider.
//
// A snapshot is a header record plus one gob-encoded record per element,
// keyed by name and position and written in one synced batch, so a
// snapshot is replaced all at once or not at all. Restoring goes through
// list.FromSlice: a restore that runs out of memory leaves nothing
// allocated.
package snapshot
