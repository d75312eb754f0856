// Package sentinel provides a string-backed error type that can be
// declared as a const, so sentinel errors cannot be reassigned by
// importers and still compare with errors.Is through wrapped chains.
package sentinel
