// Package diagnostic provides structured warnings and notes reported while
// building a descriptor catalogue.
//
// Warnings and notes never stop generation; every key path still yields an
// entry. Errors record the failure that ended a run early.
// Key capabilities:
//   - Name collision warnings (two paths deriving the same identifier)
//   - Notes about empty interior maps
//   - Render, sink and cancellation failures
package diagnostic
