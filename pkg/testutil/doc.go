// Package testutil provides helpers for lnlst tests.
//
// Helpers that touch the real filesystem work under t.TempDir(); MemFS
// builds an in-memory afero tree for reader and placer unit tests.
package testutil
