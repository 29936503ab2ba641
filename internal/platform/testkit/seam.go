package testkit

import (
	"sync"
	"testing"
)

// seams serializes tests that replace package-level variables
var seams sync.Mutex

// Swap replaces *target for the duration of the test
// the original value is restored on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds the seam lock until the test ends
// call it before Swap in any test that runs in parallel with other seam users
func Serial(t *testing.T) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}
