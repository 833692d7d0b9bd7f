package xtest

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyMain checks that no goroutines are left running after all tests of a package.
// Use it from TestMain.
func VerifyMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// CheckGoroutinesLeak fails the test if goroutines started by it are still running at cleanup
func CheckGoroutinesLeak(t testing.TB) {
	t.Helper()

	ignore := goleak.IgnoreCurrent()
	t.Cleanup(func() {
		goleak.VerifyNone(t, ignore)
	})
}
