package xtest

import (
	"strconv"
	"testing"
)

// Repeat runs test as n subtests, so cleanups of every run are done before the next one.
// It helps to catch races and leaks which happen only sometimes.
func Repeat(t *testing.T, n int, test func(t *testing.T)) {
	t.Helper()

	for i := range n {
		if !t.Run(strconv.Itoa(i), test) {
			return
		}
	}
}
