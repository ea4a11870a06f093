// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll_test

import (
	"testing"

	"code.hybscloud.com/poll"
)

// pollN polls p up to n times and returns the first ready value.
// Fails the test if p is still pending after n polls.
// Used by tests that must bound the number of polls instead of using Run.
func pollN[T any](tb testing.TB, p poll.Promise[T], n int) T {
	tb.Helper()
	for range n {
		if v, ok := p().Get(); ok {
			return v
		}
	}
	tb.Fatalf("promise still pending after %d polls", n)
	var zero T
	return zero
}
