// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/atomix"
)

// Latch is a one-shot completion cell: promises obtained from [Latch.Wait]
// report Pending until [Latch.Set] publishes a value, then Ready with that
// value forever after.
//
// Set may be called from a different goroutine than the pollers; publication
// is ordered through the atomic state flag. Set must be called at most once.
type Latch[T any] struct {
	state atomix.Uint32
	value T
}

// Set publishes v and releases all waiters. Calling Set twice panics.
func (l *Latch[T]) Set(v T) {
	l.value = v
	if l.state.Add(1) != 1 {
		panic("poll: Latch set twice")
	}
}

// Wait returns a promise that completes once the latch is set.
// Multiple Wait promises may poll the same latch from the same owner side.
func (l *Latch[T]) Wait() Promise[T] {
	return func() Poll[T] {
		if l.state.Load() == 0 {
			return Pending[T]()
		}
		return Ready(l.value)
	}
}
