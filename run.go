// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/iox"
)

// Run polls p to completion on the calling goroutine, waiting with adaptive
// backoff (iox.Backoff) between pending polls. Does not spawn goroutines or
// create channels.
//
// Run is the blocking boundary: inside a cooperative scheduler, poll p
// directly instead.
func Run[T any](p Promise[T]) T {
	var bo iox.Backoff
	for {
		if v, ok := p().Get(); ok {
			return v
		}
		bo.Wait()
	}
}

// Run2 polls two promises to completion, interleaved on the calling
// goroutine, and returns both results. Backs off adaptively (iox.Backoff)
// when neither side completed in a round; since pipe promises make transport
// progress while still reporting pending, every round polls both sides.
// Does not spawn goroutines or create channels.
func Run2[A, B any](a Promise[A], b Promise[B]) (A, B) {
	var (
		resultA A
		resultB B
	)
	doneA, doneB := false, false
	var bo iox.Backoff
	for !doneA || !doneB {
		progress := false
		if !doneA {
			if v, ok := a().Get(); ok {
				resultA, doneA = v, true
				progress = true
			}
		}
		if !doneB {
			if v, ok := b().Get(); ok {
				resultB, doneB = v, true
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
