// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/kont"
)

// Loop runs a stage transition as a trampoline. body is re-armed via
// [Factory.Repeated] for each iteration: a Left(state) result starts the next
// iteration with that state, a Right(result) result completes the loop.
//
// Iterations that complete synchronously are consumed within a single poll,
// so a body that never yields runs to the Right case without suspending.
func Loop[S, T any](initial S, body Factory[S, kont.Either[S, T]]) Promise[T] {
	cur := body.Repeated(initial)
	return func() Poll[T] {
		for {
			e, ok := cur().Get()
			if !ok {
				return Pending[T]()
			}
			if left, ok := e.GetLeft(); ok {
				cur = body.Repeated(left)
				continue
			}
			right, _ := e.GetRight()
			return Ready(right)
		}
	}
}

// Loop0 runs a stateless trampoline: body is re-armed until it reports
// Right(result). Left continues.
func Loop0[T any](body Factory0[kont.Either[struct{}, T]]) Promise[T] {
	cur := body.Repeated()
	return func() Poll[T] {
		for {
			e, ok := cur().Get()
			if !ok {
				return Pending[T]()
			}
			if e.IsLeft() {
				cur = body.Repeated()
				continue
			}
			right, _ := e.GetRight()
			return Ready(right)
		}
	}
}
