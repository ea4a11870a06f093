// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/kont"
)

// TrySeq chains a stage transition after a fallible promise. A Right result
// fires next exactly once with the success value; a Left result short-circuits
// without invoking next.
func TrySeq[E, A, B any](first Promise[kont.Either[E, A]], next Factory[A, kont.Either[E, B]]) Promise[kont.Either[E, B]] {
	var second Promise[kont.Either[E, B]]
	return func() Poll[kont.Either[E, B]] {
		if second == nil {
			e, ok := first().Get()
			if !ok {
				return Pending[kont.Either[E, B]]()
			}
			if left, ok := e.GetLeft(); ok {
				return Ready(kont.Left[E, B](left))
			}
			right, _ := e.GetRight()
			second = next.Once(right)
			first = nil
		}
		return second()
	}
}

// TryMap transforms the success value of a fallible promise.
// A Left result passes through untouched.
func TryMap[E, A, B any](p Promise[kont.Either[E, A]], f func(A) B) Promise[kont.Either[E, B]] {
	return Map(p, func(e kont.Either[E, A]) kont.Either[E, B] {
		if left, ok := e.GetLeft(); ok {
			return kont.Left[E, B](left)
		}
		right, _ := e.GetRight()
		return kont.Right[E, B](f(right))
	})
}
