// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// Seq chains a stage transition after first: once first completes, next fires
// exactly once with the ready value and the produced promise is polled for
// the remainder of the execution.
//
// Longer pipelines nest: Seq(Seq(p, f1), f2).
func Seq[A, B any](first Promise[A], next Factory[A, B]) Promise[B] {
	var second Promise[B]
	return func() Poll[B] {
		if second == nil {
			v, ok := first().Get()
			if !ok {
				return Pending[B]()
			}
			second = next.Once(v)
			first = nil
		}
		return second()
	}
}

// Seq0 chains a nullary stage transition after first, discarding its result.
func Seq0[A, B any](first Promise[A], next Factory0[B]) Promise[B] {
	var second Promise[B]
	return func() Poll[B] {
		if second == nil {
			if first().IsPending() {
				return Pending[B]()
			}
			second = next.Once()
			first = nil
		}
		return second()
	}
}
