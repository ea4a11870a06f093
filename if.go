// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// If polls cond to completion, then fires exactly one of the two branch
// factories once and polls the branch promise for the remainder of the
// execution.
func If[T any](cond Promise[bool], then, otherwise Factory0[T]) Promise[T] {
	var branch Promise[T]
	return func() Poll[T] {
		if branch == nil {
			c, ok := cond().Get()
			if !ok {
				return Pending[T]()
			}
			if c {
				branch = then.Once()
			} else {
				branch = otherwise.Once()
			}
			cond = nil
		}
		return branch()
	}
}
