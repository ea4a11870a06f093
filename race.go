// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// Race polls the given promises in argument order until one completes; its
// value wins. Later promises are not polled once an earlier one is ready
// within the same poll.
//
// Race of no promises never completes.
func Race[T any](ps ...Promise[T]) Promise[T] {
	return func() Poll[T] {
		for _, p := range ps {
			if v, ok := p().Get(); ok {
				return Ready(v)
			}
		}
		return Pending[T]()
	}
}
