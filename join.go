// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// JoinAll polls the given promises until every one has completed, then
// reports their values in argument order. Each promise stops being polled
// after its first Ready.
func JoinAll[T any](ps ...Promise[T]) Promise[[]T] {
	results := make([]T, len(ps))
	done := make([]bool, len(ps))
	remaining := len(ps)
	return func() Poll[[]T] {
		for i, p := range ps {
			if done[i] {
				continue
			}
			v, ok := p().Get()
			if !ok {
				continue
			}
			results[i] = v
			done[i] = true
			remaining--
		}
		if remaining > 0 {
			return Pending[[]T]()
		}
		return Ready(results)
	}
}
