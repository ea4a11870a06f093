// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// Poll is the outcome of polling a promise once: pending, or ready with a
// value of type T.
type Poll[T any] struct {
	value T
	ready bool
}

// Pending returns a Poll reporting that the promise cannot complete yet.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// Ready returns a Poll reporting completion with v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// IsPending reports whether the poll did not complete.
func (p Poll[T]) IsPending() bool {
	return !p.ready
}

// IsReady reports whether the poll completed.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// Get returns the ready value and true, or the zero value and false if
// the poll is pending.
func (p Poll[T]) Get() (T, bool) {
	return p.value, p.ready
}

// MatchPoll calls onReady with the value if p completed, otherwise onPending.
func MatchPoll[T, R any](p Poll[T], onReady func(T) R, onPending func() R) R {
	if p.ready {
		return onReady(p.value)
	}
	return onPending()
}

// MapPoll transforms the ready value of p. Pending maps to pending.
func MapPoll[A, B any](p Poll[A], f func(A) B) Poll[B] {
	if !p.ready {
		return Poll[B]{}
	}
	return Ready(f(p.value))
}
