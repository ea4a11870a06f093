// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// Promise is the canonical unit of asynchronous work: a function polled by an
// external scheduler, each invocation returning [Pending] or [Ready].
//
// A Promise must never block. Pending signaling belongs to the wrapped
// computation; the scheduler decides when to poll again. Each Promise is
// polled by exactly one logical owner at a time.
//
// Any func() Poll[T] is a Promise[T] by assignment. Plain-value callables
// adapt via [Immediate].
type Promise[T any] func() Poll[T]

// Resolved returns a Promise already completed with v.
// Every poll reports Ready(v).
func Resolved[T any](v T) Promise[T] {
	return func() Poll[T] {
		return Ready(v)
	}
}

// Never returns a Promise that always reports pending.
func Never[T any]() Promise[T] {
	return Pending[T]
}

// Immediate adapts a plain-value callable into a Promise: each poll invokes f
// and reports its result as ready.
//
// f is re-invoked on every poll, not memoized. Callables relying on side
// effects observed across polls depend on this.
func Immediate[T any](f func() T) Promise[T] {
	return func() Poll[T] {
		return Ready(f())
	}
}

// Map transforms the eventual result of p with f.
// f runs once, at the poll that completes p.
func Map[A, B any](p Promise[A], f func(A) B) Promise[B] {
	return func() Poll[B] {
		return MapPoll(p(), f)
	}
}
