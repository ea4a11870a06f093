// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// Curried pairs a stage-transition callable with its captured argument so that
// the pair satisfies the nullary promise contract: each poll invokes the
// stored callable with the stored argument.
//
// Both the callable and the argument are owned exclusively by the Curried
// value for its lifetime; nothing else aliases them. The argument is read on
// every poll and never consumed or mutated between polls, so a callable that
// delegates state to externally captured variables behaves correctly, while
// one expecting the argument itself to change across polls will not see that
// happen.
type Curried[A, T any] struct {
	f   func(A) Poll[T]
	arg A
}

// Curry captures f and arg as a Curried pair.
func Curry[A, T any](f func(A) Poll[T], arg A) Curried[A, T] {
	return Curried[A, T]{f: f, arg: arg}
}

// Poll invokes the stored callable with the stored argument.
func (c Curried[A, T]) Poll() Poll[T] {
	return c.f(c.arg)
}

// Promise returns the canonical promise backed by an own copy of c.
func (c Curried[A, T]) Promise() Promise[T] {
	return c.Poll
}
