// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// A Factory owns a stage-transition callable and mints one fresh promise per
// invocation. Factories are the edges of promise pipelines: they fire at stage
// boundaries, consuming the previous stage's ready value and producing the
// next unit of work.
//
// Stage-transition callables come in several natural shapes — returning a
// promise, returning a poll result, returning a plain value, taking the
// upstream value or ignoring it. Go has no overload resolution, so the shape
// set is a closed enumeration of constructors ([Adapt], [AdaptThunk],
// [AdaptPoll], [AdaptValue], [AdaptValueThunk], [AdaptPollThunk],
// [AdaptPromise]); picking the constructor is the compile-time shape decision,
// and a callable matching no constructor fails to compile at the call site.
// Every constructor normalizes to the same canonical form, so holders of a
// Factory never learn which shape produced it, and no per-poll branching or
// tagging remains.
//
// [Factory.Once] and [Factory.Repeated] distinguish one-shot from re-armed
// invocation. In ownership-transfer languages Once moves captured state into
// the produced promise; under a garbage collector the move is not observable
// and both modes share one implementation. Both entry points are kept to
// document caller intent: combinator code that fires a transition exactly once
// per execution calls Once, re-arming combinators such as [Loop] call
// Repeated.
type Factory[A, T any] struct {
	mint func(A) Promise[T]
}

// Once mints the promise for arg, consuming the factory in intent: the caller
// promises not to invoke f again.
func (f Factory[A, T]) Once(arg A) Promise[T] {
	return f.mint(arg)
}

// Repeated mints the promise for arg, leaving the factory usable. Each call
// produces an independent promise over the same stored callable.
func (f Factory[A, T]) Repeated(arg A) Promise[T] {
	return f.mint(arg)
}

// Adapt builds a Factory from a callable already in the formal shape: given
// the upstream value, it returns the next promise. The callable is invoked at
// transition time and its promise is used as-is.
func Adapt[A, T any](f func(A) Promise[T]) Factory[A, T] {
	return Factory[A, T]{mint: f}
}

// AdaptThunk builds a Factory from a nullary callable returning a promise.
// The upstream value is discarded at transition time.
func AdaptThunk[A, T any](f func() Promise[T]) Factory[A, T] {
	return Factory[A, T]{mint: func(A) Promise[T] {
		return f()
	}}
}

// AdaptPoll builds a Factory from a callable taking the upstream value and
// returning a poll result. Each invocation captures the value in a [Curried]
// pair, which serves as the promise: the callable runs with the captured
// value on every poll.
func AdaptPoll[A, T any](f func(A) Poll[T]) Factory[A, T] {
	return Factory[A, T]{mint: func(arg A) Promise[T] {
		return Curry(f, arg).Promise()
	}}
}

// AdaptPollThunk builds a Factory from a nullary callable returning a poll
// result. The callable itself is the promise; the upstream value is
// discarded. The callable is re-invoked on every poll, never memoized.
func AdaptPollThunk[A, T any](f func() Poll[T]) Factory[A, T] {
	return Factory[A, T]{mint: func(A) Promise[T] {
		return f
	}}
}

// AdaptValue builds a Factory from a callable taking the upstream value and
// returning a plain value, treated as immediately ready.
func AdaptValue[A, T any](f func(A) T) Factory[A, T] {
	return AdaptPoll(func(arg A) Poll[T] {
		return Ready(f(arg))
	})
}

// AdaptValueThunk builds a Factory from a nullary plain-value callable,
// treated as immediately ready. The upstream value is discarded and the
// callable is re-invoked on every poll.
func AdaptValueThunk[A, T any](f func() T) Factory[A, T] {
	return Factory[A, T]{mint: func(A) Promise[T] {
		return Immediate(f)
	}}
}

// AdaptPromise builds a Factory that returns just p, whatever the upstream
// value.
func AdaptPromise[A, T any](p Promise[T]) Factory[A, T] {
	return Factory[A, T]{mint: func(A) Promise[T] {
		return p
	}}
}

// Factory0 is the nullary [Factory]: the stage transition takes no upstream
// value. All shape and invocation-mode rules carry over with arity zero.
type Factory0[T any] struct {
	mint func() Promise[T]
}

// Once mints the promise, consuming the factory in intent.
func (f Factory0[T]) Once() Promise[T] {
	return f.mint()
}

// Repeated mints the promise, leaving the factory usable.
func (f Factory0[T]) Repeated() Promise[T] {
	return f.mint()
}

// Adapt0 builds a Factory0 from a nullary callable returning a promise.
func Adapt0[T any](f func() Promise[T]) Factory0[T] {
	return Factory0[T]{mint: f}
}

// AdaptPoll0 builds a Factory0 from a nullary callable returning a poll
// result. The callable itself is the promise, re-invoked on every poll.
func AdaptPoll0[T any](f func() Poll[T]) Factory0[T] {
	return Factory0[T]{mint: func() Promise[T] {
		return f
	}}
}

// AdaptValue0 builds a Factory0 from a nullary plain-value callable, treated
// as immediately ready and re-invoked on every poll.
func AdaptValue0[T any](f func() T) Factory0[T] {
	return Factory0[T]{mint: func() Promise[T] {
		return Immediate(f)
	}}
}

// AdaptPromise0 builds a Factory0 that returns just p.
func AdaptPromise0[T any](p Promise[T]) Factory0[T] {
	return Factory0[T]{mint: func() Promise[T] {
		return p
	}}
}
