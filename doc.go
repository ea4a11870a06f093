// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package poll provides cooperative poll-based promises and the factory
// adaptation layer that admits heterogeneous callable shapes into one
// canonical form.
//
// A [Promise] is a unit of asynchronous work polled by an external scheduler:
// each invocation returns [Pending] or [Ready]. Pipelines are built by
// chaining stage transitions, and stage-transition callables arrive in many
// natural shapes — returning a promise, a poll result, or a plain value,
// taking the upstream value or ignoring it. A [Factory] normalizes any of
// these shapes, chosen at compile time by constructor, into exactly one
// promise per invocation.
//
// # Architecture
//
//   - Canonical form: [Promise] is func() [Poll]; [Curried] captures a
//     callable+argument pair into the nullary contract.
//   - Adaptation: [Adapt], [AdaptThunk], [AdaptPoll], [AdaptPollThunk],
//     [AdaptValue], [AdaptValueThunk], [AdaptPromise] and the nullary
//     mirrors ([Adapt0], [AdaptPoll0], [AdaptValue0], [AdaptPromise0])
//     form the closed shape enumeration. A callable that fits no
//     constructor fails at compile time.
//   - Invocation modes: [Factory.Once] fires a transition exactly once per
//     execution; [Factory.Repeated] re-arms the same factory across
//     iterations. Both mint one fresh promise per call.
//   - Combinators: [Seq], [Seq0], [TrySeq], [TryMap], [Loop], [Loop0],
//     [Race], [JoinAll], [If], [Map] compose stage transitions through
//     factories.
//   - Transport: [Pipe] is a bounded lock-free SPSC conduit via
//     [code.hybscloud.com/lfq] whose Send/Recv promises report Pending on
//     backpressure; TrySend/TryRecv surface
//     [code.hybscloud.com/iox.ErrWouldBlock] for event-loop integration.
//   - Completion: [Latch] publishes a one-shot cross-goroutine result.
//   - Blocking: [Run] and [Run2] poll to completion using adaptive backoff.
//   - Bridge: [FromExpr] and [FromEff] step
//     [code.hybscloud.com/kont] effect computations as promises.
//
// # Polling Discipline
//
// Promises never block and never suspend: Pending is a value, waiting belongs
// to whoever polls. Each promise is polled by exactly one logical owner at a
// time; no promise or factory requires locking. Nullary poll and plain-value
// callables are re-invoked on every poll, never memoized, so callables may
// observe external side effects across polls.
//
// # Example
//
//	inc := poll.AdaptValue(func(x int) int { return x + 1 })
//	p := poll.Seq(poll.Resolved(41), inc)
//	v := poll.Run(p) // 42
package poll
