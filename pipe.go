// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the bounded capacity of the pipe transport queue.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping the ring buffer within a single cache line.
const pipeCapacity = 4

// Pipe is a bounded single-producer single-consumer conduit between two
// promise pipelines, backed by a lock-free SPSC queue from lfq.
//
// Exactly one goroutine may hold the sending side and one the receiving
// side. The promise surface ([Pipe.Send], [Pipe.Recv]) reports Pending while
// the queue cannot make progress; the non-blocking surface ([Pipe.TrySend],
// [Pipe.TryRecv]) returns iox.ErrWouldBlock instead, for event-loop
// integration.
type Pipe[T any] struct {
	q      lfq.SPSC[T]
	slot   T
	closed atomix.Uint32
	serial Serial
}

// NewPipe creates a pipe with a bounded lock-free transport queue.
func NewPipe[T any]() *Pipe[T] {
	p := &Pipe[T]{serial: nextSerial()}
	p.q.Init(pipeCapacity)
	return p
}

// Serial returns the serial number assigned to this pipe.
func (p *Pipe[T]) Serial() Serial {
	return p.serial
}

// TrySend enqueues v without waiting.
// Returns iox.ErrWouldBlock when the bounded queue is full.
func (p *Pipe[T]) TrySend(v T) error {
	p.slot = v
	return p.q.Enqueue(&p.slot)
}

// TryRecv dequeues a value without waiting.
// Returns iox.ErrWouldBlock when the bounded queue is empty.
func (p *Pipe[T]) TryRecv() (T, error) {
	return p.q.Dequeue()
}

// Send returns a promise that completes once the pipe accepts v.
// Each poll attempts one enqueue; a full queue reports Pending.
func (p *Pipe[T]) Send(v T) Promise[struct{}] {
	return func() Poll[struct{}] {
		if p.TrySend(v) != nil {
			return Pending[struct{}]()
		}
		return Ready(struct{}{})
	}
}

// Recv returns a promise that completes with the next value from the pipe.
// Each poll attempts one dequeue; an empty queue reports Pending.
//
// The promise consumes one value at the completing poll. As with every
// promise, it must not be polled again after Ready.
func (p *Pipe[T]) Recv() Promise[T] {
	return func() Poll[T] {
		v, err := p.TryRecv()
		if err != nil {
			return Pending[T]()
		}
		return Ready(v)
	}
}

// Close marks the pipe closed. Values already enqueued remain receivable;
// closing is an out-of-band signal, observed via [Pipe.Closed].
func (p *Pipe[T]) Close() {
	p.closed.Add(1)
}

// Closed reports whether either side has closed the pipe.
func (p *Pipe[T]) Closed() bool {
	return p.closed.Load() != 0
}
