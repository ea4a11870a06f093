// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/kont"
)

// A Dispatcher advances one suspended effect operation.
// It must be non-blocking: return iox.ErrWouldBlock (or any non-nil error)
// when the operation cannot make progress now; the suspension is then left
// unconsumed and retried at a later poll.
type Dispatcher func(op kont.Operation) (kont.Resumed, error)

// FromExpr adapts a defunctionalized effect computation into a promise.
// Each poll dispatches suspended operations until the dispatcher reports
// would-block (Pending) or the computation completes (Ready).
//
// The returned promise owns the stepping state exclusively; it must be
// polled by one logical owner, like any promise.
func FromExpr[R any](m kont.Expr[R], dispatch Dispatcher) Promise[R] {
	result, susp := kont.StepExpr(m)
	return func() Poll[R] {
		for susp != nil {
			v, err := dispatch(susp.Op())
			if err != nil {
				return Pending[R]()
			}
			result, susp = susp.Resume(v)
		}
		return Ready(result)
	}
}

// FromEff adapts a closure-world effect computation into a promise,
// reifying it into the defunctionalized representation first.
func FromEff[R any](m kont.Eff[R], dispatch Dispatcher) Promise[R] {
	return FromExpr(kont.Reify(m), dispatch)
}
