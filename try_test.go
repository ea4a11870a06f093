// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/poll"
)

func TestTrySeqSuccess(t *testing.T) {
	first := poll.Resolved(kont.Right[string, int](20))
	p := poll.TrySeq(first, poll.AdaptValue(func(x int) kont.Either[string, int] {
		return kont.Right[string, int](x + 1)
	}))

	e := pollN(t, p, 1)
	v, ok := e.GetRight()
	if !ok || v != 21 {
		t.Fatalf("got (%d, %v), want (21, true)", v, ok)
	}
}

func TestTrySeqShortCircuits(t *testing.T) {
	fired := false
	first := poll.Resolved(kont.Left[string, int]("boom"))
	p := poll.TrySeq(first, poll.AdaptValue(func(x int) kont.Either[string, int] {
		fired = true
		return kont.Right[string, int](x)
	}))

	e := pollN(t, p, 1)
	msg, ok := e.GetLeft()
	if !ok || msg != "boom" {
		t.Fatalf("got (%q, %v), want (%q, true)", msg, ok, "boom")
	}
	if fired {
		t.Fatal("next stage fired after a Left result")
	}
}

func TestTrySeqPendingUpstream(t *testing.T) {
	gate := false
	first := poll.Promise[kont.Either[string, int]](func() poll.Poll[kont.Either[string, int]] {
		if !gate {
			return poll.Pending[kont.Either[string, int]]()
		}
		return poll.Ready(kont.Right[string, int](1))
	})
	p := poll.TrySeq(first, poll.AdaptValue(func(x int) kont.Either[string, int] {
		return kont.Right[string, int](x * 10)
	}))

	if !p().IsPending() {
		t.Fatal("expected pending")
	}
	gate = true
	e := pollN(t, p, 1)
	if v, _ := e.GetRight(); v != 10 {
		t.Fatalf("got %d, want 10", v)
	}
}

func TestTryMap(t *testing.T) {
	right := poll.TryMap(poll.Resolved(kont.Right[string, int](6)), func(x int) int { return x * 7 })
	e := pollN(t, right, 1)
	if v, _ := e.GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}

	left := poll.TryMap(poll.Resolved(kont.Left[string, int]("nope")), func(x int) int { return x })
	e = pollN(t, left, 1)
	if msg, ok := e.GetLeft(); !ok || msg != "nope" {
		t.Fatalf("got (%q, %v), want (%q, true)", msg, ok, "nope")
	}
}
