// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll_test

import (
	"testing"

	"code.hybscloud.com/poll"
)

func TestPollStates(t *testing.T) {
	pending := poll.Pending[int]()
	if pending.IsReady() || !pending.IsPending() {
		t.Fatal("pending poll misreports state")
	}
	if _, ok := pending.Get(); ok {
		t.Fatal("pending poll returned a value")
	}

	ready := poll.Ready(42)
	if !ready.IsReady() || ready.IsPending() {
		t.Fatal("ready poll misreports state")
	}
	if v, ok := ready.Get(); !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
}

func TestMatchPoll(t *testing.T) {
	onReady := func(v int) string { return "ready" }
	onPending := func() string { return "pending" }

	if got := poll.MatchPoll(poll.Ready(1), onReady, onPending); got != "ready" {
		t.Fatalf("got %q, want %q", got, "ready")
	}
	if got := poll.MatchPoll(poll.Pending[int](), onReady, onPending); got != "pending" {
		t.Fatalf("got %q, want %q", got, "pending")
	}
}

func TestMapPoll(t *testing.T) {
	double := func(x int) int { return x * 2 }
	if v, _ := poll.MapPoll(poll.Ready(3), double).Get(); v != 6 {
		t.Fatalf("got %d, want 6", v)
	}
	if !poll.MapPoll(poll.Pending[int](), double).IsPending() {
		t.Fatal("mapping pending must stay pending")
	}
}

func TestResolvedEveryPoll(t *testing.T) {
	p := poll.Resolved("v")
	for range 3 {
		if v, ok := p().Get(); !ok || v != "v" {
			t.Fatalf("got (%q, %v), want (%q, true)", v, ok, "v")
		}
	}
}

func TestNever(t *testing.T) {
	p := poll.Never[int]()
	for range 3 {
		if !p().IsPending() {
			t.Fatal("Never completed")
		}
	}
}

func TestImmediateReinvokes(t *testing.T) {
	n := 0
	p := poll.Immediate(func() int {
		n++
		return n
	})
	if v, _ := p().Get(); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
	if v, _ := p().Get(); v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}

func TestRun(t *testing.T) {
	n := 0
	p := poll.Promise[int](func() poll.Poll[int] {
		n++
		if n < 4 {
			return poll.Pending[int]()
		}
		return poll.Ready(n)
	})
	if v := poll.Run(p); v != 4 {
		t.Fatalf("got %d, want 4", v)
	}
}

func TestRun2(t *testing.T) {
	na, nb := 0, 0
	a := poll.Promise[int](func() poll.Poll[int] {
		na++
		if na < 2 {
			return poll.Pending[int]()
		}
		return poll.Ready(na)
	})
	b := poll.Promise[string](func() poll.Poll[string] {
		nb++
		if nb < 5 {
			return poll.Pending[string]()
		}
		return poll.Ready("b")
	})

	va, vb := poll.Run2(a, b)
	if va != 2 || vb != "b" {
		t.Fatalf("got (%d, %q), want (2, %q)", va, vb, "b")
	}
}
