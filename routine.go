// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "slices"

// Structured program builder.
//
// Do lets an operation tree be written as an ordinary sequential routine
// that suspends at marked points instead of a chain of Bind closures. The
// host offers no multi-shot suspension primitive, so multi-shot resumption
// is obtained by replay: to resume past a point, the body is restarted from
// the beginning and fed the recorded sequence of prior answers plus one new
// answer. The same code path serves first execution and every replay.

// Await runs a sub-program from inside a [Do] body and blocks the body
// until the handling environment supplies its answer. The sub-program is
// type-erased; [Call] is the typed convenience wrapper.
type Await func(sub Prog[Erased]) Answer

// Call awaits a sub-program and recovers its typed result
// (nil answers become the zero value, as in [As]).
func Call[T any](await Await, sub Prog[T]) T {
	return As[T](await(Erase[T](sub)))
}

// Do translates a sequential routine into an operation tree.
//
// The body runs until its first Await; the awaited sub-program becomes the
// root of the result and the rest of the body is grafted onto its leaves
// via [Bind], re-derived by replay whenever a handler resumes.
//
// Replay safety is the load-bearing precondition: everything observable the
// body does before an Await must be identical on every rerun with the same
// answer prefix. Reading clocks, draining channels, or advancing shared
// counters before an Await breaks the multi-shot guarantee silently — the
// runtime cannot detect the violation. Effects belong in awaited
// sub-programs, not in the body between suspension points.
//
// A body that never awaits yields a Leaf directly. Awaiting a tree that was
// itself built by Do unfolds recursively.
func Do[A any](body func(await Await) A) Prog[A] {
	return replay(body, nil)
}

// suspendSignal aborts a body run at its first unanswered Await,
// carrying the requested sub-program out through the recover in replay.
type suspendSignal struct {
	sub Prog[Erased]
}

// replay runs body feeding it the recorded answer prefix. If the body
// completes within the prefix the result is a Leaf; otherwise the first
// unanswered Await becomes the root of the returned tree, with each answer
// branch replaying from a cloned history so branches never share state.
func replay[A any](body func(Await) A, history []Answer) (out Prog[A]) {
	idx := 0
	await := func(sub Prog[Erased]) Answer {
		if idx < len(history) {
			a := history[idx]
			idx++
			return a
		}
		panic(&suspendSignal{sub: sub})
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s, ok := r.(*suspendSignal)
		if !ok {
			panic(r)
		}
		out = Bind(s.sub, func(a Erased) Prog[A] {
			return replay(body, append(slices.Clone(history), a))
		})
	}()
	return Pure(body(await))
}
