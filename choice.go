// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Nondeterministic choice effect.
// A binary decide operation answered with one of its two candidates, plus a
// nullary fail dead end whose continuation is never invoked. A search
// strategy is just a handler: the exhaustive strategy resumes with both
// candidates non-exclusively and combines the results; the first-success
// strategy resumes left first and falls back to the right candidate when
// the left evaluation reports a dead end.

// Effect names of the choice operations.
const (
	OpDecide = "decide"
	OpFail   = "fail"
)

// Choose builds the operation that nondeterministically picks one of two
// candidates; the handling strategy decides which, or both.
func Choose[T any](a, b T) Prog[T] {
	return Perform[T](OpDecide, a, b)
}

// Fail builds the dead-end operation. No handler resumes it; the nearest
// strategy decides whether it aborts the search or just one branch.
func Fail[A any]() Prog[A] {
	return Perform[A](OpFail)
}

// BestHandler creates the exhaustive strategy: every decide resumes with
// both candidates, left then right, and better combines the two outcomes.
// The two resumptions are independent evaluations of the same continuation.
func BestHandler[A any](better func(a, b A) A) Handler[A, A] {
	table := map[string]Clause[A]{
		OpDecide: func(args []Erased, resume func(Answer) Prog[A]) Prog[A] {
			left := resume(args[0])
			right := resume(args[1])
			return Bind(left, func(x A) Prog[A] {
				return Map(right, func(y A) A { return better(x, y) })
			})
		},
	}
	return NewHandler[A](table, nil)
}

// FirstHandler creates the depth-first backtracking strategy. Results are
// carried as Either[Unit, A]: Left marks a dead end, Right a success. A
// decide commits to the left candidate and retries with the right one only
// if the left subtree failed; fail abandons its continuation outright.
func FirstHandler[A any]() Handler[A, Either[Unit, A]] {
	table := map[string]Clause[Either[Unit, A]]{
		OpFail: func(_ []Erased, _ func(Answer) Prog[Either[Unit, A]]) Prog[Either[Unit, A]] {
			return Pure(Left[Unit, A](Unit{}))
		},
		OpDecide: func(args []Erased, resume func(Answer) Prog[Either[Unit, A]]) Prog[Either[Unit, A]] {
			return Bind(resume(args[0]), func(r Either[Unit, A]) Prog[Either[Unit, A]] {
				if r.IsRight() {
					return Pure(r)
				}
				return resume(args[1])
			})
		},
	}
	ret := func(a A) Prog[Either[Unit, A]] {
		return Pure(Right[Unit](a))
	}
	return NewHandler(table, ret)
}

// RunBest runs a choosing computation under the exhaustive strategy.
func RunBest[A any](p Prog[A], better func(a, b A) A) (A, error) {
	h := BestHandler(better)
	return Run[A](h.Handle(p))
}

// RunFirst runs a choosing computation under the backtracking strategy.
// Left means every branch dead-ended.
func RunFirst[A any](p Prog[A]) (Either[Unit, A], error) {
	h := FirstHandler[A]()
	return Run[Either[Unit, A]](h.Handle(p))
}
