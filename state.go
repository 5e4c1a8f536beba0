// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// State effect.
// get/put operations interpreted in state-passing style: the handler's
// output carrier is a [Transition] — a function from the incoming state to
// (result, outgoing state) — composed through sequencing. No handler-owned
// mutable cell exists; the state a clause observes is exactly the state the
// enclosing application supplies.

// Effect names of the state operations.
const (
	OpGet = "get"
	OpPut = "put"
)

// Get builds the operation that reads the current state of type S.
func Get[S any]() Prog[S] {
	return Perform[S](OpGet)
}

// Put builds the operation that replaces the current state.
func Put[S any](s S) Prog[Unit] {
	return Perform[Unit](OpPut, s)
}

// Modify reads the state, applies f, writes the result back, and returns
// the new state. Derived from Get and Put.
func Modify[S any](f func(S) S) Prog[S] {
	return Bind(Get[S](), func(s S) Prog[S] {
		next := f(s)
		return Then[Unit, S](Put(next), Pure(next))
	})
}

// Transition is the state handler's output carrier: a function from the
// incoming state to the result and the outgoing state.
type Transition[S, A any] func(S) (A, S)

// StateHandler creates the state-passing handler.
//
// The get clause answers its continuation with the state the transition is
// eventually applied to; the put clause discards the incoming state in
// favor of the operation's argument. Both therefore evaluate their
// continuation lazily, inside the returned transition, which requires the
// state operations to be the innermost unhandled layer: a foreign
// operation remaining in a continuation's subtree surfaces as
// [*UnhandledOpError] when the transition runs (stack any other handler
// inside the state handler, not outside it).
func StateHandler[S, A any]() Handler[A, Transition[S, A]] {
	table := map[string]Clause[Transition[S, A]]{
		OpGet: func(_ []Erased, resume func(Answer) Prog[Transition[S, A]]) Prog[Transition[S, A]] {
			return Pure[Transition[S, A]](func(s S) (A, S) {
				return RunPure[Transition[S, A]](resume(s))(s)
			})
		},
		OpPut: func(args []Erased, resume func(Answer) Prog[Transition[S, A]]) Prog[Transition[S, A]] {
			next := args[0].(S)
			return Pure[Transition[S, A]](func(S) (A, S) {
				return RunPure[Transition[S, A]](resume(nil))(next)
			})
		},
	}
	ret := func(a A) Prog[Transition[S, A]] {
		return Pure[Transition[S, A]](func(s S) (A, S) { return a, s })
	}
	return NewHandler(table, ret)
}

// RunState runs a stateful computation from the initial state and returns
// the result and the final state.
func RunState[S, A any](initial S, p Prog[A]) (v A, s S, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(*UnhandledOpError)
		if !ok {
			panic(r)
		}
		var zeroV A
		v, s, err = zeroV, initial, e
	}()
	h := StateHandler[S, A]()
	t, err := Run[Transition[S, A]](h.Handle(p))
	if err != nil {
		return v, initial, err
	}
	v, s = t(initial)
	return v, s, nil
}

// EvalState runs a stateful computation and returns only the result.
func EvalState[S, A any](initial S, p Prog[A]) (A, error) {
	v, _, err := RunState[S, A](initial, p)
	return v, err
}

// ExecState runs a stateful computation and returns only the final state.
func ExecState[S, A any](initial S, p Prog[A]) (S, error) {
	_, s, err := RunState[S, A](initial, p)
	return s, err
}
