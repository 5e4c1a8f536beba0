// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Reader effect.
// Read-only access to an environment through a single ask operation; the
// simplest possible clause, resuming exactly once with a fixed value.

// OpAsk is the effect name of the environment read operation.
const OpAsk = "ask"

// Ask builds the operation that reads the environment of type E.
func Ask[E any]() Prog[E] {
	return Perform[E](OpAsk)
}

// ReaderHandler creates a handler answering every ask with env.
func ReaderHandler[E, A any](env E) Handler[A, A] {
	table := map[string]Clause[A]{
		OpAsk: func(_ []Erased, resume func(Answer) Prog[A]) Prog[A] {
			return resume(env)
		},
	}
	return NewHandler[A](table, nil)
}

// RunReader runs a computation with the given environment.
func RunReader[E, A any](env E, p Prog[A]) (A, error) {
	h := ReaderHandler[E, A](env)
	return Run[A](h.Handle(p))
}
