// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Erased represents a type-erased value flowing between operations and
// handlers. Operation arguments and answers cross the dispatch boundary as
// Erased; concrete types are recovered via type assertions at the boundary.
type Erased = any

// Answer is the type-erased value an environment supplies when resuming a
// suspended operation.
type Answer = any

// Prog is an operation tree describing a computation that produces a value
// of type A. A Prog is pure data: building one never performs any effect.
// Performing effects is entirely the job of whichever [Handler] later
// interprets the tree.
//
// The two variants are [Leaf] (a terminal value) and [Node] (a named,
// parameterized operation with a continuation). Both are immutable after
// construction and safe to share: a Node's Resume may be invoked zero, one,
// or many times, and each invocation independently produces a fresh subtree.
type Prog[A any] interface {
	prog() // unexported marker method
}

// Leaf is a completed computation carrying a plain value.
// The evaluator returns the value as the result; no effect remains.
type Leaf[A any] struct {
	Value A
}

func (Leaf[A]) prog() {}

// Node is a suspended operation. Name identifies the effect for handler
// dispatch, Args carries the invocation arguments in order, and Resume maps
// every possible answer to the rest of the program.
//
// Resume must be total and must not mutate the node; this is what makes
// multi-shot resumption sound.
type Node[A any] struct {
	// Name identifies the effect for handler table dispatch.
	Name string

	// Args holds the operation arguments in invocation order.
	Args []Erased

	// Resume maps the environment's answer to the rest of the program.
	Resume func(Answer) Prog[A]
}

func (*Node[A]) prog() {}

// Pure lifts a plain value into an operation tree.
func Pure[A any](a A) Prog[A] {
	return Leaf[A]{Value: a}
}

// leafResume is the default continuation for [Perform]: it returns the
// answer itself as the result of the operation.
//
// Nil completion convention: a nil answer resumes to the zero value of A.
// Computations whose result type is a pointer or interface therefore cannot
// use nil as a meaningful answer; wrap such answers in a sum type (e.g.
// [Either]) if the distinction matters.
func leafResume[A any](v Answer) Prog[A] {
	if v == nil {
		return Leaf[A]{}
	}
	return Leaf[A]{Value: v.(A)}
}

// Perform builds a bare operation node: the operation's result is whatever
// answer the handling environment supplies (the identity-leaf continuation,
// with the nil-as-zero convention of [leafResume]).
func Perform[A any](name string, args ...Erased) Prog[A] {
	return &Node[A]{Name: name, Args: args, Resume: leafResume[A]}
}

// Operation builds an operation node with an explicit continuation.
// Most callers want [Perform] composed with [Bind]; Operation exists for
// constructing trees directly.
func Operation[A any](name string, args []Erased, resume func(Answer) Prog[A]) Prog[A] {
	if resume == nil {
		resume = leafResume[A]
	}
	return &Node[A]{Name: name, Args: args, Resume: resume}
}

// Erase forgets the result type of a tree, producing a Prog[Erased].
// Heterogeneous composition points (notably [Await] in structured routines)
// accept erased trees; [As] recovers the concrete type on the other side.
func Erase[A any](p Prog[A]) Prog[Erased] {
	switch t := p.(type) {
	case Leaf[A]:
		return Leaf[Erased]{Value: t.Value}
	case *Node[A]:
		return &Node[Erased]{
			Name: t.Name,
			Args: t.Args,
			Resume: func(v Answer) Prog[Erased] {
				return Erase[A](t.Resume(v))
			},
		}
	default:
		panic("freer: unknown tree variant")
	}
}

// As recovers a concrete value from an [Answer].
// A nil answer yields the zero value, matching [leafResume].
func As[T any](v Answer) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
