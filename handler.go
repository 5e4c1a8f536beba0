// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Handler is the operation tree interpreter.
// A handler is stateless data: a table of per-name clauses plus an optional
// leaf transform. All state needed during evaluation is either threaded
// explicitly (the state effect) or captured inside closures built by the
// clauses themselves.

// Clause is one per-effect implementation in a handler table.
// It receives the operation's arguments and a continuation that evaluates
// the rest of the program under the same handler. The clause decides how
// many times to invoke the continuation: zero (abandon), once (normal
// resumption), or many (branching, replication). It also decides the order;
// the runtime imposes no ordering beyond the clause's own calls.
type Clause[R any] func(args []Erased, resume func(Answer) Prog[R]) Prog[R]

// Handler interprets one layer of operations in a Prog[A], producing a
// Prog[R]. The output is itself a tree so handlers stack: operations whose
// name is absent from Table are forwarded verbatim for an enclosing handler
// to catch, with only the subtree behind them pre-evaluated.
type Handler[A, R any] struct {
	// Table maps effect names to their implementations.
	Table map[string]Clause[R]

	// Return transforms leaf values into the output carrier.
	// A nil Return is the identity transform: the leaf value is re-wrapped
	// unchanged, which requires R and A to coincide at runtime.
	Return func(A) Prog[R]
}

// NewHandler builds a handler from a clause table and an optional leaf
// transform (nil for identity).
func NewHandler[A, R any](table map[string]Clause[R], ret func(A) Prog[R]) Handler[A, R] {
	return Handler[A, R]{Table: table, Return: ret}
}

// Handle folds the handler over a tree.
//
// Leaves go through Return. Nodes with a matching clause are dispatched with
// the continuation func(v) { Handle(Resume(v)) }; unmatched nodes are rebuilt with
// that same continuation so the operation survives for an outer handler.
// Stacking an inner handler that lacks an effect under an outer one that
// defines it is observably identical to running the outer handler alone.
//
// Recursion depth follows the longest chain of sequentially dependent
// continuation invocations, not tree size.
func (h Handler[A, R]) Handle(p Prog[A]) Prog[R] {
	switch t := p.(type) {
	case Leaf[A]:
		if h.Return != nil {
			return h.Return(t.Value)
		}
		return leafResume[R](Erased(t.Value))
	case *Node[A]:
		resume := func(v Answer) Prog[R] {
			return h.Handle(t.Resume(v))
		}
		if clause, ok := h.Table[t.Name]; ok {
			return clause(t.Args, resume)
		}
		return &Node[R]{Name: t.Name, Args: t.Args, Resume: resume}
	default:
		panic("freer: unknown tree variant")
	}
}
