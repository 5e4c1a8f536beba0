// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Monad operations for operation trees.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate Leaf allocations.

// Bind grafts a continuation-producing function onto every leaf of a tree.
// A Leaf(v) becomes f(v); a Node keeps its name and arguments and has f
// composed onto its continuation. Every Node along the way is preserved,
// only the subtree behind it changes.
//
// Bind satisfies the monad laws for every tree shape, including trees whose
// continuations are resumed more than once:
//
//	Bind(Pure(a), f)    ≡ f(a)
//	Bind(p, Pure)       ≡ p
//	Bind(Bind(p, f), g) ≡ Bind(p, func(a) { return Bind(f(a), g) })
func Bind[A, B any](p Prog[A], f func(A) Prog[B]) Prog[B] {
	switch t := p.(type) {
	case Leaf[A]:
		return f(t.Value)
	case *Node[A]:
		return &Node[B]{
			Name: t.Name,
			Args: t.Args,
			Resume: func(v Answer) Prog[B] {
				return Bind(t.Resume(v), f)
			},
		}
	default:
		panic("freer: unknown tree variant")
	}
}

// Map applies a pure function to the result of a tree.
//
// Allocation note: Map is equivalent to Bind(p, compose(Pure, f)) but
// builds the Leaf directly, making it the preferred choice when the
// transformation is pure (does not produce operations).
func Map[A, B any](p Prog[A], f func(A) B) Prog[B] {
	switch t := p.(type) {
	case Leaf[A]:
		return Leaf[B]{Value: f(t.Value)}
	case *Node[A]:
		return &Node[B]{
			Name: t.Name,
			Args: t.Args,
			Resume: func(v Answer) Prog[B] {
				return Map(t.Resume(v), f)
			},
		}
	default:
		panic("freer: unknown tree variant")
	}
}

// Then sequences two trees, discarding the first result.
// This is more efficient than Bind when the second computation
// does not depend on the first result.
func Then[A, B any](p Prog[A], next Prog[B]) Prog[B] {
	switch t := p.(type) {
	case Leaf[A]:
		return next
	case *Node[A]:
		return &Node[B]{
			Name: t.Name,
			Args: t.Args,
			Resume: func(v Answer) Prog[B] {
				return Then[A, B](t.Resume(v), next)
			},
		}
	default:
		panic("freer: unknown tree variant")
	}
}
