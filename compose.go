// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Derived combinators built from Bind.
// These cover the common multi-tree composition shapes so call sites do not
// hand-roll nested Bind chains.

// Seq sequences several trees left to right, keeping only the last result.
// Seq() with no arguments is the zero-value leaf.
func Seq[A any](ps ...Prog[A]) Prog[A] {
	if len(ps) == 0 {
		return Leaf[A]{}
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Then[A, A](out, p)
	}
	return out
}

// Collect sequences trees left to right and gathers every result into a
// slice in the same order.
func Collect[A any](ps []Prog[A]) Prog[[]A] {
	out := Pure(make([]A, 0, len(ps)))
	for _, p := range ps {
		next := p
		out = Bind(out, func(acc []A) Prog[[]A] {
			return Map(next, func(a A) []A {
				// Fresh backing array per resumption: the same prefix may
				// be extended along multiple handler branches.
				res := make([]A, len(acc), len(acc)+1)
				copy(res, acc)
				return append(res, a)
			})
		})
	}
	return out
}

// Ap applies a tree-valued function to a tree-valued argument,
// sequencing the function tree before the argument tree.
func Ap[A, B any](pf Prog[func(A) B], pa Prog[A]) Prog[B] {
	return Bind(pf, func(f func(A) B) Prog[B] {
		return Map(pa, f)
	})
}
