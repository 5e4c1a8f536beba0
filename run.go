// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Run extracts the final value from a fully handled tree.
// A residual Node means some handler stack failed to claim the operation;
// Run reports that as an [*UnhandledOpError] naming the effect.
func Run[A any](p Prog[A]) (A, error) {
	switch t := p.(type) {
	case Leaf[A]:
		return t.Value, nil
	case *Node[A]:
		var zero A
		return zero, &UnhandledOpError{Name: t.Name}
	default:
		panic("freer: unknown tree variant")
	}
}

// RunPure extracts the final value from a tree that must not contain
// operations. Panics with [*UnhandledOpError] if one remains; use [Run]
// when residual operations are a recoverable condition.
func RunPure[A any](p Prog[A]) A {
	v, err := Run[A](p)
	if err != nil {
		panic(err)
	}
	return v
}
