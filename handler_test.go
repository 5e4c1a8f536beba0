// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/freer"
)

// supplyHandler answers every "supply" operation with the fixed value n.
func supplyHandler[A any](n int) freer.Handler[A, A] {
	table := map[string]freer.Clause[A]{
		"supply": func(_ []freer.Erased, resume func(freer.Answer) freer.Prog[A]) freer.Prog[A] {
			return resume(n)
		},
	}
	return freer.NewHandler[A](table, nil)
}

func TestHandleDispatchesByName(t *testing.T) {
	p := freer.Map(freer.Perform[int]("supply"), func(x int) int { return x * 2 })
	h := supplyHandler[int](21)
	got, err := freer.Run(h.Handle(p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestHandleLeafWithoutReturn(t *testing.T) {
	h := supplyHandler[string](0)
	got, err := freer.Run(h.Handle(freer.Pure("through")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "through" {
		t.Fatalf("got %q, want %q", got, "through")
	}
}

func TestHandleReturnTransform(t *testing.T) {
	h := freer.NewHandler(map[string]freer.Clause[string]{}, func(n int) freer.Prog[string] {
		if n > 0 {
			return freer.Pure("positive")
		}
		return freer.Pure("non-positive")
	})
	got, err := freer.Run(h.Handle(freer.Pure(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "positive" {
		t.Fatalf("got %q, want %q", got, "positive")
	}
}

// An operation whose name no handler claims must surface as an
// UnhandledOpError naming it, never as a silent partial value.
func TestUnhandledOperationSurfaces(t *testing.T) {
	p := freer.Perform[int]("frobnicate")
	h := supplyHandler[int](1)
	_, err := freer.Run(h.Handle(p))
	var ue *freer.UnhandledOpError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want UnhandledOpError", err)
	}
	if ue.Name != "frobnicate" {
		t.Fatalf("got name %q, want %q", ue.Name, "frobnicate")
	}
}

func TestRunPurePanicsOnResidualOperation(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		ue, ok := r.(*freer.UnhandledOpError)
		if !ok || ue.Name != "frobnicate" {
			t.Fatalf("got %v, want UnhandledOpError(frobnicate)", r)
		}
	}()
	freer.RunPure(freer.Perform[int]("frobnicate"))
}

// An unmatched operation is forwarded verbatim: same name, same args, with
// only the subtree behind it pre-evaluated under the inner handler.
func TestUnmatchedOperationForwarded(t *testing.T) {
	p := freer.Bind(freer.Ask[int](), func(env int) freer.Prog[int] {
		return freer.Then(freer.Print("seen"), freer.Pure(env*2))
	})
	h, lines := freer.OutputHandler[int]()
	residual := h.Handle(p)

	node, ok := residual.(*freer.Node[int])
	if !ok {
		t.Fatalf("got %T, want *Node[int]", residual)
	}
	if node.Name != freer.OpAsk {
		t.Fatalf("got name %q, want %q", node.Name, freer.OpAsk)
	}

	got, err := freer.RunReader(21, residual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if !slices.Equal(lines(), []string{"seen"}) {
		t.Fatalf("got lines %v, want [seen]", lines())
	}
}

// Stacking inner-then-outer over a program whose effect only the outer
// handler knows must be observably identical to running the outer handler
// alone.
func TestStackingTransparency(t *testing.T) {
	p := freer.Map(freer.Ask[int](), func(env int) int { return env + 1 })

	direct, err := freer.RunReader(10, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner := supplyHandler[int](0) // knows nothing about ask
	stacked, err := freer.RunReader(10, inner.Handle(p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stacked != direct {
		t.Fatalf("got %d, want %d", stacked, direct)
	}
}

// A clause may abandon its continuation entirely.
func TestClauseZeroResumptions(t *testing.T) {
	p := freer.Map(freer.Perform[int]("abort"), func(int) int { return 1 })
	h := freer.NewHandler(map[string]freer.Clause[int]{
		"abort": func(_ []freer.Erased, _ func(freer.Answer) freer.Prog[int]) freer.Prog[int] {
			return freer.Pure(-1)
		},
	}, nil)
	got, err := freer.Run(h.Handle(p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

// A clause may resume many times; each resumption is independent.
func TestClauseManyResumptions(t *testing.T) {
	p := freer.Map(freer.Perform[int]("each"), func(x int) int { return x * x })
	var results []int
	h := freer.NewHandler(map[string]freer.Clause[int]{
		"each": func(_ []freer.Erased, resume func(freer.Answer) freer.Prog[int]) freer.Prog[int] {
			var last freer.Prog[int]
			for _, v := range []int{1, 2, 3} {
				last = resume(v)
				results = append(results, freer.RunPure(last))
			}
			return last
		},
	}, nil)
	got, err := freer.Run(h.Handle(p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if !slices.Equal(results, []int{1, 4, 9}) {
		t.Fatalf("got %v, want [1 4 9]", results)
	}
}
