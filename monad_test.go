// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"testing"

	"code.hybscloud.com/freer"
)

func TestBindLeaf(t *testing.T) {
	p := freer.Bind(freer.Pure(10), func(x int) freer.Prog[string] {
		if x == 10 {
			return freer.Pure("ten")
		}
		return freer.Pure("other")
	})
	got := freer.RunPure(p)
	if got != "ten" {
		t.Fatalf("got %q, want %q", got, "ten")
	}
}

func TestBindPreservesNode(t *testing.T) {
	p := freer.Bind(freer.Perform[int]("supply", 1, 2), func(x int) freer.Prog[int] {
		return freer.Pure(x + 100)
	})
	node, ok := p.(*freer.Node[int])
	if !ok {
		t.Fatalf("got %T, want *Node[int]", p)
	}
	if node.Name != "supply" {
		t.Fatalf("got name %q, want %q", node.Name, "supply")
	}
	if len(node.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(node.Args))
	}
	leaf := node.Resume(5).(freer.Leaf[int])
	if leaf.Value != 105 {
		t.Fatalf("got %d, want 105", leaf.Value)
	}
}

func TestMap(t *testing.T) {
	p := freer.Map(freer.Perform[int]("supply"), func(x int) string {
		if x > 0 {
			return "pos"
		}
		return "neg"
	})
	node := p.(*freer.Node[string])
	leaf := node.Resume(3).(freer.Leaf[string])
	if leaf.Value != "pos" {
		t.Fatalf("got %q, want %q", leaf.Value, "pos")
	}
}

func TestThenDiscardsFirstResult(t *testing.T) {
	p := freer.Then(freer.Pure("ignored"), freer.Pure(7))
	if got := freer.RunPure(p); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestThenKeepsNodeChain(t *testing.T) {
	p := freer.Then(freer.Perform[freer.Unit]("first"), freer.Perform[int]("second"))
	node := p.(*freer.Node[int])
	if node.Name != "first" {
		t.Fatalf("got name %q, want %q", node.Name, "first")
	}
	inner := node.Resume(nil).(*freer.Node[int])
	if inner.Name != "second" {
		t.Fatalf("got name %q, want %q", inner.Name, "second")
	}
}
