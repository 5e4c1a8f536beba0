// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package freer provides algebraic effects over explicit operation trees
// in Go.
//
// The core type [Prog] represents a program as first-order data: a [Leaf]
// carrying a final value, or a [Node] naming an effect, its arguments, and
// a continuation from the environment's answer to the rest of the program.
// Building a tree never performs an effect; a [Handler] interprets one
// layer of operations, and handlers stack because a handler's output is
// itself a tree with unclaimed operations forwarded intact.
//
// # Design Philosophy
//
// freer provides:
//   - Programs as immutable data, evaluated by interpretation rather than
//     by the host call stack
//   - Multi-shot continuations: a Node's Resume may be invoked zero, one,
//     or many times, each invocation independent
//   - Dynamic dispatch by effect name, so effect vocabularies stay open
//     and third-party operations flow through unknown handlers untouched
//
// # Operation Trees
//
//   - [Prog]: sealed tree interface over [Leaf] and [Node]
//   - [Pure]: lift a plain value
//   - [Perform]: build a bare operation answered by the environment
//   - [Operation]: build an operation with an explicit continuation
//   - [Erase], [As]: cross the type-erasure boundary
//
// # Sequencing
//
// Minimal monad operations:
//
//   - [Pure]: unit
//   - [Bind]: graft a continuation onto every leaf
//
// Derived operations:
//
//   - [Map]: transform the result — equivalent to Bind(p, func(a) Pure(f(a)))
//   - [Then]: sequence, discarding the first result
//   - [Seq]: sequence many trees, keeping the last result
//   - [Collect]: sequence many trees, gathering all results in order
//   - [Ap]: apply a tree-valued function to a tree-valued argument
//
// # Handlers
//
//   - [Clause]: one per-effect implementation; decides how many times and
//     in what order its continuation runs
//   - [Handler], [NewHandler]: clause table plus optional leaf transform
//   - [Handler.Handle]: fold a handler over a tree, forwarding unclaimed
//     operations for an enclosing handler
//   - [Run]: extract the final value, reporting [*UnhandledOpError] when
//     an operation reached the top with no handler claiming it
//   - [RunPure]: extraction that panics on residual operations
//
// # Structured Routines
//
// [Do] converts a sequentially written routine into an operation tree. The
// routine suspends at [Await] points, each supplying a sub-tree; multi-shot
// resumption is realized by deterministic replay from the recorded answer
// history. Replay safety — no observable side effect before a suspension
// point may differ across reruns — is the documented precondition; see the
// [Do] doc comment.
//
//   - [Do]: build a tree from a sequential routine
//   - [Await], [Call]: suspend on a sub-tree, untyped and typed
//
// # Standard Effects
//
// Output, act-before-resume or resume-before-act:
//
//   - [Print], [PrintAll]: effect constructors
//   - [OutputHandler], [ReverseOutputHandler]: natural and reversed order
//   - [RunOutput], [ExecOutput]: run with output collection
//
// Reader for a fixed environment:
//
//   - [Ask]: effect constructor
//   - [ReaderHandler], [RunReader]
//
// State in state-passing style — the handler's carrier is a [Transition]
// from old state to (value, new state), composed by sequencing, never a
// hidden mutable cell:
//
//   - [Get], [Put], [Modify]: effect constructors
//   - [StateHandler]: function-carrier handler
//   - [RunState], [EvalState], [ExecState]
//
// Nondeterministic choice and backtracking:
//
//   - [Choose], [Fail]: effect constructors
//   - [BestHandler], [RunBest]: resume both branches, combine results
//   - [FirstHandler], [RunFirst]: depth-first search with dead-end retry
//
// Cooperative concurrency over the callback suspension effect:
//
//   - [Async], [Halt]: effect constructors
//   - [Scheduler]: single-owner FIFO run queue plus timer list
//   - [Scheduler.Yield], [Scheduler.Sleep], [Scheduler.Fork]
//   - [AsyncHandler], [RunAsync]: non-blocking evaluation driven to
//     completion by [Scheduler.Drain]
//   - [Par]: fork/join of two flows, combined result delivered once
//
// # Affine Resumptions
//
// [Once] wraps an externally driven resumption callback with one-shot
// enforcement; reuse panics instead of silently duplicating evaluation.
//
// # Either Type
//
// [Either] represents failure (Left) or success (Right) and carries the
// backtracking strategy's results:
//
//   - [Left], [Right]: constructors
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft], [Either.GetRight]
//   - [MatchEither], [MapEither]
//
// # Example
//
//	prog := freer.Bind(freer.Choose(15, 30), func(x int) freer.Prog[int] {
//		return freer.Map(freer.Choose(5, 10), func(y int) int { return x - y })
//	})
//
//	best, err := freer.RunBest(prog, func(a, b int) int { return max(a, b) })
//	// best == 25
package freer
