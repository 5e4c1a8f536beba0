// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "time"

// Callback suspension effect.
// The async operation is the system's sole adapter boundary to the outside
// world and its sole source of genuine external asynchrony: its handler
// hands the continuation to a caller-supplied registrar and returns without
// blocking, so evaluation control comes back to the caller while the
// environment (typically a [Scheduler] task or timer) resumes later. Every
// other effect in this package resolves synchronously within one Handle
// call. Cooperative fork/join concurrency is built entirely on top of it.

// Effect names of the concurrency operations.
const (
	OpAsync = "async"
	OpHalt  = "halt"
)

// Registrar receives the resumption callback of one async operation.
// The environment may invoke the callback zero or more times; each
// invocation runs an independent evaluation of the rest of the program
// ([Scheduler.Fork] invokes it twice). Wrap the callback with [Once] when
// a second invocation would be a bug, as the timer constructors do.
type Registrar = func(resume func(Answer))

// Async builds an operation whose answer is supplied by the external
// environment through register.
func Async[A any](register Registrar) Prog[A] {
	return Perform[A](OpAsync, register)
}

// Halt builds the zero-continuation dead end of the concurrency effect.
// A forked branch performs it to end its flow without delivering a result.
func Halt[A any]() Prog[A] {
	return Perform[A](OpHalt)
}

// Yield builds an operation that suspends the current flow and reschedules
// it at the back of the run queue, letting other queued flows run first.
func (s *Scheduler) Yield() Prog[Unit] {
	return Async[Unit](func(resume func(Answer)) {
		k := Once(resume)
		s.Push(func() { k.Resume(nil) })
	})
}

// Sleep builds an operation that suspends the current flow for d.
// Flows sleeping for equal durations resume in submission order.
func (s *Scheduler) Sleep(d time.Duration) Prog[Unit] {
	return Async[Unit](func(resume func(Answer)) {
		k := Once(resume)
		s.After(d, func() { k.Resume(nil) })
	})
}

// Fork builds the operation that splits the current flow in two. The
// continuing flow receives false, the forked flow true; both are queued and
// proceed independently from the same suspension point.
func (s *Scheduler) Fork() Prog[bool] {
	return Async[bool](func(resume func(Answer)) {
		s.Push(func() { resume(false) })
		s.Push(func() { resume(true) })
	})
}

// AsyncHandler creates the handler for async and halt. Each completed flow
// passes its final value to done (nil to ignore); the handler's carrier is
// Unit because results leave through the callback, not the return path.
//
// A resumption that runs into an operation no handler claims panics with
// [*UnhandledOpError]: by the time a callback fires there is no enclosing
// evaluation left to forward to.
func AsyncHandler[A any](done func(A)) Handler[A, Unit] {
	table := map[string]Clause[Unit]{
		OpAsync: func(args []Erased, resume func(Answer) Prog[Unit]) Prog[Unit] {
			register := args[0].(Registrar)
			register(func(v Answer) {
				RunPure[Unit](resume(v))
			})
			return Pure(Unit{})
		},
		OpHalt: func(_ []Erased, _ func(Answer) Prog[Unit]) Prog[Unit] {
			return Pure(Unit{})
		},
	}
	ret := func(a A) Prog[Unit] {
		if done != nil {
			done(a)
		}
		return Pure(Unit{})
	}
	return NewHandler(table, ret)
}

// RunAsync evaluates p under the async handler and drains the scheduler to
// completion. done observes the final value of every flow that runs to the
// end of the program (forked flows that do not [Halt] each deliver one).
func RunAsync[A any](s *Scheduler, p Prog[A], done func(A)) error {
	h := AsyncHandler(done)
	if _, err := Run[Unit](h.Handle(p)); err != nil {
		return err
	}
	s.Drain()
	return nil
}

// Par runs two programs as cooperatively concurrent flows and produces both
// results once both have completed. Built from Fork and Halt: whichever
// flow finishes first finds the shared cell still missing the other result
// and halts; the later one completes the pair. Exactly one flow delivers.
//
// The cell writes inside the routine body are replay-idempotent: every
// replay of a flow stores the same value, so the replay-safety precondition
// of [Do] holds.
func Par[A, B any](s *Scheduler, pa Prog[A], pb Prog[B]) Prog[Pair[A, B]] {
	type cell struct {
		a *A
		b *B
	}
	c := new(cell)
	return Do(func(await Await) Pair[A, B] {
		if forked := Call[bool](await, s.Fork()); forked {
			b := Call[B](await, pb)
			c.b = &b
			if c.a == nil {
				Call[Unit](await, Halt[Unit]())
			}
		} else {
			a := Call[A](await, pa)
			c.a = &a
			if c.b == nil {
				Call[Unit](await, Halt[Unit]())
			}
		}
		return Pair[A, B]{Fst: *c.a, Snd: *c.b}
	})
}
