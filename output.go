// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Output effect.
// A single print operation, interpreted by handlers that differ only in
// when they perform the visible action relative to resuming: acting first
// gives natural order, resuming first defers each action until the rest of
// the program has unwound, reversing the order. Both handlers are the same
// state machine over the core, which is the point.

// OpPrint is the effect name of the output operation.
const OpPrint = "print"

// Print builds the output operation for one line. The answer carries no
// information; the operation exists for its interpretation alone.
func Print(line string) Prog[Unit] {
	return Perform[Unit](OpPrint, line)
}

// PrintAll sequences one print per line.
func PrintAll(lines ...string) Prog[Unit] {
	ps := make([]Prog[Unit], len(lines))
	for i, line := range lines {
		ps[i] = Print(line)
	}
	return Seq(ps...)
}

// outputClause builds the print clause over a shared output slice.
// reversed selects resume-then-act dispatch.
//
// Ordering note: with reversed dispatch the action is recorded after the
// continuation's synchronous evaluation returns; operations left unhandled
// in the subtree are forwarded before that happens, so the reversal
// guarantee applies to programs this handler fully resolves.
func outputClause[R any](out *[]string, reversed bool) Clause[R] {
	return func(args []Erased, resume func(Answer) Prog[R]) Prog[R] {
		line := args[0].(string)
		if reversed {
			rest := resume(nil)
			*out = append(*out, line)
			return rest
		}
		*out = append(*out, line)
		return resume(nil)
	}
}

// OutputHandler creates a handler that records printed lines in program
// order. Returns the handler and a function to retrieve the output.
func OutputHandler[A any]() (Handler[A, A], func() []string) {
	var out []string
	table := map[string]Clause[A]{
		OpPrint: outputClause[A](&out, false),
	}
	return NewHandler[A](table, nil), func() []string { return out }
}

// ReverseOutputHandler creates a handler that resumes before acting, so
// lines are recorded in reverse program order. Returns the handler and a
// function to retrieve the output.
func ReverseOutputHandler[A any]() (Handler[A, A], func() []string) {
	var out []string
	table := map[string]Clause[A]{
		OpPrint: outputClause[A](&out, true),
	}
	return NewHandler[A](table, nil), func() []string { return out }
}

// RunOutput runs a printing computation in natural order and returns both
// the result and the printed lines.
func RunOutput[A any](p Prog[A]) (A, []string, error) {
	h, lines := OutputHandler[A]()
	v, err := Run[A](h.Handle(p))
	return v, lines(), err
}

// ExecOutput runs a printing computation and returns only the lines.
func ExecOutput[A any](p Prog[A]) ([]string, error) {
	_, lines, err := RunOutput[A](p)
	return lines, err
}
