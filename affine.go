// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import (
	"sync/atomic"
)

// Affine wraps a resumption callback with one-shot enforcement.
// Tree continuations are multi-shot by construction, but a resumption
// handed to an external environment (the async effect's registrar) must
// fire at most once per registration; Affine makes reuse a loud failure
// instead of a duplicated evaluation.
type Affine struct {
	used   atomic.Uintptr
	resume func(Answer)
}

// Once creates an affine resumption from a callback.
// The returned Affine can be resumed at most once.
func Once(resume func(Answer)) *Affine {
	return &Affine{resume: resume}
}

// Resume invokes the callback with the given answer.
// Panics if the resumption has already been used.
func (a *Affine) Resume(v Answer) {
	if a.used.Add(1) != 1 {
		panic("freer: affine resumption used twice")
	}
	a.resume(v)
}

// TryResume attempts to invoke the callback.
// Returns true on success, or false if already used.
func (a *Affine) TryResume(v Answer) bool {
	if a.used.Add(1) != 1 {
		return false
	}
	a.resume(v)
	return true
}

// Discard marks the resumption as used without invoking it.
func (a *Affine) Discard() {
	a.used.Store(1)
}
