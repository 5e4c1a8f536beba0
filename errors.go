// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "strconv"

// UnhandledOpError reports an operation that reached the outermost
// evaluation with no handler claiming its name. This is a programmer error
// (a missing handler), surfaced distinctly so it is never mistaken for a
// normal result.
type UnhandledOpError struct {
	// Name is the effect name no handler claimed.
	Name string
}

// Error implements the error interface.
func (e *UnhandledOpError) Error() string {
	return "freer: unhandled operation " + strconv.Quote(e.Name)
}
