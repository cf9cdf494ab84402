// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/gantrylabs/gantry/pkg/types"
)

// ExitError carries an exit code out of a RunE handler. Execute inspects
// it after fang returns, so handlers never call os.Exit themselves - the
// wrapped target's code and the launcher's own failure codes both travel
// this way.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the underlying message, or the bare exit status when the
// exit is not itself an error (a target that chose to exit non-zero).
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
