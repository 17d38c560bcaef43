// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"errors"
	"fmt"
)

// ErrTooLarge is wrapped by a FetchError when the asset exceeds the read limit.
var ErrTooLarge = errors.New("asset exceeds size limit")

// FetchError reports that an asset's bytes could not be obtained at all.
// It is distinct from a decode failure: nothing was read that could be
// judged as audio.
type FetchError struct {
	Name string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %q: %v", e.Name, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
