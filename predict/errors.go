// SPDX-License-Identifier: EPL-2.0

package predict

import (
	"errors"
	"fmt"
)

var (
	ErrNoFilename      = errors.New("prediction upload needs a file name")
	ErrInvalidResponse = errors.New("invalid prediction response")
)

// APIError is a non-200 answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("predict: status %d: %s", e.Status, e.Message)
}
