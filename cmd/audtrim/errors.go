// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/ik5/audtrim/asset"
	"github.com/ik5/audtrim/decode"
	"github.com/ik5/audtrim/predict"
	"github.com/ik5/audtrim/trim"
)

// describe turns an error into the message a user sees, keeping the
// underlying cause for context.
func describe(err error) string {
	var (
		fetchErr  *asset.FetchError
		decodeErr *decode.DecodeError
		apiErr    *predict.APIError
	)

	switch {
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("could not read file: %v", err)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("unsupported or corrupt audio file: %v", err)
	case errors.Is(err, trim.ErrEmptyRegion):
		return fmt.Sprintf("selected region is empty: %v", err)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("prediction failed: %s", apiErr.Message)
	default:
		return err.Error()
	}
}
