// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

// ErrNotReady is returned by region and export calls outside StateReady.
var ErrNotReady = errors.New("session has no decoded audio")
