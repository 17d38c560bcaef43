// SPDX-License-Identifier: EPL-2.0

// Package asset holds encoded audio as it arrives from a file, an upload or
// a recording, before anything has been decoded.
//
// Failures to obtain the bytes are reported as *FetchError so callers can
// tell "could not read file" apart from "not audio".
package asset
