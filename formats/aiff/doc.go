// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and uncompressed AIFC files with
// github.com/go-audio/aiff.
//
// Integer samples of 8, 16, 24 or 32 bits are normalized to [-1.0, 1.0).
// Compressed AIFC payloads are not supported.
package aiff
