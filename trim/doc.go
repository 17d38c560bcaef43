// SPDX-License-Identifier: EPL-2.0

// Package trim cuts a time region out of a decoded buffer and encodes it as
// a canonical mono 16-bit PCM WAV file.
//
// Region bounds in seconds map to frames with floor(seconds * rate), both
// clamped to the buffer. Only channel 0 is exported. Samples are clamped to
// [-1, 1] and scaled by 32767 rounding half away from zero, so 1.0 becomes
// 32767 and -1.0 becomes -32767.
package trim
