// SPDX-License-Identifier: EPL-2.0

// Package opus decodes Ogg Opus audio, the container browsers use for
// MediaRecorder output.
//
// The identification header is read with pion's oggreader; decoding runs
// through libopusfile via gopkg.in/hraban/opus.v2, so this package needs
// cgo and the libopus/libopusfile development headers. Output is always
// 48 kHz interleaved float32.
package opus
