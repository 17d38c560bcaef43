// SPDX-License-Identifier: EPL-2.0

// Package audtrim cuts regions out of uploaded or recorded audio and exports
// them as canonical mono 16-bit PCM WAV files.
//
// The pieces live in sub-packages:
//
//   - asset: encoded bytes plus a type tag, with FetchError for read failures
//   - decode: format detection and decoding into an audio.Buffer
//   - trim: region to WAV export
//   - session: the editor state machine with last-writer-wins imports
//   - predict: client for the emotion recognition backend
//   - formats/*: WAV, MP3, Ogg Vorbis, Ogg Opus and AIFF decoders
//
// This package adds the few helpers that tie them together:
//
//	a, _ := asset.Open("voice.mp3", 0)
//	f, err := audtrim.TrimAsset(ctx, a, audio.Region{Start: 1, End: 4})
//	// f.Name == "trimmed-voice.mp3", f.Data is WAV
//
// ResampleToMono16 and ExportResampled condition a clip for consumers that
// expect a fixed sample rate.
package audtrim
