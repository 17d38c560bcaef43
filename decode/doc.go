// SPDX-License-Identifier: EPL-2.0

// Package decode is the bridge between encoded assets and in-memory PCM.
//
// An Adapter picks a format decoder by sniffing the asset's leading bytes,
// falling back to its declared MIME type, then drains the decoder into an
// audio.Buffer at the stream's native sample rate. No resampling happens
// here.
//
//	buf, err := decode.New().Decode(ctx, a)
//	var de *decode.DecodeError
//	if errors.As(err, &de) {
//		// unsupported or corrupt audio file
//	}
package decode
