// SPDX-License-Identifier: EPL-2.0

// Package predict talks to the emotion recognition backend.
//
// A clip is posted as multipart/form-data to {base}/api/predict in the
// "audio" field. The backend replies with JSON:
//
//	{"emotion": "happy", "confidence": 0.81, "probabilities": {"happy": 0.81, ...}}
//
// or {"error": "..."} with a non-200 status, surfaced as *APIError.
package predict
