// SPDX-License-Identifier: EPL-2.0

// Package session models a single audio editor:
//
//	Empty -> Decoding -> Ready(buffer, full region) -> Ready(buffer, region)
//	Decoding -> Error (first import failed)
//	any -> Empty on Reset
//
// Each Import bumps a generation counter. A decode result is applied only if
// its generation is still current, so a slow earlier import can never
// overwrite a newer one. A failed decode leaves a previously decoded buffer
// and its region in place.
package session
