// Copyright 2026 Hedera Mirror Node Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hapi

// bytesCopyThreshold is the largest buffer that is always defensively
// copied. Below this size the copy is cheaper than the aliasing risk.
const bytesCopyThreshold = 64

// emptyBytes is the shared zero-length value returned for empty input so
// the hot decode path never allocates for it
var emptyBytes = []byte{}

// BytesValue extracts a stable byte slice from a decoded buffer. The
// decode path runs at high volume, so large buffers uniquely owned by the
// decoder are returned without copying. Buffers backed by a reusable
// staging area must pass pooled=true and are always copied, since their
// backing store is rewritten by later decodes.
func BytesValue(buf []byte, pooled bool) []byte {
	switch {
	case len(buf) == 0:
		return emptyBytes
	case pooled || len(buf) <= bytesCopyThreshold:
		out := make([]byte, len(buf))
		copy(out, buf)
		return out
	default:
		return buf
	}
}
