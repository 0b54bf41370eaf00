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

import (
	"fmt"
	"math"
	"time"
)

const NanosPerSecond int64 = 1_000_000_000

// Timestamp is the network's second/nanosecond split representation of a
// point in time. Consensus ordering uses the composed nanosecond value.
type Timestamp struct {
	Seconds int64 `cbor:"1,keyasint,omitempty"`
	Nanos   int32 `cbor:"2,keyasint,omitempty"`
}

func NewTimestamp(seconds int64, nanos int32) Timestamp {
	return Timestamp{Seconds: seconds, Nanos: nanos}
}

// TimestampFromTime converts a time.Time into its wire representation
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{
		Seconds: t.Unix(),
		//nolint:gosec // Nanosecond() is always within [0, 1e9)
		Nanos: int32(t.Nanosecond()),
	}
}

func (t Timestamp) IsZero() bool {
	return t.Seconds == 0 && t.Nanos == 0
}

// Nanoseconds composes the timestamp into a nanoseconds-since-epoch value.
// An out-of-range result returns ErrTimestampOverflow: on a consensus
// timestamp this indicates corrupt input and is fatal upstream.
func (t Timestamp) Nanoseconds() (int64, error) {
	total, ok := composeNanos(t.Seconds, t.Nanos)
	if !ok {
		return 0, fmt.Errorf(
			"%w: seconds %d nanos %d",
			ErrTimestampOverflow,
			t.Seconds,
			t.Nanos,
		)
	}
	return total, nil
}

// NanosecondsMax is the saturating form of Nanoseconds. User-supplied
// absolute times (such as an entity expiration) clamp to the int64 bounds
// instead of failing.
func (t Timestamp) NanosecondsMax() int64 {
	if total, ok := composeNanos(t.Seconds, t.Nanos); ok {
		return total
	}
	if t.Seconds > 0 || (t.Seconds == 0 && t.Nanos > 0) {
		return math.MaxInt64
	}
	return math.MinInt64
}

func composeNanos(seconds int64, nanos int32) (int64, bool) {
	if seconds > math.MaxInt64/NanosPerSecond ||
		seconds < math.MinInt64/NanosPerSecond {
		return 0, false
	}
	sec := seconds * NanosPerSecond
	total := sec + int64(nanos)
	// Addition overflowed if the result sign flipped away from both operands
	if (sec > 0 && int64(nanos) > 0 && total < 0) ||
		(sec < 0 && int64(nanos) < 0 && total > 0) {
		return 0, false
	}
	return total, true
}
