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

package recordfile

import "errors"

var (
	// ErrHashMismatch means the file does not link to the expected
	// predecessor. The file is rejected whole; nothing is decoded past
	// the envelope.
	ErrHashMismatch = errors.New("previous hash mismatch")

	// ErrMalformedEnvelope means the file bytes do not decode against the
	// schema
	ErrMalformedEnvelope = errors.New("malformed record file")

	// ErrOutOfOrder means item consensus timestamps are not strictly
	// increasing within the file
	ErrOutOfOrder = errors.New("record items out of order")

	// ErrEmptyFile means the envelope decoded but contains no items
	ErrEmptyFile = errors.New("record file contains no items")
)
