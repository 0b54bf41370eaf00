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

package event

// RecordFileParsedEventType is emitted after a record file is verified
// and decoded, before its rows are committed
const RecordFileParsedEventType = EventType("record.parsed")

type RecordFileParsedEvent struct {
	// Hash is the content hash of the parsed file
	Hash []byte
	// ItemCount is the number of transaction/outcome pairs in the file
	ItemCount int
	// ConsensusStart is the first item's consensus timestamp
	ConsensusStart int64
	// ConsensusEnd is the last item's consensus timestamp
	ConsensusEnd int64
}

// RecordFileCommittedEventType is emitted after a record file's derived
// rows have been committed and the chain pointer advanced
const RecordFileCommittedEventType = EventType("record.committed")

type RecordFileCommittedEvent struct {
	// Hash is the content hash of the committed file
	Hash []byte
	// ItemCount is the number of outcome rows written
	ItemCount int
	// ConsensusEnd is the last applied consensus timestamp
	ConsensusEnd int64
}
