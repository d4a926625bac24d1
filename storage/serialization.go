// Copyright 2025 Lumina Labs
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


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/lumina-dev/searchlight/core"
)

// HistoryEntryMUS is the MUS serializer for core.HistoryEntry.
// Timestamps are stored as Unix microseconds.
var HistoryEntryMUS = historyEntryMUS{}

type historyEntryMUS struct{}

func (historyEntryMUS) Marshal(entry core.HistoryEntry, bs []byte) (n int) {
	n = ord.String.Marshal(entry.Query, bs)
	n += varint.Int.Marshal(entry.Count, bs[n:])
	n += varint.Int64.Marshal(entry.LastUsed.UnixMicro(), bs[n:])
	return
}

func (historyEntryMUS) Unmarshal(bs []byte) (entry core.HistoryEntry, n int, err error) {
	entry.Query, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	entry.Count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	entry.LastUsed = time.UnixMicro(micros).UTC()
	return
}

func (historyEntryMUS) Size(entry core.HistoryEntry) (size int) {
	size = ord.String.Size(entry.Query)
	size += varint.Int.Size(entry.Count)
	size += varint.Int64.Size(entry.LastUsed.UnixMicro())
	return
}

// MarshalHistoryEntry serializes a HistoryEntry to bytes.
func MarshalHistoryEntry(entry *core.HistoryEntry) []byte {
	buf := make([]byte, HistoryEntryMUS.Size(*entry))
	HistoryEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalHistoryEntry deserializes a HistoryEntry from bytes.
func UnmarshalHistoryEntry(data []byte) (*core.HistoryEntry, error) {
	entry, _, err := HistoryEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
