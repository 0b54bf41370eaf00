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

package importer

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/recordfile"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize = 25
	defaultWorkers   = 4
)

// Manager runs batched ingestion over a sequence of record files.
// Decoding is speculative and parallel; commits stay strictly in chain
// order. A file's expected previous hash is the content hash of the
// file before it, so every file in a batch can be verified without
// waiting for its predecessor to commit.
type Manager struct {
	importer  *Importer
	batchSize int
	workers   int
}

func NewManager(importer *Importer, workers, batchSize int) *Manager {
	if workers < 1 {
		workers = defaultWorkers
	}
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &Manager{
		importer:  importer,
		batchSize: batchSize,
		workers:   workers,
	}
}

// ImportDir ingests every record file under dir in lexical order.
// File names carry the consensus start timestamp, so lexical order is
// chain order. Files up to and including the last applied name are
// skipped, so re-running over the same directory resumes where the
// previous run stopped. Returns the number of files applied; a failed
// file stops ingestion with everything before it committed and nothing
// from it or after it applied.
func (m *Manager) ImportDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading record dir: %w", err)
	}
	lastApplied, err := m.importer.LastAppliedName()
	if err != nil {
		return 0, err
	}
	var paths []string
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".rcd") {
			continue
		}
		if lastApplied != "" && ent.Name() <= lastApplied {
			continue
		}
		paths = append(paths, filepath.Join(dir, ent.Name()))
	}
	sort.Strings(paths)

	applied := 0
	for start := 0; start < len(paths); start += m.batchSize {
		end := min(start+m.batchSize, len(paths))
		n, err := m.importBatch(ctx, paths[start:end])
		applied += n
		if err != nil {
			return applied, err
		}
	}
	return applied, nil
}

// importBatch reads and parses one batch of files in parallel, then
// applies them in order. Parse errors surface when the failing file's
// turn to commit arrives, so earlier files in the batch still apply.
func (m *Manager) importBatch(
	ctx context.Context,
	paths []string,
) (int, error) {
	raws := make([][]byte, len(paths))
	for idx, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		raws[idx] = raw
	}
	expectedPrev, err := m.importer.ExpectedPreviousHash()
	if err != nil {
		return 0, err
	}

	parsed := make([]*recordfile.RecordFile, len(raws))
	parseErrs := make([]error, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for idx := range raws {
		prev := expectedPrev
		if idx > 0 {
			prevHash := sha256.Sum256(raws[idx-1])
			prev = prevHash[:]
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rf, parseErr := recordfile.Parse(raws[idx], prev)
			if parseErr != nil {
				parseErrs[idx] = parseErr
				return nil
			}
			rf.Name = filepath.Base(paths[idx])
			parsed[idx] = rf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	applied := 0
	for idx := range parsed {
		if parseErrs[idx] != nil {
			return applied, fmt.Errorf(
				"parsing %s: %w",
				paths[idx],
				parseErrs[idx],
			)
		}
		if err := m.importer.ApplyFile(ctx, parsed[idx]); err != nil {
			return applied, fmt.Errorf(
				"applying %s: %w",
				paths[idx],
				err,
			)
		}
		applied++
	}
	return applied, nil
}
