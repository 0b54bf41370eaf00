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

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/internal/config"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/internal/node"
	"github.com/spf13/cobra"
)

func importRun(ctx context.Context, args []string, cfg *config.Config) {
	var recordDir string

	// CLI argument takes priority over config
	if len(args) >= 1 {
		recordDir = args[0]
	} else if cfg.RecordDir != "" {
		recordDir = cfg.RecordDir
	} else {
		slog.Error(
			"path to record file directory required (via argument or recordDir config)",
		)
		os.Exit(1)
	}

	logger := commonRun()
	if err := node.Load(ctx, cfg, logger, recordDir); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func importCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [record-dir]",
		Short: "Batch import record files (path via arg or recordDir config)",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				slog.Error("no config found in context")
				os.Exit(1)
			}
			importRun(cmd.Context(), args, cfg)
		},
	}
	return cmd
}
