// Copyright 2026 The Ember Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dumpcmd wires the gcdump cobra command tree.
package dumpcmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// quiet suppresses the per-page occupancy bars, leaving only the summary
// line and the per-kind table. A persistent flag since it applies to every
// subcommand gcdump grows in the future, not just dump.
var quiet bool

// Root builds the gcdump command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "gcdump",
		Short: "Inspect ember heap-dump files",
		Long: "gcdump reads a heap-dump file written by internal/gcpb and prints\n" +
			"per-page occupancy and per-kind live counts for offline inspection.",
		SilenceUsage: true,
	}

	persistent := pflag.NewFlagSet("gcdump", pflag.ContinueOnError)
	persistent.BoolVarP(&quiet, "quiet", "q", false, "suppress per-page occupancy bars")
	root.PersistentFlags().AddFlagSet(persistent)

	root.AddCommand(newDumpCommand())
	return root
}
