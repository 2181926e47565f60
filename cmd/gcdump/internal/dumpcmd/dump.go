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

package dumpcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/protocolbuffers/protoscope"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emberlang/gc/internal/gcpb"
	"github.com/emberlang/gc/rval"
)

func newDumpCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a heap dump's page and kind breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("gcdump: %w", err)
			}

			if raw {
				return printRaw(cmd, data)
			}

			dump, err := gcpb.Unmarshal(data)
			if err != nil {
				return fmt.Errorf("gcdump: %w", err)
			}
			printSummary(cmd, dump)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the dump's raw protobuf wire format instead of summarizing it")
	return cmd
}

// printRaw renders data in the protoscope text format, the same
// human-readable wire-format notation protoscope's own CLI produces, for
// byte-level debugging of a dump that fails to decode.
func printRaw(cmd *cobra.Command, data []byte) error {
	w := protoscope.NewWriter()
	fmt.Fprintln(cmd.OutOrStdout(), string(w.Write(data)))
	return nil
}

func printSummary(cmd *cobra.Command, dump *gcpb.HeapDump) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "runtime %s  page_size=%d  live=%d  pages=%d\n",
		dump.RuntimeID, dump.PageSize, dump.Live, len(dump.Pages))

	if !quiet {
		width := barWidth(cmd)
		for i, p := range dump.Pages {
			total := p.Occupied + p.Free
			fmt.Fprintf(out, "  page %-4d %s %d/%d occupied\n", i, occupancyBar(p.Occupied, total, width), p.Occupied, total)
		}
	}

	if len(dump.KindCounts) > 0 {
		fmt.Fprintln(out, "  by kind:")
		for _, kc := range dump.KindCounts {
			fmt.Fprintf(out, "    %-10s %d\n", rval.Kind(kc.Kind), kc.Count)
		}
	}
}

// barWidth picks a bar-chart width suited to the terminal, falling back to
// a fixed width of 20 when stdout isn't a terminal (piped to a file,
// redirected in CI, and so on).
func barWidth(cmd *cobra.Command) int {
	const fallback = 20
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 20 {
		return fallback
	}
	if w > 60 {
		w = 60
	}
	return w - 20
}

func occupancyBar(occupied, total uint32, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}
	filled := int(uint64(occupied) * uint64(width) / uint64(total))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
