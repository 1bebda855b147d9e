// Copyright 2025 go-highway Authors
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
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-elementwise/cts"
	"github.com/ajroetker/go-elementwise/internal/manifest"
	"github.com/ajroetker/go-elementwise/kernels"
)

// options holds the flags shared by every subcommand.
type options struct {
	elements   int
	seed       uint64
	workers    int
	grain      int
	sequential bool
	kernels    []string
	functions  []string
	verbose    bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hwycts",
		Short: "Conformance suite for elementwise kernels",
		Long: `hwycts checks every generated elementwise kernel against a float64
reference within the ULP tolerance listed in the kernel manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	opts.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(newListCmd(opts), newRunCmd(opts), newInfoCmd())
	return cmd
}

func (o *options) addFlags(f *pflag.FlagSet) {
	f.IntVar(&o.elements, "elements", envInt("HWYCTS_ELEMENTS", cts.DefaultConfig.Elements), "buffer elements per kernel [$HWYCTS_ELEMENTS]")
	f.Uint64Var(&o.seed, "seed", envUint64("HWYCTS_SEED", cts.DefaultConfig.Seed), "seed for random inputs [$HWYCTS_SEED]")
	f.IntVar(&o.workers, "workers", envInt("HWYCTS_WORKERS", 0), "kernels checked concurrently, 0 for GOMAXPROCS [$HWYCTS_WORKERS]")
	f.IntVar(&o.grain, "grain", envInt("HWYCTS_GRAIN", 0), "elements per dispatch batch, 0 for the CPU default [$HWYCTS_GRAIN]")
	f.BoolVar(&o.sequential, "sequential", false, "dispatch every buffer on one goroutine")
	f.StringSliceVarP(&o.kernels, "kernel", "k", nil, "only these kernels, by name")
	f.StringSliceVarP(&o.functions, "function", "f", nil, "only kernels of these functions, e.g. sinpi")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log every kernel")
}

// entries returns the manifest entries selected by --kernel and --function,
// in manifest order. Naming a kernel the manifest does not list is an error.
func (o *options) entries() ([]manifest.Entry, error) {
	m, err := kernels.Manifest()
	if err != nil {
		return nil, err
	}
	all := m.Entries()

	known := lo.Map(all, func(e manifest.Entry, _ int) string { return e.Kernel })
	if missing, _ := lo.Difference(o.kernels, known); len(missing) > 0 {
		return nil, fmt.Errorf("unknown kernels: %v", missing)
	}

	return lo.Filter(all, func(e manifest.Entry, _ int) bool {
		if len(o.kernels) > 0 && !lo.Contains(o.kernels, e.Kernel) {
			return false
		}
		if len(o.functions) > 0 && !lo.Contains(o.functions, e.Function) {
			return false
		}
		return true
	}), nil
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envUint64(key string, def uint64) uint64 {
	if v, err := strconv.ParseUint(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return def
}
