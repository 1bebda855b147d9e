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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-elementwise/cts"
	"github.com/ajroetker/go-elementwise/dispatch"
	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/kernels"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List kernels with their shapes and tolerances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := opts.entries()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "KERNEL\tIN\tOUT\tULP\tDOMAIN")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t[%g, %g]\n", e.Kernel, e.Shape, e.Shape, e.ULP, e.Domain.Min, e.Domain.Max)
			}
			return w.Flush()
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Check kernels against the reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := opts.entries()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("no kernels selected")
			}

			var dopts []dispatch.Option
			if opts.grain > 0 {
				dopts = append(dopts, dispatch.WithGrain(opts.grain))
			}
			if opts.sequential {
				dopts = append(dopts, dispatch.WithSequential())
			}
			d := dispatch.New(kernels.Default(), dopts...)
			defer d.Close()

			log := opts.logger
			log.Info("running conformance suite",
				"kernels", len(entries),
				"elements", opts.elements,
				"seed", opts.seed,
				"level", hwy.CurrentName())

			h := cts.New(d, cts.Config{Elements: opts.elements, Seed: opts.seed, Workers: opts.workers})
			report, err := h.Run(cmd.Context(), entries)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				status := "PASS"
				if !res.Passed() {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%s %s max=%d mean=%.3f ulp (tolerance %d)\n",
					status, res.Kernel, res.MaxULP, res.MeanULP, res.Tolerance)
				log.Debug("checked kernel", "kernel", res.Kernel, "lanes", res.Lanes, "duration", res.Duration)
				for _, m := range res.Mismatches {
					fmt.Fprintf(out, "    %s\n", m)
				}
			}

			failed := report.Failed()
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d kernels failed", len(failed), len(report.Results))
			}
			log.Info("all kernels passed", "kernels", len(report.Results))
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch level and registered kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			reg := kernels.Default()
			fmt.Fprintf(out, "dispatch level: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(out, "HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
			fmt.Fprintf(out, "half conversion: %v\n", hwy.HasHalfConversion())
			for _, d := range []hwy.DType{hwy.Half, hwy.Float, hwy.Double} {
				fmt.Fprintf(out, "lanes per vector %s: %d\n", d, hwy.MaxLanes(d))
			}
			fmt.Fprintf(out, "kernels: %d (%v)\n", reg.Len(), reg.Functions())
			return nil
		},
	}
}
