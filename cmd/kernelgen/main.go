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

// Command kernelgen generates the elementwise kernel table from a kernel manifest.
//
// Usage:
//
//	kernelgen -manifest manifest.yaml -output kernels_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/kernelgen -manifest manifest.yaml -output kernels_gen.go
//
// Every manifest function expands into one kernel per (type, width) pair.
// The generated file declares one table per function, e.g. SinpiKernels,
// and a package-level list of all tables.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	manifestFile = flag.String("manifest", "manifest.yaml", "Input kernel manifest")
	outputFile   = flag.String("output", "kernels_gen.go", "Output Go file")
	packageOut   = flag.String("pkg", "", "Output package name (default: the manifest's package)")
)

func main() {
	flag.Parse()

	if *manifestFile == "" || *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -manifest and -output are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		ManifestPath: *manifestFile,
		OutputFile:   *outputFile,
		PackageOut:   *packageOut,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s from %s\n", *outputFile, *manifestFile)
}
