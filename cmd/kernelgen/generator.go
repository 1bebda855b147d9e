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
	"bytes"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/internal/manifest"
)

const (
	hwyImport    = "github.com/ajroetker/go-elementwise/hwy"
	mathImport   = "github.com/ajroetker/go-elementwise/hwy/contrib/math"
	kernelImport = "github.com/ajroetker/go-elementwise/kernel"
)

// Generator turns a manifest into the Go source of a kernel table.
type Generator struct {
	ManifestPath string // Input manifest (YAML)
	OutputFile   string // Output Go file
	PackageOut   string // Output package name (defaults to the manifest's package)
}

// Run loads the manifest, generates the table and writes OutputFile.
func (g *Generator) Run() error {
	m, err := manifest.Load(g.ManifestPath)
	if err != nil {
		return err
	}
	src, err := g.Generate(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}

// Generate returns the formatted kernel table for m. The output depends only
// on m, so regenerating an unchanged manifest is a no-op.
func (g *Generator) Generate(m *manifest.Manifest) ([]byte, error) {
	pkgName := g.PackageOut
	if pkgName == "" {
		pkgName = m.Package
	}
	title := cases.Title(language.Und)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by kernelgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t%q\n", hwyImport)
	fmt.Fprintf(&buf, "\t%q\n", mathImport)
	fmt.Fprintf(&buf, "\t%q\n", kernelImport)
	fmt.Fprintf(&buf, ")\n\n")

	var tables []string
	for _, f := range m.Functions {
		table := title.String(f.Name) + "Kernels"
		tables = append(tables, table)

		fmt.Fprintf(&buf, "// %s holds the %s kernels, one per element shape.\n", table, f.Name)
		fmt.Fprintf(&buf, "var %s = []*kernel.Kernel{\n", table)
		for _, e := range f.Entries() {
			fmt.Fprintf(&buf, "\t// %s\n", e.Kernel)
			fmt.Fprintf(&buf, "\tkernel.MustUnary(%q, %s, %s),\n", e.Function, shapeLiteral(e.Shape), scalarFunc(e))
		}
		fmt.Fprintf(&buf, "}\n\n")
	}

	fmt.Fprintf(&buf, "// generated lists every kernel table in manifest order.\n")
	fmt.Fprintf(&buf, "var generated = [][]*kernel.Kernel{\n")
	for _, table := range tables {
		fmt.Fprintf(&buf, "\t%s,\n", table)
	}
	fmt.Fprintf(&buf, "}\n")

	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w\n%s", err, buf.Bytes())
	}
	return formatted, nil
}

func shapeLiteral(s hwy.Shape) string {
	return fmt.Sprintf("hwy.Shape{DType: hwy.%s, Width: %d}", s.DType, s.Width)
}

// scalarFunc names the per-lane implementation of e in hwy/contrib/math.
// Half kernels use the dedicated Half entry point; the others instantiate
// the generic function.
func scalarFunc(e manifest.Entry) string {
	switch e.Shape.DType {
	case hwy.Half:
		return "math." + e.Symbol + "Half"
	case hwy.Float:
		return "math." + e.Symbol + "[float32]"
	default:
		return "math." + e.Symbol + "[float64]"
	}
}
