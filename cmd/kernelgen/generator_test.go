package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-elementwise/internal/manifest"
)

const testManifest = `
package: demo
functions:
  - name: sinpi
    symbol: SinPi
    types: [Float, Half]
    widths: [1, 3]
    ulp: {Float: 1, Half: 1}
    domain: {min: -4, max: 4}
`

func TestGenerate(t *testing.T) {
	m, err := manifest.Parse([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}

	g := &Generator{OutputFile: "demo_gen.go"}
	src, err := g.Generate(m)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by kernelgen. DO NOT EDIT.",
		"package demo",
		"var SinpiKernels = []*kernel.Kernel{",
		"// testSinpiFloat3Float3",
		`kernel.MustUnary("sinpi", hwy.Shape{DType: hwy.Float, Width: 3}, math.SinPi[float32]),`,
		`kernel.MustUnary("sinpi", hwy.Shape{DType: hwy.Half, Width: 1}, math.SinPiHalf),`,
		"var generated = [][]*kernel.Kernel{\n\tSinpiKernels,\n}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code missing %q\n%s", want, out)
		}
	}
	if n := strings.Count(out, "kernel.MustUnary("); n != 4 {
		t.Errorf("generated %d kernels, want 4", n)
	}

	g.PackageOut = "other"
	src, err = g.Generate(m)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "package other\n") {
		t.Errorf("-pkg override ignored:\n%s", src)
	}
}

// TestCheckedInTableIsCurrent regenerates the kernels package table and
// compares it with the checked-in copy.
func TestCheckedInTableIsCurrent(t *testing.T) {
	dir := filepath.Join("..", "..", "kernels")
	m, err := manifest.Load(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	g := &Generator{OutputFile: filepath.Join(dir, "kernels_gen.go")}
	got, err := g.Generate(m)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(g.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("kernels_gen.go is stale, run go generate ./kernels (-checked-in +generated):\n%s", diff)
	}
}

func TestRunWritesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "manifest.yaml")
	if err := os.WriteFile(in, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	g := &Generator{ManifestPath: in, OutputFile: filepath.Join(dir, "out_gen.go")}
	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(g.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "// Code generated by kernelgen.") {
		t.Errorf("unexpected output:\n%s", data)
	}

	g.ManifestPath = filepath.Join(dir, "missing.yaml")
	if err := g.Run(); err == nil {
		t.Error("Run with missing manifest succeeded")
	}
}
