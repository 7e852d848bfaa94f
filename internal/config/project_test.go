package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseProject(t *testing.T) {
	data := []byte(`
requires: ">= 0.1.0"
output: gen/out.c
runtime_header: rt.h
cache: .flip/cache.db
build:
  include: [runtime]
  flags: ["-O2"]
  run: true
`)
	p, err := ParseProject(data, "/proj/flip.yaml")
	if err != nil {
		t.Fatalf("ParseProject: %v", err)
	}
	if p.Dir != "/proj" {
		t.Errorf("Dir = %q", p.Dir)
	}
	if p.OutputPath() != filepath.Join("/proj", "gen", "out.c") {
		t.Errorf("OutputPath = %q", p.OutputPath())
	}
	if p.RuntimeHeader != "rt.h" {
		t.Errorf("RuntimeHeader = %q", p.RuntimeHeader)
	}
	if p.CachePath() != filepath.Join("/proj", ".flip", "cache.db") {
		t.Errorf("CachePath = %q", p.CachePath())
	}
	if p.Build == nil || p.Build.CC != DefaultCompiler || !p.Build.Run || p.Build.Flags[0] != "-O2" {
		t.Errorf("Build = %+v", p.Build)
	}
}

func TestDefaultProject(t *testing.T) {
	p := DefaultProject("/work")
	if p.OutputPath() != filepath.Join("/work", DefaultOutputPath) {
		t.Errorf("OutputPath = %q", p.OutputPath())
	}
	if p.RuntimeHeader != DefaultRuntimeHeader || p.CachePath() != "" || p.Build != nil {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestParseProjectErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "output: [", "parsing flip.yaml"},
		{"bad constraint", `requires: "not a version"`, "invalid constraint"},
		{"unsatisfied constraint", `requires: "< 0.1.0"`, "compiler version is " + Version},
		{"empty include", "build:\n  include: [\"\"]\n", "build.include[0]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProject([]byte(tc.data), "flip.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestFindProject(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "flip.yml"), []byte("output: x.c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := FindProject(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(root, "flip.yml") {
		t.Errorf("FindProject = %q", path)
	}

	p, err := LoadProject(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.OutputPath() != filepath.Join(root, "x.c") {
		t.Errorf("OutputPath = %q", p.OutputPath())
	}
}
