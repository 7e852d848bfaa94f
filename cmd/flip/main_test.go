package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"a.flip", "b.flip"}} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr, false); code != 1 {
			t.Errorf("args %v: exit code %d", args, code)
		}
		if !strings.HasPrefix(stderr.String(), "Usage: flip") {
			t.Errorf("args %v: unexpected stderr %q", args, stderr.String())
		}
	}
}

func TestCompileWritesOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "flip.yaml"), "requires: \">= 0.1.0\"\noutput: gen/prog.c\nruntime_header: rt.h\n")
	src := filepath.Join(dir, "src", "prog.flip")
	writeFile(t, src, "main() -> Int { +(1, 2) }\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{src}, &stdout, &stderr, false); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}

	out, err := os.ReadFile(filepath.Join(dir, "gen", "prog.c"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `#include "rt.h"`) {
		t.Errorf("runtime header not used:\n%s", out)
	}
	if !strings.Contains(string(out), "(1 + 2)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompileErrorIsSingleDiagnostic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "flip.yaml"), "output: out.c\n")
	src := filepath.Join(dir, "bad.flip")
	writeFile(t, src, "main() -> Int {\n  foo()\n}\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{src}, &stdout, &stderr, false); code != 1 {
		t.Fatalf("exit code %d", code)
	}
	want := src + `:2: error[P002]: UnknownSymbolError: unknown symbol "foo"` + "\n"
	if stderr.String() != want {
		t.Errorf("got %q, want %q", stderr.String(), want)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.c")); !os.IsNotExist(err) {
		t.Errorf("no output should be written on error")
	}
}

func TestRequiresConstraint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "flip.yaml"), "requires: \">= 99.0.0\"\n")
	src := filepath.Join(dir, "prog.flip")
	writeFile(t, src, "main() -> Int { 1 }\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{src}, &stdout, &stderr, false); code != 1 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stderr.String(), "requires >= 99.0.0") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestCacheReused(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "flip.yaml"), "output: out.c\ncache: cache/flip.db\n")
	src := filepath.Join(dir, "prog.flip")
	writeFile(t, src, "main() -> Int { 1 }\n")

	for i := 0; i < 2; i++ {
		var stdout, stderr bytes.Buffer
		if code := run([]string{src}, &stdout, &stderr, false); code != 0 {
			t.Fatalf("run %d: exit code %d: %s", i, code, stderr.String())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "cache", "flip.db")); err != nil {
		t.Errorf("cache not created: %v", err)
	}
}

func TestCacheKeyedByFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "flip.yaml"), "output: out.c\ncache: cache/flip.db\n")

	for _, name := range []string{"first.flip", "second.flip"} {
		src := filepath.Join(dir, name)
		writeFile(t, src, "main() -> Int { 1 }\n")

		var stdout, stderr bytes.Buffer
		if code := run([]string{src}, &stdout, &stderr, false); code != 0 {
			t.Fatalf("%s: exit code %d: %s", name, code, stderr.String())
		}
		out, err := os.ReadFile(filepath.Join(dir, "out.c"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(out), "from "+name+".") {
			t.Errorf("%s: stale header comment:\n%s", name, out)
		}
	}
}

func TestBuildAndRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("cc not found")
	}
	runtimeDir, err := filepath.Abs(filepath.Join("..", "..", "runtime"))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "flip.yaml"),
		"output: build/out.c\nbuild:\n  include: ["+runtimeDir+"]\n  run: true\n")
	src := filepath.Join(dir, "add.flip")
	writeFile(t, src, "add(a: Int, b: Int) -> Int { +(a, b) }\nmain() -> Int { add(2, 3) }\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{src}, &stdout, &stderr, false); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}
	if stdout.String() != "5\n" {
		t.Errorf("got %q", stdout.String())
	}
}
