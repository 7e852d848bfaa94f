package codegen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// buildAndRun compiles generated C against the runtime header and returns
// the program's stdout.
func buildAndRun(t *testing.T, source string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("cc not found")
	}

	runtimeDir, err := filepath.Abs(filepath.Join("..", "..", "runtime"))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	cFile := filepath.Join(dir, "out.c")
	binary := filepath.Join(dir, "out")
	if err := os.WriteFile(cFile, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(cc, "-I", runtimeDir, "-o", binary, cFile)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("cc failed:\n%s\n%v\n--- source\n%s", output, err, source)
	}

	output, err := exec.Command(binary).Output()
	if err != nil {
		t.Fatalf("running program: %v", err)
	}
	return string(output)
}

func TestE2E(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "add",
			input: `
add(a: Int, b: Int) -> Int { +(a, b) }
main() -> Int { add(2, 3) }
`,
			want: "5\n",
		},
		{
			name:  "not of literal",
			input: `main() -> Bool { not(true) }`,
			want:  "0\n",
		},
		{
			name: "factorial",
			input: `
fact(n: Int) -> Int {
    if(<=(n, 1), 1, *(n, fact(-(n, 1))))
}
main() -> Int { fact(10) }
`,
			want: "3628800\n",
		},
		{
			name: "list output",
			input: `
countdown(n: Int, acc: [Int]) -> [Int] {
    if(==(n, 0), acc, countdown(-(n, 1), ++(n, acc)))
}
main() -> [Int] {
    let(e: [Int], empty())
    countdown(3, e)
}
`,
			want: "1\n2\n3\n",
		},
		{
			name: "generic over nested lists",
			input: `
first(xs: [T]) -> T { head(xs) }
main() -> Int {
    let(e: [Int], empty())
    let(inner: [Int], ++(7, ++(8, e)))
    let(ee: [[Int]], empty())
    let(outer: [[Int]], ++(inner, ee))
    len(first(outer))
}
`,
			want: "2\n",
		},
		{
			name: "parameter named like a factory",
			input: `
add(a: Int, b: Int) -> Int { +(a, b) }
g(fn_add: Int) -> Int { add(fn_add, 1) }
main() -> Int { g(1) }
`,
			want: "2\n",
		},
		{
			name: "overload names do not collide",
			input: `
f(a: Int) -> Int { a }
f(a: Bool) -> Int { 0 }
f_1() -> Int { 5 }
eval_f(x: Int) -> Int { x }
main() -> Int { +(f(1), +(f(true), +(f_1(), eval_f(10)))) }
`,
			want: "16\n",
		},
		{
			name: "overloads",
			input: `
area(s: Int) -> Int { *(s, s) }
area(w: Int, h: Int) -> Int { *(w, h) }
main() -> Int { -(area(3, 4), area(2)) }
`,
			want: "8\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := expectOutput(t, tc.input)
			if got := buildAndRun(t, out); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestE2EGolden(t *testing.T) {
	archive, err := txtar.ParseFile(filepath.Join("testdata", "lists.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range archive.Files {
		if f.Name != "out.c" {
			continue
		}
		if got, want := buildAndRun(t, string(f.Data)), "10\n1\n2\n3\n4\n"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		return
	}
	t.Fatal("lists.txtar has no out.c")
}
