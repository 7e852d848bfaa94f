package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/EthanDenny/flip/internal/config"
)

// Runner compiles a generated C file with the host toolchain.
type Runner struct {
	spec *config.BuildSpec

	// include holds the resolved include directories.
	include []string

	stdout io.Writer
	stderr io.Writer
}

type RunnerOption func(*Runner)

// WithOutput redirects the built program's stdout and the compiler's
// diagnostics.
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a runner for the project's build section.
func NewRunner(project *config.Project, opts ...RunnerOption) *Runner {
	spec := project.Build
	if spec == nil {
		spec = &config.BuildSpec{CC: config.DefaultCompiler}
	}
	r := &Runner{spec: spec, stdout: os.Stdout, stderr: os.Stderr}
	for _, dir := range spec.Include {
		r.include = append(r.include, project.Resolve(dir))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Compile builds cFile into binary.
func (r *Runner) Compile(ctx context.Context, cFile, binary string) error {
	cc := r.spec.CC
	if cc == "" {
		cc = config.DefaultCompiler
	}

	var args []string
	for _, dir := range r.include {
		args = append(args, "-I", dir)
	}
	args = append(args, r.spec.Flags...)
	args = append(args, "-o", binary, cFile)

	cmd := exec.CommandContext(ctx, cc, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed:\n%s\n%w", cc, string(output), err)
	}
	return nil
}

// Run compiles cFile into a scratch directory, runs the result, and
// forwards its stdout. The scratch directory is removed afterwards.
func (r *Runner) Run(ctx context.Context, cFile string) error {
	dir := filepath.Join(os.TempDir(), "flip-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating build dir: %w", err)
	}
	defer os.RemoveAll(dir)

	binary := filepath.Join(dir, "out")
	if err := r.Compile(ctx, cFile, binary); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, binary)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", filepath.Base(cFile), err)
	}
	return nil
}
