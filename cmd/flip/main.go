package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/EthanDenny/flip/internal/build"
	"github.com/EthanDenny/flip/internal/codegen"
	"github.com/EthanDenny/flip/internal/config"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/lexer"
	"github.com/EthanDenny/flip/internal/parser"
	"github.com/EthanDenny/flip/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, diagnostics.ColorEnabled(os.Stderr)))
}

// run compiles the single source file named by args and returns the exit
// status.
func run(args []string, stdout, stderr io.Writer, color bool) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "Usage: flip <path%s>\n", config.SourceFileExt)
		return 1
	}
	if err := compile(args[0], stdout, stderr); err != nil {
		diagnostics.Fprint(stderr, err, color)
		return 1
	}
	return 0
}

func compile(path string, stdout, stderr io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	project, err := loadProject(filepath.Dir(path))
	if err != nil {
		return err
	}

	output, err := generate(project, path, string(source))
	if err != nil {
		return err
	}

	outPath := project.OutputPath()
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if project.Build == nil {
		return nil
	}
	runner := build.NewRunner(project, build.WithOutput(stdout, stderr))
	if !project.Build.Run {
		binary := outPath[:len(outPath)-len(filepath.Ext(outPath))]
		return runner.Compile(context.Background(), outPath, binary)
	}
	return runner.Run(context.Background(), outPath)
}

// loadProject finds flip.yaml above dir. Without one, paths resolve
// against the working directory.
func loadProject(dir string) (*config.Project, error) {
	path, err := config.FindProject(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		return config.DefaultProject(wd), nil
	}
	return config.LoadProject(path)
}

// generate runs the compiler pipeline, consulting the compile cache when
// the project configures one.
func generate(project *config.Project, path, source string) (string, error) {
	var cache *build.Cache
	if cachePath := project.CachePath(); cachePath != "" {
		var err error
		if cache, err = build.OpenCache(cachePath); err != nil {
			return "", err
		}
		defer cache.Close()

		output, ok, err := cache.Lookup(path, source, project.RuntimeHeader)
		if err != nil {
			return "", err
		}
		if ok {
			return output, nil
		}
	}

	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	ctx.RuntimeHeader = project.RuntimeHeader

	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&codegen.CodegenProcessor{},
	).Run(ctx)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if cache != nil {
		if err := cache.Store(path, source, project.RuntimeHeader, ctx.Output); err != nil {
			return "", err
		}
	}
	return ctx.Output, nil
}
