package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Project represents a flip.yaml configuration.
type Project struct {
	// Requires is a semver constraint on the compiler version (e.g. ">= 0.2").
	Requires string `yaml:"requires,omitempty"`

	// Output is the generated C file. Defaults to build/out.c.
	Output string `yaml:"output,omitempty"`

	// RuntimeHeader is the header named in the generated #include line.
	RuntimeHeader string `yaml:"runtime_header,omitempty"`

	// Cache is the path of the sqlite compile cache. Empty disables caching.
	Cache string `yaml:"cache,omitempty"`

	// Build, when present, compiles the generated file with a host C compiler.
	Build *BuildSpec `yaml:"build,omitempty"`

	// Dir is the directory relative paths resolve against.
	Dir string `yaml:"-"`
}

// BuildSpec describes how to turn the generated file into an executable.
type BuildSpec struct {
	// CC is the C compiler command. Defaults to "cc".
	CC string `yaml:"cc,omitempty"`

	// Include lists directories searched for the runtime header.
	Include []string `yaml:"include,omitempty"`

	// Flags are passed to the compiler before the source file.
	Flags []string `yaml:"flags,omitempty"`

	// Run executes the built program and forwards its stdout.
	Run bool `yaml:"run,omitempty"`
}

// DefaultProject returns the configuration used when no flip.yaml exists.
func DefaultProject(dir string) *Project {
	p := &Project{Dir: dir}
	p.setDefaults()
	return p
}

// LoadProject reads and parses a flip.yaml file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseProject(data, path)
}

// ParseProject parses flip.yaml content. The path locates relative paths
// and is used in error messages.
func ParseProject(data []byte, path string) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := p.validate(path); err != nil {
		return nil, err
	}
	p.Dir = filepath.Dir(path)
	p.setDefaults()
	return &p, nil
}

// FindProject searches for flip.yaml starting from dir and walking up to
// parent directories. Returns an empty path and nil error if none is found.
func FindProject(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"flip.yaml", "flip.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (p *Project) validate(path string) error {
	if p.Requires != "" {
		constraint, err := semver.NewConstraint(p.Requires)
		if err != nil {
			return fmt.Errorf("%s: requires: invalid constraint %q: %w", path, p.Requires, err)
		}
		current := semver.MustParse(Version)
		if !constraint.Check(current) {
			return fmt.Errorf("%s: requires %s, but compiler version is %s", path, p.Requires, Version)
		}
	}

	if p.Build != nil {
		for i, dir := range p.Build.Include {
			if dir == "" {
				return fmt.Errorf("%s: build.include[%d]: empty path", path, i)
			}
		}
	}

	return nil
}

func (p *Project) setDefaults() {
	if p.Output == "" {
		p.Output = DefaultOutputPath
	}
	if p.RuntimeHeader == "" {
		p.RuntimeHeader = DefaultRuntimeHeader
	}
	if p.Build != nil && p.Build.CC == "" {
		p.Build.CC = DefaultCompiler
	}
}

// Resolve makes a config-relative path absolute.
func (p *Project) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}

// OutputPath returns the resolved path of the generated file.
func (p *Project) OutputPath() string {
	return p.Resolve(p.Output)
}

// CachePath returns the resolved cache path, or "" when caching is off.
func (p *Project) CachePath() string {
	return p.Resolve(p.Cache)
}
