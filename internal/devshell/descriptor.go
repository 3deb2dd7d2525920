package devshell

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input is one pinned remote source reference. Follows redirects a named
// transitive dependency of this input onto another root input, so one
// resolution is shared instead of fetching duplicate or incompatible copies.
type Input struct {
	URL     string            `yaml:"url"`
	Follows map[string]string `yaml:"follows,omitempty"`
}

// Toolchain references the language toolchain for the shell. The version is
// read from a toolchain file in the repository rather than being duplicated
// in the descriptor.
type Toolchain struct {
	Input string `yaml:"input"`
	File  string `yaml:"file"`
}

// Package is one package request, resolved against a declared input.
type Package struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
}

// Shell declares the development shell: a toolchain, an ordered package
// list and a post-activation hook emitted once per shell entry after all
// packages are materialized.
type Shell struct {
	Toolchain Toolchain `yaml:"toolchain"`
	Packages  []Package `yaml:"packages"`
	Hook      string    `yaml:"hook,omitempty"`
}

// Descriptor is the reproducible development-environment declaration.
type Descriptor struct {
	Inputs  map[string]Input `yaml:"inputs"`
	Systems []string         `yaml:"systems"`
	Shell   Shell            `yaml:"shell"`
}

// Parse decodes a YAML environment descriptor and validates it.
func Parse(data []byte) (Descriptor, error) {
	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return Descriptor{}, fmt.Errorf("parse environment descriptor: %w", err)
	}
	if err := desc.Validate(); err != nil {
		return Descriptor{}, err
	}
	return desc, nil
}

// Validate enforces descriptor invariants: inputs carry URLs, follows
// redirections land on declared inputs, systems are present and package
// requests resolve against declared inputs only.
func (d Descriptor) Validate() error {
	if len(d.Inputs) == 0 {
		return fmt.Errorf("at least one input is required")
	}
	for _, name := range d.InputNames() {
		input := d.Inputs[name]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("input name may not be empty")
		}
		if strings.TrimSpace(input.URL) == "" {
			return fmt.Errorf("input %s: url is required", name)
		}
		for dep, target := range input.Follows {
			if strings.TrimSpace(dep) == "" {
				return fmt.Errorf("input %s: follows key may not be empty", name)
			}
			if _, ok := d.Inputs[target]; !ok {
				return fmt.Errorf("input %s: follows %s -> %s: no such input", name, dep, target)
			}
			if target == name {
				return fmt.Errorf("input %s: follows %s -> %s: input may not follow itself", name, dep, target)
			}
		}
	}

	if len(d.Systems) == 0 {
		return fmt.Errorf("at least one target system is required")
	}
	seenSystems := make(map[string]struct{}, len(d.Systems))
	for _, system := range d.Systems {
		if strings.TrimSpace(system) == "" {
			return fmt.Errorf("system identifier may not be empty")
		}
		if _, dup := seenSystems[system]; dup {
			return fmt.Errorf("system %s declared twice", system)
		}
		seenSystems[system] = struct{}{}
	}

	if strings.TrimSpace(d.Shell.Toolchain.Input) == "" {
		return fmt.Errorf("shell toolchain input is required")
	}
	if _, ok := d.Inputs[d.Shell.Toolchain.Input]; !ok {
		return fmt.Errorf("shell toolchain input %s: no such input", d.Shell.Toolchain.Input)
	}
	if strings.TrimSpace(d.Shell.Toolchain.File) == "" {
		return fmt.Errorf("shell toolchain file reference is required")
	}

	seenPackages := make(map[string]struct{}, len(d.Shell.Packages))
	for i, pkg := range d.Shell.Packages {
		if strings.TrimSpace(pkg.Name) == "" {
			return fmt.Errorf("package %d: name is required", i)
		}
		if _, dup := seenPackages[pkg.Name]; dup {
			return fmt.Errorf("package %s requested twice", pkg.Name)
		}
		seenPackages[pkg.Name] = struct{}{}
		if _, ok := d.Inputs[pkg.Input]; !ok {
			return fmt.Errorf("package %s: input %s: no such input", pkg.Name, pkg.Input)
		}
	}
	return nil
}

// InputNames returns declared input names in deterministic order.
func (d Descriptor) InputNames() []string {
	names := make([]string, 0, len(d.Inputs))
	for name := range d.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SupportsSystem reports whether the descriptor targets the given system.
func (d Descriptor) SupportsSystem(system string) bool {
	for _, candidate := range d.Systems {
		if candidate == system {
			return true
		}
	}
	return false
}
