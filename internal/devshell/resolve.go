package devshell

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lock pins every declared input to one revision. A descriptor plus its
// lock fully determines resolution: repeated resolution with unchanged
// inputs yields bit-identical results.
type Lock struct {
	Revisions map[string]string `yaml:"revisions"`
}

// ParseLock decodes a YAML lock table.
func ParseLock(data []byte) (Lock, error) {
	var lock Lock
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return Lock{}, fmt.Errorf("parse lock: %w", err)
	}
	return lock, nil
}

// ResolvedPackage is one materialized package pin.
type ResolvedPackage struct {
	Name     string
	Input    string
	Revision string
}

// ResolvedToolchain is the materialized toolchain pin.
type ResolvedToolchain struct {
	Input    string
	File     string
	Revision string
}

// ResolvedShell is one deterministic shell resolution for a target system.
// Packages keep descriptor order; the hook comes last in the entry script.
type ResolvedShell struct {
	System    string
	Toolchain ResolvedToolchain
	Packages  []ResolvedPackage
	Hook      string
}

// Resolve materializes the shell for one target system against a lock.
//
// Every package pins to the revision of its declared input after follows
// redirection. Resolution fails when the system is not targeted, an input
// is missing from the lock or a follows chain leaves the declared inputs.
func (d Descriptor) Resolve(system string, lock Lock) (ResolvedShell, error) {
	if err := d.Validate(); err != nil {
		return ResolvedShell{}, err
	}
	if !d.SupportsSystem(system) {
		return ResolvedShell{}, fmt.Errorf("system %s is not targeted by this descriptor", system)
	}

	toolchainRev, err := d.pinnedRevision(d.Shell.Toolchain.Input, lock)
	if err != nil {
		return ResolvedShell{}, fmt.Errorf("resolve toolchain: %w", err)
	}

	resolved := ResolvedShell{
		System: system,
		Toolchain: ResolvedToolchain{
			Input:    d.Shell.Toolchain.Input,
			File:     d.Shell.Toolchain.File,
			Revision: toolchainRev,
		},
		Hook: d.Shell.Hook,
	}

	for _, pkg := range d.Shell.Packages {
		revision, err := d.pinnedRevision(pkg.Input, lock)
		if err != nil {
			return ResolvedShell{}, fmt.Errorf("resolve package %s: %w", pkg.Name, err)
		}
		resolved.Packages = append(resolved.Packages, ResolvedPackage{
			Name:     pkg.Name,
			Input:    pkg.Input,
			Revision: revision,
		})
	}
	return resolved, nil
}

// pinnedRevision returns the lock revision for an input after applying
// follows redirection declared by other inputs.
func (d Descriptor) pinnedRevision(name string, lock Lock) (string, error) {
	target := d.followTarget(name)
	revision, ok := lock.Revisions[target]
	if !ok {
		return "", fmt.Errorf("input %s is not pinned in the lock", target)
	}
	if strings.TrimSpace(revision) == "" {
		return "", fmt.Errorf("input %s has an empty lock revision", target)
	}
	return revision, nil
}

// followTarget resolves one level of follows redirection: when any declared
// input redirects name onto another root input, that target's pin wins.
func (d Descriptor) followTarget(name string) string {
	for _, ownerName := range d.InputNames() {
		owner := d.Inputs[ownerName]
		if target, ok := owner.Follows[name]; ok && target != name {
			return target
		}
	}
	return name
}

// EntryScript renders the shell-entry sequence: one activation line per
// package in declaration order, then the hook exactly once. Packages are
// fully materialized before the hook runs.
func (s ResolvedShell) EntryScript() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# shell for %s\n", s.System))
	b.WriteString(fmt.Sprintf("use toolchain %s@%s (%s)\n", s.Toolchain.File, s.Toolchain.Revision, s.Toolchain.Input))
	for _, pkg := range s.Packages {
		b.WriteString(fmt.Sprintf("use package %s@%s (%s)\n", pkg.Name, pkg.Revision, pkg.Input))
	}
	hook := strings.TrimSpace(s.Hook)
	if hook != "" {
		b.WriteString(hook)
		b.WriteString("\n")
	}
	return b.String()
}

// Fingerprint returns a stable digest of the resolution. Two resolutions of
// the same descriptor, lock and system produce the same fingerprint.
func (s ResolvedShell) Fingerprint() string {
	var b strings.Builder
	b.WriteString(s.System)
	b.WriteString("\x00")
	b.WriteString(s.Toolchain.Input + "\x00" + s.Toolchain.File + "\x00" + s.Toolchain.Revision)
	b.WriteString("\x00")
	for _, pkg := range s.Packages {
		b.WriteString(pkg.Name + "\x00" + pkg.Input + "\x00" + pkg.Revision + "\x00")
	}
	b.WriteString(s.Hook)
	digest := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(digest[:])
}

// LockedInputs returns the lock's input names in deterministic order.
func (l Lock) LockedInputs() []string {
	names := make([]string, 0, len(l.Revisions))
	for name := range l.Revisions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
