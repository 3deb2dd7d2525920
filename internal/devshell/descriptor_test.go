package devshell

import (
	"strings"
	"testing"
)

const validDescriptor = `
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs/nixos-unstable
  rust-overlay:
    url: github:oxalica/rust-overlay
    follows:
      nixpkgs: nixpkgs
systems:
  - x86_64-linux
  - aarch64-darwin
shell:
  toolchain:
    input: rust-overlay
    file: rust-toolchain.toml
  packages:
    - name: sqlx-cli
      input: nixpkgs
    - name: cargo-udeps
      input: nixpkgs
    - name: typos
      input: nixpkgs
  hook: |
    if command -v fish >/dev/null 2>&1; then
      exec fish
    fi
`

func TestParseValidDescriptor(t *testing.T) {
	desc, err := Parse([]byte(validDescriptor))
	if err != nil {
		t.Fatalf("parse descriptor: %v", err)
	}
	if len(desc.Inputs) != 2 {
		t.Fatalf("inputs len = %d, want 2", len(desc.Inputs))
	}
	if desc.Inputs["rust-overlay"].Follows["nixpkgs"] != "nixpkgs" {
		t.Fatalf("expected rust-overlay to follow nixpkgs, got %v", desc.Inputs["rust-overlay"].Follows)
	}
	if len(desc.Shell.Packages) != 3 {
		t.Fatalf("packages len = %d, want 3", len(desc.Shell.Packages))
	}
	if !desc.SupportsSystem("x86_64-linux") {
		t.Fatal("expected x86_64-linux to be supported")
	}
	if desc.SupportsSystem("riscv64-linux") {
		t.Fatal("expected riscv64-linux to be unsupported")
	}
}

func TestValidateRejectsDanglingFollows(t *testing.T) {
	_, err := Parse([]byte(`
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs/nixos-unstable
  rust-overlay:
    url: github:oxalica/rust-overlay
    follows:
      nixpkgs: missing-input
systems: [x86_64-linux]
shell:
  toolchain: {input: nixpkgs, file: rust-toolchain.toml}
`))
	if err == nil {
		t.Fatal("expected dangling follows error")
	}
	if !strings.Contains(err.Error(), "no such input") {
		t.Fatalf("expected no-such-input error, got %v", err)
	}
}

func TestValidateRejectsPackageAgainstUndeclaredInput(t *testing.T) {
	_, err := Parse([]byte(`
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs/nixos-unstable
systems: [x86_64-linux]
shell:
  toolchain: {input: nixpkgs, file: rust-toolchain.toml}
  packages:
    - {name: sqlx-cli, input: unknown}
`))
	if err == nil {
		t.Fatal("expected undeclared input error")
	}
}

func TestValidateRejectsMissingURL(t *testing.T) {
	_, err := Parse([]byte(`
inputs:
  nixpkgs: {}
systems: [x86_64-linux]
shell:
  toolchain: {input: nixpkgs, file: rust-toolchain.toml}
`))
	if err == nil {
		t.Fatal("expected missing url error")
	}
}

func TestValidateRejectsDuplicatePackage(t *testing.T) {
	_, err := Parse([]byte(`
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs/nixos-unstable
systems: [x86_64-linux]
shell:
  toolchain: {input: nixpkgs, file: rust-toolchain.toml}
  packages:
    - {name: typos, input: nixpkgs}
    - {name: typos, input: nixpkgs}
`))
	if err == nil {
		t.Fatal("expected duplicate package error")
	}
}

func TestValidateRejectsEmptySystems(t *testing.T) {
	_, err := Parse([]byte(`
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs/nixos-unstable
systems: []
shell:
  toolchain: {input: nixpkgs, file: rust-toolchain.toml}
`))
	if err == nil {
		t.Fatal("expected missing systems error")
	}
}
