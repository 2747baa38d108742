package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/rxn/chem"
)

func writeNetwork(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "network.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestCheck_Valid(t *testing.T) {
	path := writeNetwork(t, `
species: [A, B, C]
reactions: |
  A + B -> C : 1e-10
  C -> A + B : {2.0}
`)

	cmd := Check{Source: path}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("check failed: %v", err)
	}
}

func TestCheck_InvalidRate(t *testing.T) {
	path := writeNetwork(t, `
species: [A, B]
reactions: "A -> B : bogus"
`)

	cmd := Check{Source: path}

	err := cmd.Run(context.Background())
	if !errors.Is(err, chem.ErrRateSpec) {
		t.Fatalf("err = %v, want ErrRateSpec", err)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	cmd := Check{Source: filepath.Join(t.TempDir(), "absent.yaml")}
	if err := cmd.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDump_Renders(t *testing.T) {
	path := writeNetwork(t, `
species: [A, B, C]
reactions: "A + B <=> C : 1e-10"
`)

	cmd := Dump{Source: path}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
}
