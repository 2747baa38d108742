package chem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()

	if err := os.WriteFile(path, []byte("0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveRateFiles(t *testing.T) {
	tests := []struct {
		name   string
		create []string // file names created under the temp dir
		want   string   // expected identifier after resolution
		fail   bool
	}{
		{
			name:   "bare identifier wins",
			create: []string{"ioniz1", "ioniz1.txt"},
			want:   "ioniz1",
		},
		{
			name:   "txt before csv",
			create: []string{"ioniz1.txt", "ioniz1.csv"},
			want:   "ioniz1.txt",
		},
		{
			name:   "csv before dat",
			create: []string{"ioniz1.csv", "ioniz1.dat"},
			want:   "ioniz1.csv",
		},
		{
			name:   "dat as last resort",
			create: []string{"ioniz1.dat"},
			want:   "ioniz1.dat",
		},
		{
			name: "no file is fatal",
			fail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			for _, f := range tt.create {
				touch(t, filepath.Join(dir, f))
			}

			n, err := Parse("em + Ar -> em + em + Ar+ : EEDF (ioniz1)",
				WithSpecies("em", "Ar+"),
				WithFileLocation(dir),
			)

			if tt.fail {
				if !errors.Is(err, ErrRateFile) {
					t.Fatalf("err = %v, want ErrRateFile", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if got := n.Reactions[0].Identifier; got != tt.want {
				t.Errorf("identifier = %q, want %q", got, tt.want)
			}
		})
	}
}

// Only EEDF reactions with an identifier probe the filesystem.
func TestResolveRateFiles_SkipsUnidentified(t *testing.T) {
	_, err := Parse("em + Ar -> em + em + Ar+ : EEDF",
		WithSpecies("em", "Ar+"),
		WithFileLocation(t.TempDir()),
	)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
}

func TestResolveRateFiles_ConstantIgnoresIdentifier(t *testing.T) {
	// A parenthesized tag on a constant-rate reaction names the reaction
	// but resolves no file.
	_, err := Parse("A + B -> C : 1e-10 (tagged)",
		WithSpecies("A", "B", "C"),
		WithFileLocation(t.TempDir()),
	)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
}
