package migration

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoad_OrdersByVersion(t *testing.T) {
	src := fstest.MapFS{
		"V10__later.sql":      {Data: []byte("SELECT 10;")},
		"V2__admins.sql":      {Data: []byte("SELECT 2;")},
		"V1__create.sql":      {Data: []byte("  SELECT 1;  \n")},
		"README.md":           {Data: []byte("ignored")},
		"V3__notes.txt":       {Data: []byte("ignored")},
		"nested/V4__skip.sql": {Data: []byte("SELECT 4;")},
	}

	migs, err := Load(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 || migs[2].Version != 10 {
		t.Fatalf("unexpected order: %d %d %d", migs[0].Version, migs[1].Version, migs[2].Version)
	}
	if migs[0].SQL != "SELECT 1;" {
		t.Fatalf("expected trimmed SQL, got %q", migs[0].SQL)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct checksums")
	}
}

func TestLoad_DuplicateVersion(t *testing.T) {
	src := fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 1;")},
	}
	_, err := Load(src)
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	src := fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}}
	if _, err := Load(src); err == nil {
		t.Fatalf("expected error for empty migration")
	}
}

func TestEmbedded_ContainsSchema(t *testing.T) {
	migs, err := Load(Embedded())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) < 2 {
		t.Fatalf("expected embedded migrations, got %d", len(migs))
	}
	if !strings.Contains(migs[0].SQL, "CREATE TABLE IF NOT EXISTS company") {
		t.Fatalf("expected company table in first migration")
	}
	if !strings.Contains(migs[0].SQL, `"values" TEXT`) {
		t.Fatalf("expected reserved column to be quoted")
	}
}
