package symboldb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-as2js/as2js/internal/diag"
)

func TestAddSaveReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db := New()
	for _, pkgName := range []string{"p1", "p2"} {
		for i := 0; i < 3; i++ {
			elemName := pkgName + "_elem"
			db.Add(pkgName, elemName+string(rune('0'+i)), Element{
				Type:     "Function",
				Filename: pkgName + ".as",
				Line:     i + 1,
			})
		}
	}
	if err := db.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := Load(path, nil)
	for _, pkgName := range []string{"p1", "p2"} {
		pkg, ok := reloaded.GetPackage(pkgName)
		if !ok {
			t.Fatalf("package %q missing after reload", pkgName)
		}
		if len(pkg) != 3 {
			t.Fatalf("package %q has %d elements, want 3", pkgName, len(pkg))
		}
	}
	found := reloaded.FindPackages("p*")
	if len(found) != 2 || found[0] != "p1" || found[1] != "p2" {
		t.Fatalf("FindPackages(p*) = %v, want [p1 p2] in insertion order", found)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	db := Load(filepath.Join(t.TempDir(), "nope.db"), nil)
	if _, ok := db.GetPackage("anything"); ok {
		t.Fatalf("expected empty database")
	}
}

func TestLoadNullIsValidEmptyDB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "null.db")
	if err := os.WriteFile(path, []byte("null"), 0o644); err != nil {
		t.Fatal(err)
	}
	db := Load(path, nil)
	if len(db.FindPackages("*")) != 0 {
		t.Fatalf("expected no packages from a null database")
	}
}

func TestRemoveDropsEmptyPackage(t *testing.T) {
	db := New()
	db.Add("pkg", "elem", Element{Type: "Class"})
	if !db.Remove("pkg", "elem") {
		t.Fatalf("Remove reported failure")
	}
	if _, ok := db.GetPackage("pkg"); ok {
		t.Fatalf("package should be gone once its last element is removed")
	}
}

func TestMalformedDatabaseReportsUnexpectedDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.db")
	if err := os.WriteFile(path, []byte("[1, 2, 3]"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx := diag.NewContext()
	db := Load(path, ctx)
	if ctx.Warnings() != 1 {
		t.Fatalf("got %d UNEXPECTED_DATABASE warnings, want 1", ctx.Warnings())
	}
	if len(db.FindPackages("*")) != 0 {
		t.Fatalf("malformed database should be treated as empty")
	}
}
