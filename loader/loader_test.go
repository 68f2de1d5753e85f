package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkarlsen/roomforge/types"
)

func TestLoad_MinimalCatalog(t *testing.T) {
	defs, err := Load("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if defs.Catalog.Title != "Minimal Test Catalog" {
		t.Errorf("Title = %q, want %q", defs.Catalog.Title, "Minimal Test Catalog")
	}
	rt, ok := defs.RoomType("warehouse")
	if !ok {
		t.Fatal("room type 'warehouse' not found")
	}
	if len(rt.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(rt.Variants))
	}
	// SizeIndex follows listed order.
	for i, v := range rt.Variants {
		if v.SizeIndex != i {
			t.Errorf("variant %d has SizeIndex %d", i, v.SizeIndex)
		}
	}
	if rt.Variants[2].Width != 4 || rt.Variants[2].Height != 1 {
		t.Errorf("variant 2 = %dx%d, want 4x1", rt.Variants[2].Width, rt.Variants[2].Height)
	}
	if rt.PreferredSide != types.SideTop {
		t.Errorf("preferred side = %q", rt.PreferredSide)
	}
}

func TestLoad_FullCatalog(t *testing.T) {
	defs, err := Load("testdata/full")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if defs.Catalog.Author != "Tester" {
		t.Errorf("Author = %q", defs.Catalog.Author)
	}
	if len(defs.RoomTypes) != 3 {
		t.Errorf("expected 3 room types, got %d", len(defs.RoomTypes))
	}
	if len(defs.Materials) != 2 {
		t.Errorf("expected 2 materials, got %d", len(defs.Materials))
	}

	hearth, _ := defs.RoomType("hearth")
	if !hearth.FixedShape || hearth.FixedWidth != 5 || hearth.FixedHeight != 5 {
		t.Errorf("hearth fixed shape = %v %dx%d, want 5x5",
			hearth.FixedShape, hearth.FixedWidth, hearth.FixedHeight)
	}
	if len(hearth.Materials) != 1 || hearth.Materials[0] != "stone" {
		t.Errorf("hearth materials = %v", hearth.Materials)
	}

	farm, _ := defs.RoomType("farm")
	if farm.UpgradeLevels != 2 {
		t.Errorf("farm upgrade levels = %d", farm.UpgradeLevels)
	}
	if farm.PreferredSide != types.SideBottom {
		t.Errorf("farm preferred side = %q", farm.PreferredSide)
	}

	// The allow-list trims the home variants the type is not designed for.
	home := defs.VariantsFor("home")
	if len(home) != 3 {
		t.Fatalf("home variants after allow-list = %d, want 3", len(home))
	}
	if home[2].SizeIndex != 2 {
		t.Errorf("largest allowed home variant index = %d, want 2", home[2].SizeIndex)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	if _, err := Load("testdata/does_not_exist"); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Error("expected an error for a directory without .lua files")
	}
}

func TestLoad_MissingCatalogBlock(t *testing.T) {
	dir := writeCatalog(t, `
Material "wood" { name = "Wood" }
RoomType "shed" { variants = { {1, 1} } }
`)
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "Catalog{}") {
		t.Errorf("got %v, want missing Catalog{} error", err)
	}
}

func TestLoad_BrokenLua(t *testing.T) {
	dir := writeCatalog(t, `RoomType "shed" {{`)
	if _, err := Load(dir); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestLoad_SandboxBlocksFileAccess(t *testing.T) {
	dir := writeCatalog(t, `
Catalog { title = "Escape" }
Material "wood" { name = "Wood" }
RoomType "shed" { variants = { {1, 1} } }
dofile("/etc/passwd")
`)
	if _, err := Load(dir); err == nil {
		t.Error("expected dofile to be unavailable in the sandbox")
	}
}

// writeCatalog writes a single catalog.lua into a temp dir.
func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return dir
}
