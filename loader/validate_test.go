package loader

import (
	"strings"
	"testing"

	"github.com/mkarlsen/roomforge/types"
	"github.com/mkarlsen/roomforge/world"
)

func validDefs() *world.Defs {
	return &world.Defs{
		Catalog: types.CatalogDef{Title: "Test"},
		RoomTypes: map[string]types.RoomTypeDef{
			"well": {
				ID:            "well",
				Variants:      []types.FurnitureVariant{{SizeIndex: 0, Width: 1, Height: 1}},
				PreferredSide: types.SideTop,
			},
		},
		Materials: map[types.Material]types.MaterialDef{
			"wood": {ID: "wood"},
		},
	}
}

func TestValidate_AcceptsValidDefs(t *testing.T) {
	if err := validate(validDefs()); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidate_RequiresTitle(t *testing.T) {
	defs := validDefs()
	defs.Catalog.Title = ""
	assertValidationError(t, defs, "Catalog.Title")
}

func TestValidate_RequiresVariants(t *testing.T) {
	defs := validDefs()
	rt := defs.RoomTypes["well"]
	rt.Variants = nil
	defs.RoomTypes["well"] = rt
	assertValidationError(t, defs, "no furniture variants")
}

func TestValidate_RejectsBadSide(t *testing.T) {
	defs := validDefs()
	rt := defs.RoomTypes["well"]
	rt.PreferredSide = "north"
	defs.RoomTypes["well"] = rt
	assertValidationError(t, defs, "preferred_side")
}

func TestValidate_RejectsUndefinedMaterial(t *testing.T) {
	defs := validDefs()
	rt := defs.RoomTypes["well"]
	rt.Materials = []types.Material{"glass"}
	defs.RoomTypes["well"] = rt
	assertValidationError(t, defs, "undefined material")
}

func TestValidate_RejectsFixedShapeWithManyVariants(t *testing.T) {
	defs := validDefs()
	rt := defs.RoomTypes["well"]
	rt.FixedShape = true
	rt.FixedWidth = 3
	rt.FixedHeight = 3
	rt.Variants = []types.FurnitureVariant{
		{SizeIndex: 0, Width: 1, Height: 1},
		{SizeIndex: 1, Width: 2, Height: 1},
	}
	defs.RoomTypes["well"] = rt
	assertValidationError(t, defs, "fixed-shape")
}

func TestValidate_RejectsAllowListOutOfRange(t *testing.T) {
	defs := validDefs()
	rt := defs.RoomTypes["well"]
	rt.AllowedVariants = []int{7}
	defs.RoomTypes["well"] = rt
	assertValidationError(t, defs, "allow-list")
}

func TestValidate_NonAscendingVariantsIsOnlyAWarning(t *testing.T) {
	defs := validDefs()
	rt := defs.RoomTypes["well"]
	rt.Variants = []types.FurnitureVariant{
		{SizeIndex: 0, Width: 3, Height: 3},
		{SizeIndex: 1, Width: 1, Height: 1},
	}
	defs.RoomTypes["well"] = rt
	// The upstream catalog data breaks this ordering in places; loading
	// must still succeed.
	if err := validate(defs); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func assertValidationError(t *testing.T, defs *world.Defs, fragment string) {
	t.Helper()
	err := validate(defs)
	if err == nil {
		t.Fatalf("expected a validation error mentioning %q", fragment)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Errorf("error %q does not mention %q", err.Error(), fragment)
	}
}
