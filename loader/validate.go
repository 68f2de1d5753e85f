package loader

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mkarlsen/roomforge/types"
	"github.com/mkarlsen/roomforge/world"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validSides = map[types.Side]bool{
	types.SideTop:    true,
	types.SideBottom: true,
	types.SideLeft:   true,
	types.SideRight:  true,
}

// validate checks the compiled defs for referential integrity and
// consistency.
func validate(defs *world.Defs) error {
	ve := &ValidationError{}

	// Catalog title required.
	if defs.Catalog.Title == "" {
		ve.Errors = append(ve.Errors, "Catalog.Title is required")
	}

	if len(defs.RoomTypes) == 0 {
		ve.Errors = append(ve.Errors, "at least one RoomType is required")
	}
	if len(defs.Materials) == 0 {
		ve.Errors = append(ve.Errors, "at least one Material is required")
	}

	// Stable iteration so error output is reproducible.
	ids := make([]string, 0, len(defs.RoomTypes))
	for id := range defs.RoomTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rt := defs.RoomTypes[id]
		validateRoomType(rt, defs, ve)
	}

	// Warnings go to stderr; only errors fail the load.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateRoomType(rt types.RoomTypeDef, defs *world.Defs, ve *ValidationError) {
	if len(rt.Variants) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"room type %q has no furniture variants", rt.ID))
	}
	for _, v := range rt.Variants {
		if v.Width <= 0 || v.Height <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room type %q variant %d has non-positive size %dx%d",
				rt.ID, v.SizeIndex, v.Width, v.Height))
		}
	}
	// The "largest fitting" rule assumes footprint grows with SizeIndex.
	// The upstream data does not always honor this, so it is a warning.
	for i := 1; i < len(rt.Variants); i++ {
		prev := rt.Variants[i-1]
		cur := rt.Variants[i]
		if cur.Width*cur.Height <= prev.Width*prev.Height {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"room type %q variants not ascending by footprint at index %d",
				rt.ID, cur.SizeIndex))
		}
	}

	if !validSides[rt.PreferredSide] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"room type %q has invalid preferred_side %q", rt.ID, rt.PreferredSide))
	}

	for _, m := range rt.Materials {
		if _, ok := defs.Materials[m]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room type %q references undefined material %q", rt.ID, m))
		}
	}

	if rt.FixedShape {
		if rt.FixedWidth <= 0 || rt.FixedHeight <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room type %q fixed_shape needs positive width and height", rt.ID))
		}
		if len(rt.Variants) > 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room type %q is fixed-shape but lists %d variants", rt.ID, len(rt.Variants)))
		}
	}

	known := map[int]bool{}
	for _, v := range rt.Variants {
		known[v.SizeIndex] = true
	}
	for _, idx := range rt.AllowedVariants {
		if !known[idx] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room type %q allow-list references unknown variant index %d", rt.ID, idx))
		}
	}

	if rt.UpgradeLevels < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"room type %q has negative upgrade_levels", rt.ID))
	}
}
