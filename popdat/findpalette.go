package popdat

// FindPalette locates the container's active palette source and parses
// it into a GenericPalette: for v1, the first entry the format detector
// classifies as PAL; for v2, the first entry in whichever of CGA_PAL,
// SVGA_PAL, TGA_PAL, or SHAPE_PAL appears, in that preference order. It
// returns (nil, nil) if the container carries no palette entry. The
// palette that applies to an image is a container-wide convention, not
// something an entry declares about itself.
func FindPalette(c *Container, gen Generation) (*GenericPalette, Warnings, error) {
	if gen == POP1 {
		list := c.List(TypeBIN)
		if list == nil {
			return nil, nil, nil
		}
		for _, e := range list.Entries {
			payload, warnings, err := c.ReadEntry(e)
			if err != nil {
				return nil, warnings, err
			}
			kind, classifyWarnings := Classify(payload, false)
			warnings = append(warnings, classifyWarnings...)
			if kind != KindPAL {
				continue
			}
			pv, pvWarnings, err := ParsePaletteV1(payload)
			if err != nil {
				return nil, append(warnings, pvWarnings...), err
			}
			pal := pv.Palette()
			return &pal, append(warnings, pvWarnings...), nil
		}
		return nil, nil, nil
	}

	for _, t := range []Type{TypeCGAPal, TypeSVGAPal, TypeTGAPal, TypeShapePal} {
		list := c.List(t)
		if list == nil || len(list.Entries) == 0 {
			continue
		}
		payload, warnings, err := c.ReadEntry(list.Entries[0])
		if err != nil {
			return nil, warnings, err
		}
		if t == TypeShapePal {
			pv, err := ParsePaletteV2Shape(payload)
			if err != nil {
				return nil, warnings, err
			}
			pal := pv.Palette()
			return &pal, warnings, nil
		}
		pal, rawWarnings := ParsePaletteV2Raw(payload)
		return &pal, append(warnings, rawWarnings...), nil
	}
	return nil, nil, nil
}
