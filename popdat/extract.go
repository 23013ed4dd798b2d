package popdat

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExtractOptions configures the extraction walk.
type ExtractOptions struct {
	BaseDir  string
	Format   ImageFormat
	FlipY    bool
	DumpText bool
	Skip     func(outputPath string) bool // nil means "skip nothing"
	Status   StatusFunc
	// Cancel is consulted at each entry boundary; returning true stops
	// the walk early with no error. This is the cooperative, coarse
	// cancellation point the extraction loop has to expose; there is no
	// finer-grained interruption inside a single entry's decode.
	Cancel func() bool
	// Palette supplies the active GenericPalette for image decoding; the
	// caller is responsible for loading it from a preceding PAL/CGA_PAL/
	// SVGA_PAL/TGA_PAL entry, since the palette that applies to a given
	// image entry is a container-wide convention, not something a single
	// entry declares about itself.
	Palette *GenericPalette
}

// Extract walks every list in c and routes each entry to a file under
// opts.BaseDir. ImageDecodeError is recovered locally (the entry is
// skipped, a status line is emitted, and extraction continues); every
// other error aborts the walk.
func Extract(c *Container, gen Generation, opts ExtractOptions) error {
	for _, list := range c.Lists() {
		for _, e := range list.Entries {
			if opts.Cancel != nil && opts.Cancel() {
				return nil
			}
			if err := extractEntry(c, gen, list.Type, e, opts); err != nil {
				if _, ok := err.(*ImageDecodeError); ok {
					if opts.Status != nil {
						opts.Status(err.Error())
					}
					continue
				}
				return err
			}
		}
	}
	return writeSequencesSideFile(c, opts)
}

// writeSequencesSideFile emits sequences.txt into opts.BaseDir when the
// container carries a SEQUENCE list: the walk's one non-per-entry side
// file, holding the disassembled listing of every animation script.
func writeSequencesSideFile(c *Container, opts ExtractOptions) error {
	if c.List(TypeSequence) == nil {
		return nil
	}
	anims, warnings, err := ParseSequenceContainer(c)
	if err != nil {
		return err
	}
	logWarnings(opts.Status, warnings)
	text, err := Disassemble(anims)
	if err != nil {
		return err
	}
	path := filepath.Join(opts.BaseDir, "sequences.txt")
	if opts.Skip != nil && opts.Skip(path) {
		return nil
	}
	if err := os.MkdirAll(opts.BaseDir, 0o755); err != nil {
		return &ContainerError{Op: "mkdir", Err: err}
	}
	return writeAtomic(path, []byte(text))
}

func extractEntry(c *Container, gen Generation, t Type, e Entry, opts ExtractOptions) error {
	payload, warnings, err := c.ReadEntry(e)
	if err != nil {
		return err
	}
	logWarnings(opts.Status, warnings)

	var kind Kind
	if gen == POP1 {
		var classifyWarnings Warnings
		kind, classifyWarnings = Classify(payload, opts.Palette != nil)
		logWarnings(opts.Status, classifyWarnings)
	} else {
		kind = imageKindFor(gen, t, payload, opts.Palette != nil)
	}

	binExt := ".bin"
	if gen == POP1 && kind == KindPAL {
		binExt = ".pal"
	}
	binPath := outputPath(opts.BaseDir, gen, t, e, binExt)
	if opts.Skip == nil || !opts.Skip(binPath) {
		if err := os.MkdirAll(filepath.Dir(binPath), 0o755); err != nil {
			return &ContainerError{Op: "mkdir", Err: err}
		}
		if err := writeAtomic(binPath, payload); err != nil {
			return &ContainerError{Op: "write entry", Err: err}
		}
	}

	if t == TypeSound && len(payload) >= 5 && string(payload[1:5]) == "MThd" {
		midPath := outputPath(opts.BaseDir, gen, t, e, ".mid")
		if opts.Skip == nil || !opts.Skip(midPath) {
			if err := writeAtomic(midPath, payload[1:]); err != nil {
				return &ContainerError{Op: "write midi", Err: err}
			}
		}
		return nil
	}

	if (t == TypeText || t == TypeTextAlt) && opts.DumpText {
		txtPath := outputPath(opts.BaseDir, gen, t, e, ".txt.utf8")
		if opts.Skip == nil || !opts.Skip(txtPath) {
			if utf8, err := TranscodeCP437ToUTF8(payload); err == nil {
				_ = writeAtomic(txtPath, []byte(utf8))
			}
		}
		return nil
	}

	if kind != KindIMG {
		return nil
	}
	if opts.Palette == nil {
		if opts.Status != nil {
			opts.Status(fmt.Sprintf("entry id=%d: image entry with no active palette, skipping decode", e.ID))
		}
		return nil
	}

	img, err := DecodeImage(payload, opts.Palette, opts.FlipY)
	if err != nil {
		return err
	}

	imgPath := outputPath(opts.BaseDir, gen, t, e, opts.Format.ext())
	if opts.Skip != nil && opts.Skip(imgPath) {
		return nil
	}
	return EncodeRGBA(imgPath, img, opts.Format)
}

// imageKindFor decides whether an entry should be run through the image
// pipeline: v1 uses the heuristic detector; v2 entries whose list type
// implies raster content (SHAPE, SCREEN, FONT, PIECE, CUSTOM, FRAME)
// are treated as images directly, since v2's typed footers already
// declare content type.
func imageKindFor(gen Generation, t Type, payload []byte, havePalette bool) Kind {
	if gen == POP1 {
		kind, _ := Classify(payload, havePalette)
		return kind
	}
	switch t {
	case TypeShape, TypeScreen, TypeFont, TypePiece, TypeCustom, TypeFrame:
		return KindIMG
	default:
		return KindBIN
	}
}

func outputPath(base string, gen Generation, t Type, e Entry, ext string) string {
	if gen == POP1 {
		return filepath.Join(base, fmt.Sprintf("res%d%s", e.ID, ext))
	}
	name := fmt.Sprintf("res%d-%d-%d-%d%s", e.ID, e.Flags[0], e.Flags[1], e.Flags[2], ext)
	return filepath.Join(base, t.String(), name)
}
