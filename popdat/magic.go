// Package popdat implements the container, codec, and animation-script
// tooling for both generations of the .DAT archive format.
package popdat

// Type is the symbolic content type of an EntryList, resolved from the
// raw on-disk magic for v2 containers (or forced to TypeBIN for v1).
type Type int

const (
	TypeBIN Type = iota
	TypeCustom
	TypeFont
	TypeFrame
	TypeCGAPal
	TypeSVGAPal
	TypeTGAPal
	TypePiece
	TypePSL
	TypeScreen
	TypeShape
	TypeShapePal
	TypeText
	TypeSound
	TypeSequence
	TypeTextAlt
	TypeLevel
	TypeUnknown
)

func (t Type) String() string {
	switch t {
	case TypeBIN:
		return "bin"
	case TypeCustom:
		return "custom"
	case TypeFont:
		return "font"
	case TypeFrame:
		return "frame"
	case TypeCGAPal:
		return "cga_pal"
	case TypeSVGAPal:
		return "svga_pal"
	case TypeTGAPal:
		return "tga_pal"
	case TypePiece:
		return "piece"
	case TypePSL:
		return "psl"
	case TypeScreen:
		return "screen"
	case TypeShape:
		return "shape"
	case TypeShapePal:
		return "shape_pal"
	case TypeText:
		return "text"
	case TypeSound:
		return "sound"
	case TypeSequence:
		return "sequence"
	case TypeTextAlt:
		return "text_alt"
	case TypeLevel:
		return "level"
	default:
		return "unknown"
	}
}

// fourCC packs four bytes into the little-endian magic value stored on
// disk.
func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// magicTable maps each raw on-disk magic value (as read in file order,
// little-endian) to its symbolic Type. The readable tag is the reverse
// of the four on-disk bytes; the literal byte order is written out here
// rather than derived so the mapping can be audited against a hex dump.
var magicTable = map[uint32]Type{
	fourCC('T', 'S', 'U', 'C'): TypeCustom,
	fourCC('T', 'N', 'O', 'F'): TypeFont,
	fourCC('M', 'A', 'R', 'F'): TypeFrame,
	fourCC('C', 'L', 'A', 'P'): TypeCGAPal,
	fourCC('S', 'L', 'A', 'P'): TypeSVGAPal,
	fourCC('T', 'L', 'A', 'P'): TypeTGAPal,
	fourCC('C', 'E', 'I', 'P'): TypePiece,
	fourCC('L', 'S', 'P', 0):   TypePSL,
	fourCC('R', 'C', 'S', 0):   TypeScreen,
	fourCC('P', 'A', 'H', 'S'): TypeShape,
	fourCC('L', 'P', 'H', 'S'): TypeShapePal,
	fourCC('L', 'R', 'T', 'S'): TypeText,
	fourCC('D', 'N', 'S', 0):   TypeSound,
	fourCC('S', 'Q', 'E', 'S'): TypeSequence,
	fourCC('4', 'T', 'X', 'T'): TypeTextAlt,
	fourCC(0, 0, 0, 0):         TypeLevel,
}

// typeFromMagic resolves a raw footer-header magic to a symbolic Type,
// returning TypeUnknown for anything not in magicTable.
func typeFromMagic(magic [4]byte) Type {
	raw := fourCC(magic[0], magic[1], magic[2], magic[3])
	if t, ok := magicTable[raw]; ok {
		return t
	}
	return TypeUnknown
}
