package popdat

// CompressMethod identifies one of the five single-layer image codecs.
type CompressMethod byte

const (
	MethodRawLR     CompressMethod = 0
	MethodRLELR     CompressMethod = 1
	MethodRLEColumn CompressMethod = 2
	MethodLZGLR     CompressMethod = 3
	MethodLZGColumn CompressMethod = 4
)

// cursor tracks the destination write position for a decode pass. In
// left-to-right mode it is a plain increment; in column-major mode each
// emission advances by stride bytes, and once a column is full the
// cursor snaps back to the top of the next column. Shared by the RLE
// and LZG decoders so each algorithm is written once for both layouts.
type cursor struct {
	pos         int
	dstLen      int
	stride      int
	height      int
	columnMajor bool
	stepsLeft   int
}

func newCursor(dstLen, stride, height int, columnMajor bool) *cursor {
	return &cursor{dstLen: dstLen, stride: stride, height: height, columnMajor: columnMajor, stepsLeft: height}
}

func (c *cursor) advance() {
	if !c.columnMajor {
		c.pos++
		return
	}
	c.pos += c.stride
	c.stepsLeft--
	if c.stepsLeft == 0 {
		c.pos -= c.dstLen - 1
		c.stepsLeft = c.height
	}
}

// decodeRawLR implements Method 0: a verbatim copy of dstLen bytes.
func decodeRawLR(src []byte, dstLen int) ([]byte, error) {
	if len(src) < dstLen {
		return nil, errOverrun
	}
	dst := make([]byte, dstLen)
	copy(dst, src[:dstLen])
	return dst, nil
}

// decodeRLE implements Methods 1 and 2: repeated (count int8) blocks,
// count>=0 emits count+1 literal bytes, count<0 emits the next single
// byte (-count)+1 times, terminating once dstLen bytes have been
// emitted. cur selects left-to-right or column-major placement.
func decodeRLE(src []byte, dstLen int, cur *cursor) ([]byte, error) {
	dst := make([]byte, dstLen)
	written := 0
	r := newByteReader(src)

	for written < dstLen {
		count, err := r.i8()
		if err != nil {
			return nil, errOverrun
		}
		if count >= 0 {
			n := int(count) + 1
			for i := 0; i < n; i++ {
				b, err := r.u8()
				if err != nil {
					return nil, errOverrun
				}
				if cur.pos < 0 || cur.pos >= dstLen {
					return nil, errOverrun
				}
				dst[cur.pos] = b
				cur.advance()
				written++
				if written == dstLen {
					break
				}
			}
		} else {
			b, err := r.u8()
			if err != nil {
				return nil, errOverrun
			}
			n := int(-count) + 1
			for i := 0; i < n; i++ {
				if cur.pos < 0 || cur.pos >= dstLen {
					return nil, errOverrun
				}
				dst[cur.pos] = b
				cur.advance()
				written++
				if written == dstLen {
					break
				}
			}
		}
	}
	return dst, nil
}

// lzgWindowSize is the fixed circular back-reference window used by
// both LZG variants.
const lzgWindowSize = 1024

// lzgInitialWritePos is "1024 - 0x42 = 958", the initial window write
// position for Method 3/4's byte-stream variant.
const lzgInitialWritePos = lzgWindowSize - 0x42

// decodeLZG implements Methods 3 and 4: the byte-stream LZG variant
// with a circular 1024-byte window, a rolling 16-bit flag mask refilled
// every 8 bits, and (offset,length) back-references packed as
// ci = b0<<8|b1, window_offset = ci&0x3FF, length = (ci>>10)+3.
func decodeLZG(src []byte, dstLen int, cur *cursor) ([]byte, error) {
	dst := make([]byte, dstLen)
	window := make([]byte, lzgWindowSize)
	winPos := lzgInitialWritePos

	r := newByteReader(src)
	written := 0
	var mask uint16

	refillIfNeeded := func() error {
		if mask&0xFF00 != 0 {
			return nil
		}
		b, err := r.u8()
		if err != nil {
			return err
		}
		mask = uint16(b) | 0xFF00
		return nil
	}

	emit := func(b byte) error {
		if cur.pos < 0 || cur.pos >= dstLen {
			return errOverrun
		}
		dst[cur.pos] = b
		cur.advance()
		window[winPos] = b
		winPos = (winPos + 1) % lzgWindowSize
		written++
		return nil
	}

	// Prime the mask so the first refill check fires immediately, per
	// the "refill format: mask = source_byte | 0xFF00; the 8 high bits
	// act as a sentinel" description.
	mask = 0

	for written < dstLen {
		if err := refillIfNeeded(); err != nil {
			return nil, errOverrun
		}
		flag := mask & 1
		mask >>= 1

		if flag == 1 {
			b, err := r.u8()
			if err != nil {
				return nil, errOverrun
			}
			if err := emit(b); err != nil {
				return nil, err
			}
			continue
		}

		b0, err := r.u8()
		if err != nil {
			return nil, errOverrun
		}
		b1, err := r.u8()
		if err != nil {
			return nil, errOverrun
		}
		ci := uint16(b0)<<8 | uint16(b1)
		offset := int(ci & 0x3FF)
		length := int(ci>>10) + 3

		for i := 0; i < length && written < dstLen; i++ {
			b := window[(offset+i)%lzgWindowSize]
			if err := emit(b); err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}

// Decompress dispatches to the codec named by method, producing exactly
// dstLen bytes for the given width/height (width/height are only
// consulted for the column-major variants' stride).
func Decompress(method CompressMethod, src []byte, dstLen, width, height int) ([]byte, error) {
	switch method {
	case MethodRawLR:
		return decodeRawLR(src, dstLen)
	case MethodRLELR:
		return decodeRLE(src, dstLen, newCursor(dstLen, 0, 0, false))
	case MethodRLEColumn:
		return decodeRLE(src, dstLen, newCursor(dstLen, width, height, true))
	case MethodLZGLR:
		return decodeLZG(src, dstLen, newCursor(dstLen, 0, 0, false))
	case MethodLZGColumn:
		return decodeLZG(src, dstLen, newCursor(dstLen, width, height, true))
	default:
		return nil, errUnknownMethod
	}
}
