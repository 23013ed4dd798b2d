package popdat

import (
	"encoding/binary"
	"fmt"
	"io"
)

// byteReader is a small cursor over an in-memory byte slice for the
// packed, no-padding little-endian records used throughout the
// container format. Most records are read out of an already-buffered
// payload rather than directly off a file handle, so a slice cursor
// fits better than binary.Read over a stream.
type byteReader struct {
	b   []byte
	pos int
}

func newByteReader(b []byte) *byteReader { return &byteReader{b: b} }

func (r *byteReader) remaining() int { return len(r.b) - r.pos }

func (r *byteReader) need(n int) error {
	if r.remaining() < n {
		return fmt.Errorf("popdat: short read: need %d bytes, have %d", n, r.remaining())
	}
	return nil
}

func (r *byteReader) u8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.pos]
	r.pos++
	return v, nil
}

func (r *byteReader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *byteReader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *byteReader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *byteReader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *byteReader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.b[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

func (r *byteReader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// readLE16 and readLE32 read unaligned little-endian integers straight
// off a header io.Reader, for the small fixed-size header records that
// are read directly off the container's file handle rather than out of
// an already-loaded buffer (the container header and v1/v2 footer
// preambles).
func readLE16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func readLE32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// putLE16 and putLE32 are the write-side counterparts used by the
// sequence-container rewrite path.
func putLE16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func putLE32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
