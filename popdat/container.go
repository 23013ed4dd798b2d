package popdat

import (
	"fmt"
	"io"
	"os"
)

// Generation selects which footer layout a container uses. It is an
// explicit caller-supplied value rather than auto-detected: the two
// layouts are not reliably distinguishable from file content alone.
type Generation int

const (
	POP1 Generation = iota // v1: flat footer, single BIN list
	POP2                   // v2: typed footer, one list per recognized type
)

// Container is the open-to-close handle over one .DAT archive. Every
// Container is an independent per-call value; there is no process-wide
// state, so callers may hold several archives open at once.
type Container struct {
	r            io.ReadSeeker
	closer       io.Closer
	footerOffset uint32
	footerSize   uint16
	generation   Generation
	lists        []EntryList
}

// Open reads the container header and footer from the file at path and
// validates every entry against the footer bound. The returned
// Container owns the underlying file handle until Close.
func Open(path string, gen Generation) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ContainerError{Op: "open", Err: err}
	}
	c, err := OpenReader(f, gen)
	if err != nil {
		f.Close()
		return nil, err
	}
	c.closer = f
	return c, nil
}

// OpenReader is Open's stream-based counterpart, used directly by tests
// to exercise the footer parser against synthetic byte fixtures without
// touching the filesystem.
func OpenReader(r io.ReadSeeker, gen Generation) (*Container, error) {
	footerOffset, err := readLE32(r)
	if err != nil {
		return nil, &ContainerError{Op: "read header", Err: errBadMagic}
	}
	footerSize, err := readLE16(r)
	if err != nil {
		return nil, &ContainerError{Op: "read header", Err: errBadMagic}
	}

	if _, err := r.Seek(int64(footerOffset), io.SeekStart); err != nil {
		return nil, &ContainerError{Op: "seek to footer", Err: err}
	}

	c := &Container{r: r, footerOffset: footerOffset, footerSize: footerSize, generation: gen}

	switch gen {
	case POP1:
		if err := c.openV1(); err != nil {
			return nil, err
		}
	case POP2:
		if err := c.openV2(); err != nil {
			return nil, err
		}
	default:
		return nil, &ContainerError{Op: "open", Err: fmt.Errorf("unknown generation %d", gen)}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) openV1() error {
	count, err := readLE16(c.r)
	if err != nil {
		return &ContainerError{Op: "read v1 entry count", Err: err}
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < int(count); i++ {
		id, err := readLE16(c.r)
		if err != nil {
			return &ContainerError{Op: "read v1 entry", Err: err}
		}
		offset, err := readLE32(c.r)
		if err != nil {
			return &ContainerError{Op: "read v1 entry", Err: err}
		}
		size, err := readLE16(c.r)
		if err != nil {
			return &ContainerError{Op: "read v1 entry", Err: err}
		}
		entries = append(entries, Entry{ID: id, Offset: offset, Size: size})
	}

	c.lists = []EntryList{{Type: TypeBIN, Entries: entries}}
	return nil
}

func (c *Container) openV2() error {
	footerCount, err := readLE16(c.r)
	if err != nil {
		return &ContainerError{Op: "read master index", Err: err}
	}

	type footerHeader struct {
		magic     [4]byte
		subOffset uint16
	}
	headers := make([]footerHeader, 0, footerCount)
	for i := 0; i < int(footerCount); i++ {
		var magic [4]byte
		if _, err := io.ReadFull(c.r, magic[:]); err != nil {
			return &ContainerError{Op: "read footer header", Err: err}
		}
		subOffset, err := readLE16(c.r)
		if err != nil {
			return &ContainerError{Op: "read footer header", Err: err}
		}
		headers = append(headers, footerHeader{magic: magic, subOffset: subOffset})
	}

	for _, h := range headers {
		// footer_sub_offset is relative to the position of the master
		// index, i.e. to footerOffset, not to the end of the master
		// index or to the file start.
		pos := int64(c.footerOffset) + int64(h.subOffset)
		if _, err := c.r.Seek(pos, io.SeekStart); err != nil {
			return &ContainerError{Op: "seek to footer", Err: err}
		}

		count, err := readLE16(c.r)
		if err != nil {
			return &ContainerError{Op: "read footer entry count", Err: err}
		}

		entries := make([]Entry, 0, count)
		for i := 0; i < int(count); i++ {
			id, err := readLE16(c.r)
			if err != nil {
				return &ContainerError{Op: "read v2 entry", Err: err}
			}
			offset, err := readLE32(c.r)
			if err != nil {
				return &ContainerError{Op: "read v2 entry", Err: err}
			}
			size, err := readLE16(c.r)
			if err != nil {
				return &ContainerError{Op: "read v2 entry", Err: err}
			}
			var flags [3]byte
			if _, err := io.ReadFull(c.r, flags[:]); err != nil {
				return &ContainerError{Op: "read v2 entry", Err: err}
			}
			entries = append(entries, Entry{ID: id, Offset: offset, Size: size, Flags: flags})
		}

		c.lists = append(c.lists, EntryList{Type: typeFromMagic(h.magic), Entries: entries})
	}

	return nil
}

// validate enforces offset+size+1 <= footer_offset for every entry in
// every list (the +1 covers the checksum byte). A single violation
// makes the whole container invalid.
func (c *Container) validate() error {
	for _, l := range c.lists {
		for _, e := range l.Entries {
			if uint64(e.Offset)+uint64(e.Size)+1 > uint64(c.footerOffset) {
				return &ContainerError{Op: "validate", Err: errInvalidEntry}
			}
		}
	}
	return nil
}

// Close releases the underlying file handle.
func (c *Container) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// List returns the EntryList for the given type, or nil if the
// container has no list of that type (v1 containers only ever have
// TypeBIN).
func (c *Container) List(t Type) *EntryList {
	for i := range c.lists {
		if c.lists[i].Type == t {
			return &c.lists[i]
		}
	}
	return nil
}

// Lists returns every EntryList the container declared, in file order.
func (c *Container) Lists() []EntryList { return c.lists }

// ReturnFileTypeCount sums entry_count across all lists matching the
// given type; for v1 it is zero unless called with TypeBIN.
func (c *Container) ReturnFileTypeCount(t Type) int {
	n := 0
	for _, l := range c.lists {
		if l.Type == t {
			n += len(l.Entries)
		}
	}
	return n
}

// EntryByIndex and EntryByID are the two entry lookup modes. Lookup is
// local to the named list; v1 containers only ever have TypeBIN.
func (c *Container) EntryByIndex(t Type, idx int) (Entry, error) {
	l := c.List(t)
	if l == nil {
		return Entry{}, &NotFoundError{Type: t, Idx: idx}
	}
	return l.byIndex(idx)
}

func (c *Container) EntryByID(t Type, id uint16) (Entry, error) {
	l := c.List(t)
	if l == nil {
		return Entry{}, &NotFoundError{Type: t, ID: id, Idx: -1}
	}
	return l.byID(id)
}

// ReadEntry seeks to e.Offset, reads the checksum byte there and the
// payload that follows it, and verifies (checksum + sum(payload)) mod
// 256 == 0xFF. A mismatch is a Warning, never a failure: historical
// files have relaxed checksums.
func (c *Container) ReadEntry(e Entry) ([]byte, Warnings, error) {
	if _, err := c.r.Seek(int64(e.Offset), io.SeekStart); err != nil {
		return nil, nil, &ContainerError{Op: "seek to entry", Err: err}
	}

	buf := make([]byte, int(e.Size)+1)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, nil, &ContainerError{Op: "read entry", Err: err}
	}

	checksum := buf[0]
	payload := buf[1:]

	var sum byte
	for _, b := range payload {
		sum += b
	}
	var warnings Warnings
	if byte(checksum+sum) != 0xFF {
		warnings = warnings.add("checksum", "entry id=%d: checksum+sum=%d, want 0xFF", e.ID, checksum+sum)
	}

	out := make([]byte, len(payload))
	copy(out, payload)
	return out, warnings, nil
}
