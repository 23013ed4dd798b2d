package popdat

// Entry is one addressable blob inside a container, identified by
// (list type, id) and physically located at (offset, size). The byte at
// offset is a checksum such that sum(checksum, payload) mod 256 == 0xFF;
// the size payload bytes follow it at offset+1.
type Entry struct {
	ID     uint16
	Offset uint32
	Size   uint16
	Flags  [3]byte
}

// EntryList is an ordered sequence of entries sharing one type tag. A v1
// container always has exactly one list of TypeBIN; a v2 container has
// one list per type named in its master index.
type EntryList struct {
	Type    Type
	Entries []Entry
}

func (l *EntryList) byIndex(idx int) (Entry, error) {
	if idx < 0 || idx >= len(l.Entries) {
		return Entry{}, &NotFoundError{Type: l.Type, Idx: idx}
	}
	return l.Entries[idx], nil
}

func (l *EntryList) byID(id uint16) (Entry, error) {
	for _, e := range l.Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, &NotFoundError{Type: l.Type, ID: id, Idx: -1}
}
