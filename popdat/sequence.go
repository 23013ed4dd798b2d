package popdat

import (
	"bytes"
)

const (
	sizeofContainerHeader = 6  // footer_offset u32 + footer_size u16
	sizeofMasterIndex     = 2  // footer_count u16
	sizeofFooterHeader    = 6  // magic [4]byte + footer_sub_offset u16
	sizeofFooter          = 2  // entry_count u16
	sizeofEntryV2         = 11 // id u16 + offset u32 + size u16 + flags [3]byte
)

// RewriteSequenceContainer produces a fresh .DAT byte stream holding
// exactly the given animations in one SEQUENCE (SQES) typed footer,
// with freshly computed checksums, a master index, one footer header,
// and one footer.
func RewriteSequenceContainer(anims []Animation) ([]byte, error) {
	n := len(anims)

	payloadTotal := 0
	for _, a := range anims {
		payloadTotal += len(a.Opcodes) + 1
	}

	footerOffset := uint32(sizeofContainerHeader + payloadTotal)
	footerSize := uint16(sizeofMasterIndex + sizeofFooterHeader + sizeofFooter + n*sizeofEntryV2)

	var buf bytes.Buffer

	if err := putLE32(&buf, footerOffset); err != nil {
		return nil, err
	}
	if err := putLE16(&buf, footerSize); err != nil {
		return nil, err
	}

	type placed struct {
		id     uint16
		offset uint32
		size   uint16
	}
	entries := make([]placed, 0, n)
	pos := uint32(sizeofContainerHeader)

	for _, a := range anims {
		var sum byte
		for _, b := range a.Opcodes {
			sum += b
		}
		checksum := byte(0xFF - sum)
		if err := buf.WriteByte(checksum); err != nil {
			return nil, err
		}
		if _, err := buf.Write(a.Opcodes); err != nil {
			return nil, err
		}

		entries = append(entries, placed{id: a.ID, offset: pos, size: uint16(len(a.Opcodes))})
		pos += uint32(len(a.Opcodes)) + 1
	}

	if err := putLE16(&buf, uint16(1)); err != nil { // master index: footer_count
		return nil, err
	}

	magic := []byte{'S', 'Q', 'E', 'S'}
	buf.Write(magic)
	if err := putLE16(&buf, uint16(sizeofMasterIndex+sizeofFooterHeader)); err != nil { // footer_sub_offset
		return nil, err
	}

	if err := putLE16(&buf, uint16(n)); err != nil { // footer: entry_count
		return nil, err
	}

	for _, e := range entries {
		if err := putLE16(&buf, e.id); err != nil {
			return nil, err
		}
		if err := putLE32(&buf, e.offset); err != nil {
			return nil, err
		}
		if err := putLE16(&buf, e.size); err != nil {
			return nil, err
		}
		buf.Write([]byte{64, 0, 0})
	}

	return buf.Bytes(), nil
}
