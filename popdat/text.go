package popdat

import (
	"golang.org/x/text/encoding/charmap"
)

// TranscodeCP437ToUTF8 converts a CP437-encoded text entry's bytes to
// UTF-8 for the -dump-text sibling file. The on-disk verbatim copy of
// the entry is never altered; this is purely a second, human-readable
// rendering.
func TranscodeCP437ToUTF8(raw []byte) (string, error) {
	out, err := charmap.CodePage437.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
