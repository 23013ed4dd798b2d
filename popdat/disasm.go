package popdat

import (
	"fmt"
	"strconv"
	"strings"
)

// labelFor renders the canonical POP2_NNN[_Label] name for an animation
// id, consulting knownAnimNames for the optional suffix.
func labelFor(id uint16) string {
	if name, ok := knownAnimNames[id]; ok {
		return fmt.Sprintf("POP2_%03d_%s", id, name)
	}
	return fmt.Sprintf("POP2_%03d", id)
}

// animIDFromLabel parses the numeric id from the first digit run of a
// script name or label after any leading "POP2_" prefix, leading zeros
// stripped.
func animIDFromLabel(s string) (uint16, bool) {
	s = strings.TrimPrefix(s, "POP2_")
	start := -1
	end := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
			end = i + 1
		} else if start != -1 {
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimLeft(s[start:end], "0"), 10, 16)
	if err != nil {
		// All zeros (e.g. "POP2_000") trims to empty; that's id 0.
		if s[start:end] == strings.Repeat("0", end-start) {
			return 0, true
		}
		return 0, false
	}
	return uint16(v), true
}

// disassembleOne renders one animation's bytecode as a sequence of
// mnemonic lines, without its header or trailing separator.
func disassembleOne(opcodes []byte) ([]string, error) {
	r := newByteReader(opcodes)
	var lines []string

	for r.remaining() >= 2 {
		raw, err := r.i16()
		if err != nil {
			return nil, &AssemblyError{Op: "disassemble", Err: err}
		}

		if raw >= 0 {
			lines = append(lines, fmt.Sprintf("ShowFrame %d", raw))
			continue
		}

		def, ok := opcodeTable[raw]
		if !ok {
			return nil, &AssemblyError{Op: "disassemble", Err: fmt.Errorf("unrecognized opcode %d", raw)}
		}

		operands := make([]int16, def.Operands)
		for i := range operands {
			v, err := r.i16()
			if err != nil {
				return nil, &AssemblyError{Op: "disassemble", Err: err}
			}
			operands[i] = v
		}

		switch def.Kind {
		case kindPlain:
			lines = append(lines, def.Mnemonic)
		case kindAnimRef:
			lines = append(lines, fmt.Sprintf("%s %s", def.Mnemonic, labelFor(uint16(operands[0]))))
		case kindAction:
			lines = append(lines, fmt.Sprintf("%s %s", def.Mnemonic, actionName(operands[0])))
		case kindRandomBranch:
			lines = append(lines, fmt.Sprintf("%s %d %s %s", def.Mnemonic, operands[0], labelFor(uint16(operands[1])), labelFor(uint16(operands[2]))))
		default: // kindValues
			parts := make([]string, len(operands))
			for i, v := range operands {
				parts[i] = strconv.Itoa(int(v))
			}
			lines = append(lines, fmt.Sprintf("%s %s", def.Mnemonic, strings.Join(parts, " ")))
		}
	}
	return lines, nil
}

// Disassemble renders every animation in anims as a text listing: one
// [POP2_id[_Label]] header per animation, CRLF line endings, an empty
// line between animations.
func Disassemble(anims []Animation) (string, error) {
	var blocks []string
	for _, a := range anims {
		lines, err := disassembleOne(a.Opcodes)
		if err != nil {
			return "", err
		}
		block := append([]string{"[" + labelFor(a.ID) + "]"}, lines...)
		blocks = append(blocks, strings.Join(block, "\r\n"))
	}
	return strings.Join(blocks, "\r\n\r\n"), nil
}
