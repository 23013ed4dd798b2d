package popdat

import (
	"bufio"
	"strconv"
	"strings"
)

// pendingPatch is a forward reference recorded during assembly and
// resolved once every animation's header has been seen. A ":sub" suffix
// on a target is parsed purely for diagnostics; the bytecode has no
// agreed encoding for a sub-position, so the slot always gets the bare
// animation id.
type pendingPatch struct {
	animIdx    int
	byteOffset int
	target     string
	subTarget  string
}

// ParseScript assembles a text listing into Animation values with
// resolved numeric ids embedded in their bytecode. Assembly aborts with
// an AssemblyError (no partial output) on any unknown mnemonic or
// unresolved label.
func ParseScript(text string) ([]Animation, Warnings, error) {
	var anims []Animation
	var patches []pendingPatch
	var warnings Warnings

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	curAnim := -1

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		for _, stmt := range splitStatements(raw) {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}

			if strings.HasPrefix(stmt, "[") {
				name := strings.TrimSuffix(strings.TrimPrefix(stmt, "["), "]")
				id, ok := animIDFromLabel(name)
				if !ok {
					return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse header", Err: errUnresolvedAnim}
				}
				anims = append(anims, Animation{ID: id, ScriptName: name})
				curAnim = len(anims) - 1
				continue
			}

			if curAnim == -1 {
				return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse", Err: errUnresolvedAnim}
			}

			fields := strings.Fields(stmt)
			if len(fields) == 0 {
				continue
			}
			mnemonic, args := fields[0], fields[1:]

			if mnemonic == "ShowFrame" {
				if len(args) < 1 {
					return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse ShowFrame", Err: errMissingOperand}
				}
				v, err := strconv.Atoi(args[0])
				if err == nil && (v < 0 || v > 0x7FFF) {
					err = strconv.ErrRange
				}
				if err != nil {
					return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse ShowFrame", Err: err}
				}
				appendOpcode(&anims[curAnim], int16(v))
				continue
			}

			def, ok := mnemonicTable[mnemonic]
			if !ok {
				return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse", Err: errUnresolvedMnemonic(mnemonic)}
			}
			if len(args) < def.Operands {
				return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse " + mnemonic, Err: errMissingOperand}
			}
			appendOpcode(&anims[curAnim], def.Code)

			switch def.Kind {
			case kindPlain:
				// no operands
			case kindAnimRef:
				offset := len(anims[curAnim].Opcodes)
				appendOpcode(&anims[curAnim], 0) // reserved, back-patched below
				target, sub := splitSubLabel(args[0])
				patches = append(patches, pendingPatch{animIdx: curAnim, byteOffset: offset, target: target, subTarget: sub})
			case kindAction:
				if v, ok := actionValue(args[0]); ok {
					appendOpcode(&anims[curAnim], v)
				} else {
					n, err := strconv.Atoi(args[0])
					if err != nil {
						return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse Action", Err: err}
					}
					appendOpcode(&anims[curAnim], int16(n))
				}
			case kindRandomBranch:
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse RandomBranch", Err: err}
				}
				appendOpcode(&anims[curAnim], int16(v))
				for _, a := range args[1:3] {
					offset := len(anims[curAnim].Opcodes)
					appendOpcode(&anims[curAnim], 0)
					target, sub := splitSubLabel(a)
					patches = append(patches, pendingPatch{animIdx: curAnim, byteOffset: offset, target: target, subTarget: sub})
				}
			default: // kindValues
				for _, a := range args[:def.Operands] {
					v, err := strconv.Atoi(a)
					if err != nil {
						return nil, warnings, &AssemblyError{Line: lineNo, Op: "parse operand", Err: err}
					}
					appendOpcode(&anims[curAnim], int16(v))
				}
			}
		}
	}

	for _, p := range patches {
		id, ok := animIDFromLabel(p.target)
		if !ok {
			return nil, warnings, &AssemblyError{Op: "resolve label", Err: errUnresolvedAnim}
		}
		if p.subTarget != "" {
			warnings = warnings.add("label", "sub-offset target %q on %q is not assigned a concrete semantics; ignoring it", p.subTarget, p.target)
		}
		putOpcodeAt(&anims[p.animIdx], p.byteOffset, int16(id))
	}

	return anims, warnings, nil
}

func splitSubLabel(s string) (target, sub string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// splitStatements drops '#' comments and splits on the ';' statement
// separator; newline splitting is the scanner's job.
func splitStatements(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Split(line, ";")
}

func appendOpcode(a *Animation, v int16) {
	a.Opcodes = append(a.Opcodes, byte(uint16(v)), byte(uint16(v)>>8))
}

func putOpcodeAt(a *Animation, offset int, v int16) {
	a.Opcodes[offset] = byte(uint16(v))
	a.Opcodes[offset+1] = byte(uint16(v) >> 8)
}

func errUnresolvedMnemonic(m string) error {
	return &mnemonicError{m}
}

type mnemonicError struct{ mnemonic string }

func (e *mnemonicError) Error() string { return "unknown mnemonic " + e.mnemonic }
