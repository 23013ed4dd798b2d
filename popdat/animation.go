package popdat

// Animation is one POP2 animation script: a numeric id (parsed from the
// first digit run of its script name after the "POP2_" prefix) and its
// raw bytecode: a sequence of signed 16-bit opcodes packed little-endian.
type Animation struct {
	ID         uint16
	ScriptName string
	Opcodes    []byte
}

// ParseSequenceContainer reads every entry in a SEQUENCE typed footer as
// an Animation, in entry order. It does not attempt to resolve script
// names (v2 entries carry no name, only an id); ScriptName is left empty
// and Disassemble renders each label from the id alone.
func ParseSequenceContainer(c *Container) ([]Animation, Warnings, error) {
	list := c.List(TypeSequence)
	if list == nil {
		return nil, nil, &NotFoundError{Type: TypeSequence, Idx: -1}
	}

	var anims []Animation
	var warnings Warnings
	for _, e := range list.Entries {
		payload, w, err := c.ReadEntry(e)
		if err != nil {
			return nil, warnings, err
		}
		warnings = append(warnings, w...)
		anims = append(anims, Animation{ID: e.ID, Opcodes: payload})
	}
	return anims, warnings, nil
}
