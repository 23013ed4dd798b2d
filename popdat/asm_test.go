package popdat

import "testing"

// TestParseScript_SubLabelWarns: a ":sub" suffix on an Anim target is
// parsed for diagnostics but adds nothing to the bytecode (only the bare
// animation id is written), with a Warning rather than an error.
func TestParseScript_SubLabelWarns(t *testing.T) {
	text := "[POP2_001_Foo]\r\nAnim POP2_002_Stand:mid"
	anims, warnings, err := ParseScript(text)
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	if len(warnings) == 0 {
		t.Error("ParseScript() expected a sub-offset warning, got none")
	}
	want := encodeOpcodes(t, op(-1, 2))
	if string(anims[0].Opcodes) != string(want) {
		t.Errorf("Opcodes = % x, want % x (sub-offset must not change the bytecode)", anims[0].Opcodes, want)
	}
}

func TestParseScript_InstructionBeforeAnyHeader(t *testing.T) {
	_, _, err := ParseScript("ShowFrame 1")
	if err == nil {
		t.Fatal("ParseScript() expected an error for an instruction with no preceding [label], got nil")
	}
}

func TestParseScript_MissingOperand(t *testing.T) {
	for _, text := range []string{
		"[POP2_001_Foo]\r\nShowFrame",
		"[POP2_001_Foo]\r\nMoveX",
		"[POP2_001_Foo]\r\nRandomBranch 50 POP2_002_Stand",
	} {
		if _, _, err := ParseScript(text); err == nil {
			t.Errorf("ParseScript(%q) expected a missing-operand error, got nil", text)
		}
	}
}

func TestParseScript_UnresolvedLabel(t *testing.T) {
	_, _, err := ParseScript("[POP2_001_Foo]\r\nAnim not_a_label")
	if err == nil {
		t.Fatal("ParseScript() expected an error for an unresolvable Anim target, got nil")
	}
}
