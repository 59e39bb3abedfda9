package codebook

import "testing"

func TestBaseTableCoverage(t *testing.T) {
	if len(Base) != 256 {
		t.Fatalf("Base has %d entries, want 256", len(Base))
	}
	cases := []struct {
		code     byte
		mnemonic string
		category string
	}{
		{0x00, "START_UTTERANCE", "frame_control"},
		{0x0D, "ECHO_REPLY", "frame_control"},
		{0x1F, "TYPE_NULL", "type_marker"},
		{0x20, "BEGIN_STRUCT", "structure"},
		{0x6D, "T_NOW", "temporal"},
		{0x7F, "UNDESIRED", "modality"},
		{0x80, "QUERY", "pragmatic"},
		{0x9E, "TTL", "meta"},
		{0xBF, "DISTANCE", "arithmetic"},
		{0xF0, "ESCAPE_L1", "escape"},
		{0xFE, "NOP", "escape"},
	}
	for _, c := range cases {
		if Base[c.code].Mnemonic != c.mnemonic {
			t.Errorf("Base[%#x].Mnemonic = %q, want %q", c.code, Base[c.code].Mnemonic, c.mnemonic)
		}
		if Base[c.code].Category != c.category {
			t.Errorf("Base[%#x].Category = %q, want %q", c.code, Base[c.code].Category, c.category)
		}
	}
}

func TestBaseReservedRange(t *testing.T) {
	for code := 0xC0; code <= 0xEF; code++ {
		if Base[code].Category != "reserved" {
			t.Errorf("Base[%#x].Category = %q, want reserved", code, Base[code].Category)
		}
		if Base[code].Mnemonic != "RESERVED" {
			t.Errorf("Base[%#x].Mnemonic = %q, want RESERVED", code, Base[code].Mnemonic)
		}
	}
}

func TestMnemonicFor(t *testing.T) {
	if got := MnemonicFor(0x83); got != "COMMAND" {
		t.Errorf("MnemonicFor(0x83) = %q, want COMMAND", got)
	}
}
