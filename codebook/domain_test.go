package codebook

import "testing"

func TestForRegistryID(t *testing.T) {
	cases := []struct {
		id   byte
		name string
	}{
		{0x01, "NAV-1"}, {0x02, "PERCEPT-1"}, {0x03, "MANIP-1"}, {0x04, "COMM-1"},
		{0x05, "DIAG-1"}, {0x06, "PLAN-1"}, {0x07, "SAFETY-1"},
	}
	for _, c := range cases {
		d, ok := ForRegistryID(c.id)
		if !ok {
			t.Errorf("ForRegistryID(%#x): not found", c.id)
			continue
		}
		if d.Name != c.name {
			t.Errorf("ForRegistryID(%#x).Name = %q, want %q", c.id, d.Name, c.name)
		}
	}
	if _, ok := ForRegistryID(0xFF); ok {
		t.Error("ForRegistryID(0xFF): expected not found")
	}
}

func TestDomainLookup(t *testing.T) {
	e, ok := NAV1.Lookup(0x0002)
	if !ok || e.Mnemonic != "HEADING" {
		t.Errorf("NAV1.Lookup(0x0002) = %+v, %v, want HEADING", e, ok)
	}
	if _, ok := NAV1.Lookup(0xFFFF); ok {
		t.Error("NAV1.Lookup(0xFFFF): expected miss")
	}
}

func TestAllDomainsNonEmpty(t *testing.T) {
	for _, d := range Registry {
		if d.Len() == 0 {
			t.Errorf("domain %s has no entries", d.Name)
		}
		seen := make(map[uint16]bool)
		for _, e := range d.Entries {
			if seen[e.Code] {
				t.Errorf("domain %s has duplicate code %#x", d.Name, e.Code)
			}
			seen[e.Code] = true
			if e.Mnemonic == "" {
				t.Errorf("domain %s code %#x has empty mnemonic", d.Name, e.Code)
			}
		}
	}
}
