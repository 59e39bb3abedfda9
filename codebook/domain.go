/*
NAME
  domain.go

DESCRIPTION
  Domain sub-codebooks: constant lookup tables of DomainEntry, indexed by
  an 8-bit registry ID and searched by 16-bit code. These are lookup
  data, ported faithfully from the reference implementation rather than
  redesigned.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// DomainEntry describes one entry of a domain sub-codebook.
type DomainEntry struct {
	Code        uint16
	Mnemonic    string
	ValueType   string
	Unit        string
	Description string
}

// Domain is a named, registry-identified collection of DomainEntry
// values, searched linearly since each table is small.
type Domain struct {
	RegistryID byte
	Name       string
	Entries    []DomainEntry
}

// Lookup finds the entry with the given code, if any.
func (d *Domain) Lookup(code uint16) (DomainEntry, bool) {
	for _, e := range d.Entries {
		if e.Code == code {
			return e, true
		}
	}
	return DomainEntry{}, false
}

// Len reports the number of entries in the domain.
func (d *Domain) Len() int { return len(d.Entries) }

// Registry lists every domain codebook, in registry-ID order, the same
// order as the reference implementation's DOMAIN_REGISTRY.
var Registry = []*Domain{NAV1, PERCEPT1, MANIP1, COMM1, DIAG1, PLAN1, SAFETY1}

// ForRegistryID finds the domain codebook with the given registry ID.
func ForRegistryID(id byte) (*Domain, bool) {
	for _, d := range Registry {
		if d.RegistryID == id {
			return d, true
		}
	}
	return nil, false
}
