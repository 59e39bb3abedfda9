package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultMetaHeader(t *testing.T) {
	got := DefaultMetaHeader()
	want := MetaHeader{
		Confidence:  1.0,
		Priority:    3,
		TimestampUS: 0,
		Annotations: map[string]AnnotationValue{},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("DefaultMetaHeader() mismatch (-want +got):\n%s", diff)
	}
}

func TestStructPreservesFieldOrder(t *testing.T) {
	s := Struct{
		Fields: map[uint16]Node{
			0x0002: Literal{Kind: KindInt32, Int: 2},
			0x0001: Literal{Kind: KindInt32, Int: 1},
		},
		Order: []uint16{0x0002, 0x0001},
	}
	want := []uint16{0x0002, 0x0001}
	if diff := cmp.Diff(want, s.Order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
}

func TestDomainRefEquality(t *testing.T) {
	a := DomainRef{Level: 1, DomainCode: 0x0002}
	b := DomainRef{Level: 1, DomainCode: 0x0002}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("DomainRef mismatch (-want +got):\n%s", diff)
	}
}
