package codec

import (
	"testing"

	"github.com/ausocean/aill/ast"
)

func TestRoundTripSimpleUtterance(t *testing.T) {
	enc := NewEncoder()
	data := enc.StartUtterance().
		Query().
		String("status?").
		EndUtterance()

	dec := NewDecoder()
	u, err := dec.DecodeUtterance(data)
	if err != nil {
		t.Fatalf("DecodeUtterance: %v", err)
	}
	if u.Meta.Priority != 3 || u.Meta.Confidence != 1.0 {
		t.Errorf("meta defaults not applied: %+v", u.Meta)
	}
	if len(u.Body) != 1 {
		t.Fatalf("body len = %d, want 1", len(u.Body))
	}
	prag, ok := u.Body[0].(ast.Pragmatic)
	if !ok {
		t.Fatalf("body[0] type = %T, want ast.Pragmatic", u.Body[0])
	}
	if prag.Act != "QUERY" {
		t.Errorf("act = %q, want QUERY", prag.Act)
	}
	lit, ok := prag.Expression.(ast.Literal)
	if !ok || lit.Str != "status?" {
		t.Errorf("expression = %+v, want string literal status?", prag.Expression)
	}
}

func TestRoundTripMetaFields(t *testing.T) {
	dest := [16]byte{1, 2, 3}
	seq := uint32(42)
	enc := NewEncoder()
	data := enc.StartUtteranceWith(0.75, 1, 123456789, &dest, &seq).
		Assert().
		Bool(true).
		EndUtterance()

	u, err := NewDecoder().DecodeUtterance(data)
	if err != nil {
		t.Fatalf("DecodeUtterance: %v", err)
	}
	if u.Meta.Priority != 1 {
		t.Errorf("priority = %d, want 1", u.Meta.Priority)
	}
	if u.Meta.TimestampUS != 123456789 {
		t.Errorf("timestamp = %d, want 123456789", u.Meta.TimestampUS)
	}
	if u.Meta.Seqnum == nil || *u.Meta.Seqnum != 42 {
		t.Errorf("seqnum = %v, want 42", u.Meta.Seqnum)
	}
	if len(u.Meta.DestAgent) != 16 || u.Meta.DestAgent[0] != 1 {
		t.Errorf("dest agent = %v", u.Meta.DestAgent)
	}
}

func TestRoundTripStructAndList(t *testing.T) {
	enc := NewEncoder()
	data := enc.StartUtterance().
		BeginStruct().
		Field(0x0001).Int32(7).
		Field(0x0002).ListOfFloat32([]float32{1.5, 2.5}).
		EndStruct().
		EndUtterance()

	u, err := NewDecoder().DecodeUtterance(data)
	if err != nil {
		t.Fatalf("DecodeUtterance: %v", err)
	}
	s, ok := u.Body[0].(ast.Struct)
	if !ok {
		t.Fatalf("body[0] type = %T, want ast.Struct", u.Body[0])
	}
	lit, ok := s.Fields[0x0001].(ast.Literal)
	if !ok || lit.Int != 7 {
		t.Errorf("field 1 = %+v, want int32 7", s.Fields[0x0001])
	}
	list, ok := s.Fields[0x0002].(ast.List)
	if !ok || len(list.Elements) != 2 {
		t.Errorf("field 2 = %+v, want list of 2", s.Fields[0x0002])
	}
}

func TestRoundTripModalAndTemporal(t *testing.T) {
	enc := NewEncoder()
	data := enc.StartUtterance().
		Temporal(0x6D). // T_NOW
		Modality(0x71). // PROBABLE
		Null().
		EndUtterance()

	u, err := NewDecoder().DecodeUtterance(data)
	if err != nil {
		t.Fatalf("DecodeUtterance: %v", err)
	}
	temp, ok := u.Body[0].(ast.Temporal)
	if !ok || temp.Modifier != "T_NOW" {
		t.Fatalf("body[0] = %+v, want T_NOW temporal", u.Body[0])
	}
	modal, ok := temp.Expression.(ast.Modal)
	if !ok || modal.Modality != "PROBABLE" {
		t.Errorf("wrapped expression = %+v, want PROBABLE modal", temp.Expression)
	}
}

func TestRoundTripDomainRef(t *testing.T) {
	enc := NewEncoder()
	data := enc.StartUtterance().L1Ref(0x0002).EndUtterance()

	u, err := NewDecoder().DecodeUtterance(data)
	if err != nil {
		t.Fatalf("DecodeUtterance: %v", err)
	}
	ref, ok := u.Body[0].(ast.DomainRef)
	if !ok || ref.Level != 1 || ref.DomainCode != 0x0002 {
		t.Errorf("body[0] = %+v, want L1 domain ref 0x0002", u.Body[0])
	}
}

func TestDecodeUtteranceRejectsBadStart(t *testing.T) {
	_, err := NewDecoder().DecodeUtterance([]byte{0xFF})
	if err == nil {
		t.Fatal("expected error for non-START_UTTERANCE first byte")
	}
}

func TestPrettyPrintDoesNotPanic(t *testing.T) {
	enc := NewEncoder()
	data := enc.StartUtterance().Query().Int32(1).EndUtterance()
	u, err := NewDecoder().DecodeUtterance(data)
	if err != nil {
		t.Fatalf("DecodeUtterance: %v", err)
	}
	out := PrettyPrint(*u, 0)
	if out == "" {
		t.Error("PrettyPrint returned empty string")
	}
}
