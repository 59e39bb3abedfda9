/*
NAME
  decoder.go

DESCRIPTION
  Decodes AILL wire-format bytes into an ast.Node tree.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codec

import (
	"fmt"

	"github.com/ausocean/aill"
	"github.com/ausocean/aill/ast"
	"github.com/ausocean/aill/codebook"
	"github.com/ausocean/aill/wire"
)

// Decoder decodes AILL wire-format bytes. The zero value is ready to
// use.
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// DecodeUtterance decodes a complete AILL utterance from wire bytes.
func (d *Decoder) DecodeUtterance(data []byte) (*ast.Utterance, error) {
	r := wire.NewReader(data)

	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if code != codebook.StartUtterance {
		return nil, aill.Errorf(aill.KindInvalidStructure, "Expected START_UTTERANCE (0x00), got 0x%02X", code)
	}

	meta, err := decodeMetaHeader(r)
	if err != nil {
		return nil, err
	}

	var body []ast.Node
	for {
		b, ok := r.Peek()
		if !ok {
			break
		}
		if b == codebook.EndUtterance {
			r.ReadByte()
			break
		}
		expr, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			body = append(body, expr)
		}
	}

	return &ast.Utterance{Meta: meta, Body: body}, nil
}

func decodeMetaHeader(r *wire.Reader) (ast.MetaHeader, error) {
	hdr := ast.DefaultMetaHeader()

	code, err := r.ReadByte()
	if err != nil {
		return hdr, err
	}
	if code != codebook.Confidence {
		return hdr, aill.Errorf(aill.KindInvalidStructure, "Expected CONFIDENCE (0x90), got 0x%02X", code)
	}
	hdr.Confidence, err = r.ReadFloat16()
	if err != nil {
		return hdr, err
	}

	code, err = r.ReadByte()
	if err != nil {
		return hdr, err
	}
	if code != codebook.Priority {
		return hdr, aill.Errorf(aill.KindInvalidStructure, "Expected PRIORITY (0x91), got 0x%02X", code)
	}
	hdr.Priority, err = r.ReadByte()
	if err != nil {
		return hdr, err
	}

	code, err = r.ReadByte()
	if err != nil {
		return hdr, err
	}
	if code != codebook.TimestampMeta {
		return hdr, aill.Errorf(aill.KindInvalidStructure, "Expected TIMESTAMP_META (0x94), got 0x%02X", code)
	}
	hdr.TimestampUS, err = r.ReadInt64()
	if err != nil {
		return hdr, err
	}

	for {
		peek, ok := r.Peek()
		if !ok || peek < 0x92 || peek > 0x9F {
			break
		}
		switch peek {
		case codebook.SourceAgent, codebook.DestAgent, codebook.Seqnum,
			codebook.TraceID, codebook.TTL, codebook.Topic, codebook.VersionTag:
		default:
			// Not a meta code handled here: leave it unread so body
			// parsing starts at it.
			return hdr, nil
		}
		annCode, err := r.ReadByte()
		if err != nil {
			return hdr, err
		}
		switch annCode {
		case codebook.SourceAgent:
			uuid, err := r.ReadUUID()
			if err != nil {
				return hdr, err
			}
			hdr.SourceAgent = append([]byte(nil), uuid[:]...)
		case codebook.DestAgent:
			uuid, err := r.ReadUUID()
			if err != nil {
				return hdr, err
			}
			hdr.DestAgent = append([]byte(nil), uuid[:]...)
		case codebook.Seqnum:
			v, err := r.ReadUint32()
			if err != nil {
				return hdr, err
			}
			hdr.Seqnum = &v
		case codebook.TraceID:
			v, err := r.ReadUint64()
			if err != nil {
				return hdr, err
			}
			hdr.Annotations["trace_id"] = ast.AnnotationValue{Kind: ast.AnnotationU64, U64: v}
		case codebook.TTL:
			v, err := r.ReadUint16()
			if err != nil {
				return hdr, err
			}
			hdr.Annotations["ttl"] = ast.AnnotationValue{Kind: ast.AnnotationU16, U16: v}
		case codebook.Topic:
			v, err := r.ReadUint16()
			if err != nil {
				return hdr, err
			}
			hdr.Annotations["topic"] = ast.AnnotationValue{Kind: ast.AnnotationU16, U16: v}
		case codebook.VersionTag:
			major, err := r.ReadUint16()
			if err != nil {
				return hdr, err
			}
			minor, err := r.ReadUint16()
			if err != nil {
				return hdr, err
			}
			hdr.Annotations["version"] = ast.AnnotationValue{Kind: ast.AnnotationPair, PairFirst: major, PairSecond: minor}
		default:
			// Unreachable: codes not listed above end the loop before
			// they are read.
			return hdr, nil
		}
	}

	return hdr, nil
}

func nullLiteral() ast.Node { return ast.Literal{Kind: ast.KindNull} }

func decodeExpression(r *wire.Reader) (ast.Node, error) {
	code, ok := r.Peek()
	if !ok {
		return nil, nil
	}

	switch {
	case code >= 0x80 && code <= 0x8F:
		return decodePragmatic(r)
	case code >= 0x70 && code <= 0x7F:
		return decodeModal(r)
	case code >= 0x60 && code <= 0x6F:
		return decodeTemporal(r)
	case code == codebook.Confidence || code == codebook.Label:
		return decodeAnnotation(r)
	case code >= 0x10 && code <= 0x1F:
		return decodeLiteral(r)
	case code == codebook.BeginStruct:
		return decodeStruct(r)
	case code == codebook.BeginList:
		return decodeList(r)
	case code == codebook.BeginMap:
		return decodeMap(r)
	case code == codebook.EscapeL1 || code == codebook.EscapeL2 || code == codebook.EscapeL3:
		return decodeDomainRef(r)
	case code == codebook.ContextRef:
		r.ReadByte()
		idx, err := r.ReadVarInt()
		if err != nil {
			return nil, err
		}
		return ast.ContextRef{SCTIndex: idx}, nil
	case code == codebook.Nop:
		r.ReadByte()
		return nil, nil
	case code == codebook.Comment:
		r.ReadByte()
		if _, err := r.ReadString(); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		r.ReadByte()
		return ast.Code{Code: code, Mnemonic: codebook.MnemonicFor(code)}, nil
	}
}

func decodeLiteral(r *wire.Reader) (ast.Node, error) {
	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch code {
	case codebook.TypeInt8:
		v, err := r.ReadByte()
		return ast.Literal{Kind: ast.KindInt8, Int: int64(int8(v))}, err
	case codebook.TypeInt16:
		v, err := r.ReadUint16()
		return ast.Literal{Kind: ast.KindInt16, Int: int64(int16(v))}, err
	case codebook.TypeInt32:
		v, err := r.ReadUint32()
		return ast.Literal{Kind: ast.KindInt32, Int: int64(int32(v))}, err
	case codebook.TypeInt64:
		v, err := r.ReadInt64()
		return ast.Literal{Kind: ast.KindInt64, Int: v}, err
	case codebook.TypeUint8:
		v, err := r.ReadByte()
		return ast.Literal{Kind: ast.KindUint8, Uint: uint64(v)}, err
	case codebook.TypeUint16:
		v, err := r.ReadUint16()
		return ast.Literal{Kind: ast.KindUint16, Uint: uint64(v)}, err
	case codebook.TypeUint32:
		v, err := r.ReadUint32()
		return ast.Literal{Kind: ast.KindUint32, Uint: uint64(v)}, err
	case codebook.TypeUint64:
		v, err := r.ReadUint64()
		return ast.Literal{Kind: ast.KindUint64, Uint: v}, err
	case codebook.TypeFloat16:
		v, err := r.ReadFloat16()
		return ast.Literal{Kind: ast.KindFloat16, Value: float64(v)}, err
	case codebook.TypeFloat32:
		v, err := r.ReadFloat32()
		return ast.Literal{Kind: ast.KindFloat32, Value: float64(v)}, err
	case codebook.TypeFloat64:
		v, err := r.ReadFloat64()
		return ast.Literal{Kind: ast.KindFloat64, Value: v}, err
	case codebook.TypeBool:
		v, err := r.ReadByte()
		return ast.Literal{Kind: ast.KindBool, Bool: v != 0}, err
	case codebook.TypeString:
		v, err := r.ReadString()
		return ast.Literal{Kind: ast.KindString, Str: v}, err
	case codebook.TypeBytes:
		n, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		b, err := r.ReadN(int(n))
		return ast.Literal{Kind: ast.KindBytes, Bytes: append([]byte(nil), b...)}, err
	case codebook.TypeTimestamp:
		v, err := r.ReadInt64()
		return ast.Literal{Kind: ast.KindTimestamp, Int: v}, err
	case codebook.TypeNull:
		return ast.Literal{Kind: ast.KindNull}, nil
	default:
		return nil, aill.InvalidOpCode(code)
	}
}

func decodeStruct(r *wire.Reader) (ast.Node, error) {
	r.ReadByte() // BEGIN_STRUCT
	s := ast.Struct{Fields: map[uint16]ast.Node{}}
	var positional uint16

	for {
		peek, ok := r.Peek()
		if !ok || peek == codebook.EndStruct {
			break
		}
		if peek == codebook.FieldSep {
			r.ReadByte()
			continue
		}
		if peek == codebook.FieldID {
			r.ReadByte()
			fieldCode, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			val, err := decodeExpression(r)
			if err != nil {
				return nil, err
			}
			if val != nil {
				if _, exists := s.Fields[fieldCode]; !exists {
					s.Order = append(s.Order, fieldCode)
				}
				s.Fields[fieldCode] = val
			}
			continue
		}
		expr, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			if _, exists := s.Fields[positional]; !exists {
				s.Order = append(s.Order, positional)
			}
			s.Fields[positional] = expr
			positional++
		}
	}
	if _, ok := r.Peek(); ok {
		r.ReadByte() // END_STRUCT
	}
	return s, nil
}

func decodeList(r *wire.Reader) (ast.Node, error) {
	r.ReadByte() // BEGIN_LIST
	count, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	var elems []ast.Node
	for i := uint16(0); i < count; i++ {
		peek, ok := r.Peek()
		if !ok || peek == codebook.EndList {
			break
		}
		elem, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		if elem != nil {
			elems = append(elems, elem)
		}
	}
	if peek, ok := r.Peek(); ok && peek == codebook.EndList {
		r.ReadByte()
	}
	return ast.List{Count: count, Elements: elems}, nil
}

func decodeMap(r *wire.Reader) (ast.Node, error) {
	r.ReadByte() // BEGIN_MAP
	count, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	var pairs []ast.MapPair
	for i := uint16(0); i < count; i++ {
		peek, ok := r.Peek()
		if !ok || peek == codebook.EndMap {
			break
		}
		key, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		if key == nil {
			key = nullLiteral()
		}
		val, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		if val == nil {
			val = nullLiteral()
		}
		pairs = append(pairs, ast.MapPair{Key: key, Value: val})
	}
	if peek, ok := r.Peek(); ok && peek == codebook.EndMap {
		r.ReadByte()
	}
	return ast.Map{Pairs: pairs}, nil
}

func decodePragmatic(r *wire.Reader) (ast.Node, error) {
	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	expr, err := decodeExpression(r)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		expr = nullLiteral()
	}
	return ast.Pragmatic{Act: codebook.MnemonicFor(code), Expression: expr}, nil
}

func decodeModal(r *wire.Reader) (ast.Node, error) {
	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	m := ast.Modal{Modality: codebook.MnemonicFor(code)}
	switch code {
	case codebook.Predicted:
		v, err := r.ReadFloat16()
		if err != nil {
			return nil, err
		}
		m.Extra = float64(v)
		m.HasExtra = true
	case codebook.Reported:
		// The reference decoder reads and discards the UUID here,
		// preserving this quirk exactly rather than surfacing it.
		if _, err := r.ReadUUID(); err != nil {
			return nil, err
		}
	}
	expr, err := decodeExpression(r)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		expr = nullLiteral()
	}
	m.Expression = expr
	return m, nil
}

func decodeTemporal(r *wire.Reader) (ast.Node, error) {
	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	expr, err := decodeExpression(r)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		expr = nullLiteral()
	}
	return ast.Temporal{Modifier: codebook.MnemonicFor(code), Expression: expr}, nil
}

func decodeAnnotation(r *wire.Reader) (ast.Node, error) {
	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	var mnemonic string
	switch code {
	case codebook.Confidence:
		conf, err := r.ReadFloat16()
		if err != nil {
			return nil, err
		}
		if _, err := decodeExpression(r); err != nil {
			return nil, err
		}
		mnemonic = fmt.Sprintf("CONFIDENCE(%.2f)", conf)
	case codebook.Label:
		label, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if _, err := decodeExpression(r); err != nil {
			return nil, err
		}
		mnemonic = fmt.Sprintf("LABEL(%s)", label)
	default:
		mnemonic = fmt.Sprintf("ANNOTATION_0x%02X", code)
	}
	return ast.Annotated{Code: code, Mnemonic: mnemonic}, nil
}

func decodeDomainRef(r *wire.Reader) (ast.Node, error) {
	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	var level byte
	switch code {
	case codebook.EscapeL1:
		level = 1
	case codebook.EscapeL2:
		level = 2
	case codebook.EscapeL3:
		level = 3
	default:
		return nil, aill.InvalidOpCode(code)
	}
	domainCode, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	return ast.DomainRef{Level: level, DomainCode: domainCode}, nil
}
