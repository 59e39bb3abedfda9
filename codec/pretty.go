/*
NAME
  pretty.go

DESCRIPTION
  Produces a human-readable representation of a decoded AILL AST.

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
	"strconv"
	"strings"

	"github.com/ausocean/aill/ast"
)

// PrettyPrint renders node as indented, human-readable text.
func PrettyPrint(node ast.Node, indent int) string {
	prefix := strings.Repeat("  ", indent)
	var lines []string

	switch n := node.(type) {
	case ast.Utterance:
		lines = append(lines, prefix+"UTTERANCE:")
		lines = append(lines, prettyPrintMeta(n.Meta, indent+1))
		lines = append(lines, prefix+"  BODY:")
		for _, expr := range n.Body {
			lines = append(lines, PrettyPrint(expr, indent+2))
		}

	case ast.Literal:
		lines = append(lines, fmt.Sprintf("%s%s: %s", prefix, literalTypeName(n.Kind), literalValueString(n)))

	case ast.Struct:
		lines = append(lines, prefix+"STRUCT:")
		for _, fid := range n.Order {
			lines = append(lines, fmt.Sprintf("%s  field_0x%04X:", prefix, fid))
			lines = append(lines, PrettyPrint(n.Fields[fid], indent+2))
		}

	case ast.List:
		lines = append(lines, fmt.Sprintf("%sLIST[%d]:", prefix, n.Count))
		for _, elem := range n.Elements {
			lines = append(lines, PrettyPrint(elem, indent+1))
		}

	case ast.Map:
		lines = append(lines, fmt.Sprintf("%sMAP[%d]:", prefix, len(n.Pairs)))
		for _, p := range n.Pairs {
			lines = append(lines, fmt.Sprintf("%s  key: %s", prefix, strings.TrimSpace(PrettyPrint(p.Key, 0))))
			lines = append(lines, fmt.Sprintf("%s  val: %s", prefix, strings.TrimSpace(PrettyPrint(p.Value, 0))))
		}

	case ast.Pragmatic:
		lines = append(lines, fmt.Sprintf("%s%s:", prefix, n.Act))
		lines = append(lines, PrettyPrint(n.Expression, indent+1))

	case ast.Modal:
		extra := ""
		if n.HasExtra {
			extra = fmt.Sprintf(" (horizon=%sms)", strconv.FormatFloat(n.Extra, 'g', -1, 64))
		}
		lines = append(lines, fmt.Sprintf("%s[%s%s]:", prefix, n.Modality, extra))
		lines = append(lines, PrettyPrint(n.Expression, indent+1))

	case ast.Temporal:
		lines = append(lines, fmt.Sprintf("%s<%s>:", prefix, n.Modifier))
		lines = append(lines, PrettyPrint(n.Expression, indent+1))

	case ast.DomainRef:
		levelName := "?"
		switch n.Level {
		case 1:
			levelName = "L1"
		case 2:
			levelName = "L2"
		case 3:
			levelName = "L3"
		}
		lines = append(lines, fmt.Sprintf("%sREF(%s: DOMAIN_0x%04X)", prefix, levelName, n.DomainCode))

	case ast.ContextRef:
		lines = append(lines, fmt.Sprintf("%sSCT_REF[%d]", prefix, n.SCTIndex))

	case ast.Code:
		lines = append(lines, prefix+n.Mnemonic)

	case ast.Annotated:
		lines = append(lines, prefix+n.Mnemonic)
	}

	return strings.Join(lines, "\n")
}

func prettyPrintMeta(meta ast.MetaHeader, indent int) string {
	prefix := strings.Repeat("  ", indent)
	lines := []string{fmt.Sprintf("%sMETA: confidence=%.2f priority=%d timestamp=%d",
		prefix, meta.Confidence, meta.Priority, meta.TimestampUS)}
	if meta.DestAgent != nil {
		lines = append(lines, fmt.Sprintf("%s  dest_agent=%x", prefix, meta.DestAgent))
	}
	if meta.Seqnum != nil {
		lines = append(lines, fmt.Sprintf("%s  seqnum=%d", prefix, *meta.Seqnum))
	}
	return strings.Join(lines, "\n")
}

func literalTypeName(k ast.LiteralKind) string {
	switch k {
	case ast.KindInt8:
		return "int8"
	case ast.KindInt16:
		return "int16"
	case ast.KindInt32:
		return "int32"
	case ast.KindInt64:
		return "int64"
	case ast.KindUint8:
		return "uint8"
	case ast.KindUint16:
		return "uint16"
	case ast.KindUint32:
		return "uint32"
	case ast.KindUint64:
		return "uint64"
	case ast.KindFloat16:
		return "float16"
	case ast.KindFloat32:
		return "float32"
	case ast.KindFloat64:
		return "float64"
	case ast.KindBool:
		return "bool"
	case ast.KindString:
		return "string"
	case ast.KindBytes:
		return "bytes"
	case ast.KindTimestamp:
		return "timestamp"
	case ast.KindNull:
		return "null"
	default:
		return "unknown"
	}
}

func literalValueString(l ast.Literal) string {
	switch l.Kind {
	case ast.KindInt8, ast.KindInt16, ast.KindInt32, ast.KindInt64, ast.KindTimestamp:
		return strconv.FormatInt(l.Int, 10)
	case ast.KindUint8, ast.KindUint16, ast.KindUint32, ast.KindUint64:
		return strconv.FormatUint(l.Uint, 10)
	case ast.KindFloat16, ast.KindFloat32, ast.KindFloat64:
		return strconv.FormatFloat(l.Value, 'g', -1, 64)
	case ast.KindBool:
		return strconv.FormatBool(l.Bool)
	case ast.KindString:
		return l.Str
	case ast.KindBytes:
		return fmt.Sprintf("%v", l.Bytes)
	case ast.KindNull:
		return "None"
	default:
		return ""
	}
}
