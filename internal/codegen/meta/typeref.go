package meta

import (
	"strconv"
	"strings"
)

// TypeKind classifies a parsed field type.
type TypeKind int

const (
	KindUnknown TypeKind = iota
	KindPrimitive
	KindSequence
	KindQualified
)

func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindSequence:
		return "sequence"
	case KindQualified:
		return "qualified"
	default:
		return "unknown"
	}
}

func (k TypeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Primitive enumerates the built-in scalar types of the definition language.
type Primitive int

const (
	PrimNone Primitive = iota
	PrimFloat64
	PrimFloat32
	PrimInt8
	PrimInt16
	PrimInt32
	PrimInt64
	PrimUint8
	PrimUint16
	PrimUint32
	PrimUint64
	PrimString
	PrimBool
	PrimTime
	PrimDuration
)

// primitives maps definition-language keywords to primitives.
// byte and char are legacy aliases for uint8.
var primitives = map[string]Primitive{
	"float64":  PrimFloat64,
	"float32":  PrimFloat32,
	"int8":     PrimInt8,
	"int16":    PrimInt16,
	"int32":    PrimInt32,
	"int64":    PrimInt64,
	"uint8":    PrimUint8,
	"byte":     PrimUint8,
	"char":     PrimUint8,
	"uint16":   PrimUint16,
	"uint32":   PrimUint32,
	"uint64":   PrimUint64,
	"string":   PrimString,
	"bool":     PrimBool,
	"time":     PrimTime,
	"duration": PrimDuration,
}

// LookupPrimitive returns the primitive named by keyword, if any.
func LookupPrimitive(keyword string) (Primitive, bool) {
	p, ok := primitives[keyword]
	return p, ok
}

// TypeRef is the parsed form of a raw type token.
//
//	float64          -> Primitive(Float64)
//	float64[]        -> Sequence(Primitive(Float64))
//	geometry_msgs/Pose -> Qualified([geometry_msgs], Pose)
//	Vector3          -> Unknown("Vector3")
type TypeRef struct {
	Kind      TypeKind  `json:"kind"`
	Primitive Primitive `json:"primitive,omitempty"`
	Elem      *TypeRef  `json:"elem,omitempty"`
	// Len is the declared array length, 0 when unbounded. Not reflected in output.
	Len     int      `json:"len,omitempty"`
	Bounded bool     `json:"bounded,omitempty"` // "[<=N]" form
	Path    []string `json:"path,omitempty"`
	Name    string   `json:"name,omitempty"`
	Raw     string   `json:"raw"`
}

// ParseTypeRef parses a raw type token. It never fails: anything it does not
// recognize becomes a KindUnknown reference carrying the raw token.
func ParseTypeRef(raw string) TypeRef {
	if idx := strings.IndexByte(raw, '['); idx >= 0 {
		elem := ParseTypeRef(raw[:idx])
		ref := TypeRef{Kind: KindSequence, Elem: &elem, Raw: raw}
		ref.Len, ref.Bounded = parseArrayLen(raw[idx+1:])
		return ref
	}

	if p, ok := LookupPrimitive(raw); ok {
		return TypeRef{Kind: KindPrimitive, Primitive: p, Raw: raw}
	}

	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		return TypeRef{
			Kind: KindQualified,
			Path: parts[:len(parts)-1],
			Name: parts[len(parts)-1],
			Raw:  raw,
		}
	}

	return TypeRef{Kind: KindUnknown, Raw: raw}
}

// parseArrayLen reads the inside of an array marker ("]", "3]", "<=3]").
func parseArrayLen(s string) (n int, bounded bool) {
	s = strings.TrimSuffix(s, "]")
	if strings.HasPrefix(s, "<=") {
		bounded = true
		s = strings.TrimPrefix(s, "<=")
	}
	if s == "" {
		return 0, bounded
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, bounded
	}
	return n, bounded
}

// QualifiedPath returns package path and name joined by sep.
func (t TypeRef) QualifiedPath(sep string) string {
	parts := append(append([]string{}, t.Path...), t.Name)
	return strings.Join(parts, sep)
}
