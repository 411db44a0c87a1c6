package rust

import (
	"fmt"

	"github.com/Alia5/rosmsgc/internal/codegen/meta"
)

// Rust spelling of each primitive. time and duration have no dedicated
// representation yet and share an opaque integer surrogate.
var primitiveRust = map[meta.Primitive]string{
	meta.PrimFloat64:  "f64",
	meta.PrimFloat32:  "f32",
	meta.PrimInt8:     "i8",
	meta.PrimInt16:    "i16",
	meta.PrimInt32:    "i32",
	meta.PrimInt64:    "i64",
	meta.PrimUint8:    "u8",
	meta.PrimUint16:   "u16",
	meta.PrimUint32:   "u32",
	meta.PrimUint64:   "u64",
	meta.PrimString:   "String",
	meta.PrimBool:     "bool",
	meta.PrimTime:     "usize",
	meta.PrimDuration: "usize",
}

// MapType renders a parsed type reference as a Rust type.
// Unknown references are emitted as written; resolving them is left to rustc.
func MapType(t meta.TypeRef) string {
	switch t.Kind {
	case meta.KindPrimitive:
		if s, ok := primitiveRust[t.Primitive]; ok {
			return s
		}
		return t.Raw
	case meta.KindSequence:
		if t.Elem == nil {
			return "Vec<" + t.Raw + ">"
		}
		return fmt.Sprintf("Vec<%s>", MapType(*t.Elem))
	case meta.KindQualified:
		return t.QualifiedPath("::")
	default:
		return t.Raw
	}
}

// MapRawType parses and maps a raw schema type token in one step.
func MapRawType(raw string) string {
	return MapType(meta.ParseTypeRef(raw))
}

// MapFieldName renames fields whose names collide with Rust keywords the
// definition language allows. Only "type" occurs in practice.
func MapFieldName(name string) string {
	if name == "type" {
		return "_type"
	}
	return name
}
