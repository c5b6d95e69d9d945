// Package convert provides an opt-in specialization hook for generic code.
//
// A generic function that accepts any value satisfying some constraint can
// ask whether the caller happened to pass one exact concrete type and, if so,
// hand the value to a specialized path without copying its contents:
//
//	func FromMaybeShared[T ~string | ~[]byte](src T) (Value, error) {
//	    if v, ok := convert.DowncastInto[[]byte](src, fromShared); ok {
//	        return v.value, v.err
//	    }
//	    return FromBytes([]byte(src))
//	}
//
// The check is exact type identity. A named type with an underlying type of
// []byte does not match []byte, and an interface target never matches a
// concrete source.
package convert
