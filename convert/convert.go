package convert

// SameType reports whether A and B are the identical type.
func SameType[A, B any]() bool {
	var a A
	_, ok := any(&a).(*B)
	return ok
}

// IfDowncastInto runs body with val as a B when A and B are the identical
// type, and reports whether it did. When they differ body is not called and
// val is left to the caller's generic path.
func IfDowncastInto[B, A any](val A, body func(B)) bool {
	// *A and *B are identical exactly when A and B are.
	p, ok := any(&val).(*B)
	if !ok {
		return false
	}
	body(*p)
	return true
}

// DowncastInto is IfDowncastInto for a body that produces a result. The zero
// R and false are returned when the types differ.
func DowncastInto[B, R, A any](val A, body func(B) R) (R, bool) {
	var out R
	ran := IfDowncastInto(val, func(b B) {
		out = body(b)
	})
	return out, ran
}
