package shape

import "fmt"

// SchemaMismatchError indicates that the arity of a handler list, a Seq,
// or a constructor argument list disagrees with the Schema it must match.
// Such mismatches are programming errors in descriptor construction or
// use, not data errors.
type SchemaMismatchError struct {
	What string
	Want int
	Got  int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: %s: expected %d values, got %d", e.What, e.Want, e.Got)
}

// ImmutableFieldError indicates an attempt to write a record field whose
// descriptor carries no setter.
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("immutable field: %q has no setter", e.Field)
}
