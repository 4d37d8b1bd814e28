// Package show renders any descriptor/value pair as text in one
// recursive traversal, with no per-type code beyond the descriptor
// itself.  The grammar is fixed: unit is "()", ints are signed decimal,
// bools are "true" and "false", lists are "[1; 2; 3]", tuples are
// "(1, true)", records are "{name: value; name: value}", a sum value is
// its variant name optionally followed by " (arg, arg)", a lazy value is
// "lazy " followed by its forced value, and a function is the opaque
// placeholder "<fun>".  Note the asymmetry: list and record separators
// are "; " while tuple and sum-argument separators are ", ".
//
// Rendering is a pure read traversal except that lazy sub-values are
// forced (and thereafter memoized) as they are reached; a forced
// computation's failure propagates unhandled to the caller.  Functions
// are never invoked.
package show

import (
	"fmt"
	"io"
	"strings"

	"github.com/brimdata/shape"
)

// Render writes the textual form of val, as described by typ, to w.
// The only failures are the sink's write errors and the error of a lazy
// value's forced computation.
func Render(w io.Writer, typ shape.Type, val any) error {
	return NewFormatter(w).Format(typ, val)
}

// Format renders val, as described by typ, to a string.
func Format(typ shape.Type, val any) (string, error) {
	var b strings.Builder
	if err := Render(&b, typ, val); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String is like Format but panics on error, which is convenient for
// values known to contain no failing lazy computations.
func String(typ shape.Type, val any) string {
	s, err := Format(typ, val)
	if err != nil {
		panic(fmt.Sprintf("show.String: %s", err))
	}
	return s
}
