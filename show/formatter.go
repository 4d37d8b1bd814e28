package show

import (
	"fmt"
	"io"
	"strconv"

	"github.com/brimdata/shape"
)

// A Formatter renders descriptor/value pairs to an underlying writer.
// The first write error is retained and suppresses all further output.
type Formatter struct {
	w   io.Writer
	err error
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Format renders val, as described by typ, to the formatter's writer.
// Disagreements between a descriptor and the dynamic shape of its value
// are programming errors and panic; the returned error is a write error
// or the failure of a forced lazy computation.
func (f *Formatter) Format(typ shape.Type, val any) error {
	f.formatValue(typ, val)
	return f.err
}

func (f *Formatter) formatValue(typ shape.Type, val any) {
	if f.err != nil {
		return
	}
	switch t := typ.(type) {
	case *shape.TypeOfUnit:
		f.build("()")
	case *shape.TypeOfInt:
		f.build(strconv.FormatInt(val.(int64), 10))
	case *shape.TypeOfBool:
		f.build(strconv.FormatBool(val.(bool)))
	case *shape.TypeList:
		f.formatList(t, val.([]any))
	case *shape.TypeLazy:
		f.formatLazy(t, val.(*shape.Thunk))
	case *shape.TypeFunc:
		f.build("<fun>")
	case *shape.TypeTuple:
		f.build("(")
		f.formatSeq("tuple", t.Schema, t.Decompose(val), ", ")
		f.build(")")
	case *shape.TypeRecord:
		f.formatRecord(t, val)
	case *shape.TypeSum:
		f.formatSum(t, val)
	default:
		panic(fmt.Sprintf("show: unknown type descriptor %T", typ))
	}
}

func (f *Formatter) formatList(typ *shape.TypeList, elems []any) {
	f.build("[")
	for i, elem := range elems {
		if i > 0 {
			f.build("; ")
		}
		f.formatValue(typ.Elem, elem)
	}
	f.build("]")
}

// formatLazy forces the thunk, memoizing it as a side effect, and
// renders the forced value.  The computation's failure ends the
// traversal and propagates to the formatter's caller.
func (f *Formatter) formatLazy(typ *shape.TypeLazy, thunk *shape.Thunk) {
	val, err := thunk.Force()
	if err != nil {
		if f.err == nil {
			f.err = err
		}
		return
	}
	f.build("lazy ")
	f.formatValue(typ.Elem, val)
}

func (f *Formatter) formatRecord(typ *shape.TypeRecord, rec any) {
	f.build("{")
	for i, field := range typ.Fields {
		if i > 0 {
			f.build("; ")
		}
		f.build(field.Name)
		f.build(": ")
		f.formatValue(field.Type, field.Get(rec))
	}
	f.build("}")
}

// formatSum renders a sum value through a one-shot eliminator whose
// handler for each variant emits the variant name, followed by the
// parenthesized arguments when the variant's schema is nonempty.
func (f *Formatter) formatSum(typ *shape.TypeSum, val any) {
	handlers := make([]shape.Handler, len(typ.Variants))
	for i, variant := range typ.Variants {
		variant := variant
		handlers[i] = func(args *shape.Seq) any {
			f.build(variant.Name)
			if len(variant.Schema) > 0 {
				f.build(" (")
				f.formatSeq(variant.Name, variant.Schema, args, ", ")
				f.build(")")
			}
			return nil
		}
	}
	elim, err := typ.Elim(handlers...)
	if err != nil {
		// Unreachable: the handler list above has one entry per variant.
		panic(err)
	}
	elim(val)
}

// formatSeq renders vals position by position against schema, joined by
// sep.  The two walk in lockstep, so a length disagreement is a
// malformed descriptor and panics.
func (f *Formatter) formatSeq(what string, schema shape.Schema, vals *shape.Seq, sep string) {
	if n := vals.Len(); n != len(schema) {
		panic(&shape.SchemaMismatchError{What: what, Want: len(schema), Got: n})
	}
	for i, typ := range schema {
		if i > 0 {
			f.build(sep)
		}
		var head any
		head, vals = vals.Split()
		f.formatValue(typ, head)
	}
}

func (f *Formatter) build(s string) {
	if f.err == nil {
		_, f.err = io.WriteString(f.w, s)
	}
}
